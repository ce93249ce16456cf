package utils

import "time"

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Stats for run monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Populations          []int    // population per recorded generation, in order
	history              []string // recent grid hashes
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation
func (s *Stats) Update(generation int, population int, hash string, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.Populations = append(s.Populations, population)

	// Simple moving average for population
	if len(s.Populations) == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the latest grid repeats one of the two before it,
// i.e. the run reached a still life or a period-2 oscillator.
func (s *Stats) IsStagnant() bool {
	n := len(s.history)
	if n < 2 {
		return false
	}
	current := s.history[n-1]
	if s.history[n-2] == current {
		return true
	}
	return n >= 3 && s.history[n-3] == current
}

// Restart clears the per-run history, keeping the start time
func (s *Stats) Restart() {
	s.Populations = nil
	s.history = nil
	s.AveragePopulation = 0
	s.TotalGenerations = 0
}
