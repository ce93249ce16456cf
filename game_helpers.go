package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/recording"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the driver state around one SimulationRun
type game struct {
	config   utils.Config
	run      *model.SimulationRun
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	video    *recording.VideoRecorder
	out      io.Writer
	rule     string

	lastFrameTime time.Time
}

// initializeGame builds the initial grid, the rule and the run from config
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	grid, err := initialGrid(config)
	if err != nil {
		return nil, err
	}

	ruleName := rules.ConwayRuleSet().String()
	var opts []model.RunOption
	if config.RuleFile != "" {
		rs, err := rules.LoadRuleSet(config.RuleFile)
		if err != nil {
			return nil, err
		}
		ruleName = rs.String()
		opts = append(opts, model.WithRule(rs.Rule()))
	}
	if config.UseParallel {
		opts = append(opts, model.WithParallel(0))
	}

	run, err := model.NewSimulationRun(grid, config.Iterations, opts...)
	if err != nil {
		return nil, err
	}

	g := &game{
		config:        config,
		run:           run,
		renderer:      model.NewTerminalRenderer(out),
		stats:         utils.NewStats(),
		out:           out,
		rule:          ruleName,
		lastFrameTime: time.Now(),
	}

	if config.VideoFile != "" {
		g.video, err = recording.NewVideoRecorder(config.VideoFile, grid.Rows(), grid.Columns(),
			recording.FrameRenderer{CellSize: config.CellSize}, videoFPS(config.FrameRate))
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// initialGrid loads the grid file if one is configured, else fills a random grid
func initialGrid(config utils.Config) (*model.Grid, error) {
	if config.GridFile != "" {
		return model.LoadGrid(config.GridFile)
	}
	rng, err := config.NewGenerator()
	if err != nil {
		return nil, err
	}
	return model.RandomGrid(config.Rows, config.Columns, config.Probability, rng)
}

// videoFPS matches playback speed to the frame pause, at least one frame per second
func videoFPS(frameRate time.Duration) int32 {
	if frameRate <= 0 || frameRate >= time.Second {
		return 1
	}
	return int32(time.Second / frameRate)
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	grid := g.run.Current()
	source := fmt.Sprintf("random (p=%.2f, seed=%d, %s)", g.config.Probability, g.config.Seed, g.config.Generator)
	if g.config.GridFile != "" {
		source = g.config.GridFile
	}
	fmt.Fprintf(g.out, "Grid: %dx%d | Source: %s | Rule: %s\n", grid.Rows(), grid.Columns(), source, g.rule)
	fmt.Fprintf(g.out, "Initial living cells: %d | Iterations: %d\n", grid.CountLivingCells(), g.run.MaxIterations())
	fmt.Fprintln(g.out)
}

// render draws the current generation and records it in stats and video
func (g *game) render() error {
	grid := g.run.Current()
	generation := g.run.Generation()

	frameStart := time.Now()
	g.stats.Update(generation, grid.CountLivingCells(), grid.GetGridHash(), frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	if g.config.Interactive || g.config.FrameRate > 0 {
		if err := g.renderer.Clear(); err != nil {
			return err
		}
	}
	g.displayGameStatus(grid)
	if err := g.renderer.Display(grid); err != nil {
		return err
	}

	if g.video != nil {
		return g.video.AddGrid(grid, generation)
	}
	return nil
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(grid *model.Grid) {
	living := grid.CountLivingCells()
	density := float64(living) / float64(grid.Rows()*grid.Columns()) * 100

	status := "Active"
	switch {
	case living == 0:
		status = "Extinct"
	case g.run.Generation() >= g.run.MaxIterations():
		status = "Finished"
	case g.stats.IsStagnant():
		status = "Stagnant"
	}
	if g.run.Stopped() {
		status += " (stopped)"
	}

	fmt.Fprintf(g.out, "Iteration: %d/%d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.run.Generation(), g.run.MaxIterations(), living, density, status)
}

// nextIteration advances one generation and renders it. It reports false when
// the run is already finished.
func (g *game) nextIteration() (bool, error) {
	if !g.run.Advance() {
		return false, nil
	}
	return true, g.render()
}

// runAllIterations advances until the run finishes or a stop is requested,
// pausing FrameRate between generations. It returns the number of steps taken.
func (g *game) runAllIterations(interrupt <-chan os.Signal) (int, error) {
	g.run.Resume()
	steps := 0
	for !g.run.Stopped() {
		advanced, err := g.nextIteration()
		if err != nil {
			return steps, err
		}
		if !advanced {
			break
		}
		steps++

		if g.run.Finished() {
			break
		}
		select {
		case <-interrupt:
			g.run.Stop()
		case <-time.After(g.config.FrameRate):
		}
	}

	// a request that arrived after the last step still counts as a stop
	select {
	case <-interrupt:
		g.run.Stop()
	default:
	}
	return steps, nil
}

// restartGame restores generation 0
func (g *game) restartGame() error {
	g.run.Reset()
	g.stats.Restart()
	fmt.Fprintln(g.out, "🔄 Restarted from iteration 0")
	return g.render()
}

const interactiveHelp = "Commands: [n]ext iteration, run [a]ll iterations, [r]estart, [q]uit"

// interactiveLoop maps text commands to the simulation controls. Ctrl+C stops
// a run-all in progress, or quits at the prompt.
func (g *game) interactiveLoop(in io.Reader, interrupt <-chan os.Signal) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprintf(g.out, "%s\n> ", interactiveHelp)

		var line string
		select {
		case <-interrupt:
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = l
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n", "next":
			var advanced bool
			if advanced, err = g.nextIteration(); err == nil && !advanced {
				fmt.Fprintln(g.out, "🏁 Simulation finished")
			}
		case "a", "all":
			var steps int
			if steps, err = g.runAllIterations(interrupt); err == nil && g.run.Stopped() {
				fmt.Fprintf(g.out, "🛑 Stopped after %d iterations\n", steps)
			}
		case "r", "restart":
			err = g.restartGame()
		case "q", "quit":
			return nil
		case "":
		default:
			fmt.Fprintf(g.out, "Unknown command %q\n", line)
		}
		if err != nil {
			return err
		}
	}
}

// finish closes the video and writes the population chart
func (g *game) finish() error {
	if g.video != nil {
		if err := g.video.Close(); err != nil {
			return err
		}
		fmt.Fprintf(g.out, "🎞  Wrote %d frames to %s\n", g.video.Frames(), g.config.VideoFile)
	}

	if g.config.ChartFile != "" {
		if err := g.writeChart(); err != nil {
			if !errors.Is(err, recording.ErrNotEnoughData) {
				return err
			}
			fmt.Fprintln(g.out, "Population chart skipped: fewer than two generations recorded")
		}
	}

	fmt.Fprintf(g.out, "Final stats: %d iterations in %.1f seconds | Avg population: %.1f\n",
		g.run.Generation(), time.Since(g.stats.StartTime).Seconds(), g.stats.AveragePopulation)
	return nil
}

func (g *game) writeChart() error {
	f, err := os.Create(g.config.ChartFile)
	if err != nil {
		return errors.Wrapf(err, "[writeChart] failed to create file: %+v", g.config.ChartFile)
	}
	if err = recording.WritePopulationChart(f, g.stats.Populations); err != nil {
		f.Close()
		os.Remove(g.config.ChartFile)
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "[writeChart] failed to close file: %+v", g.config.ChartFile)
	}
	fmt.Fprintf(g.out, "📈 Wrote population chart to %s\n", g.config.ChartFile)
	return nil
}
