package recording

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNotEnoughData is returned when a chart would have fewer than two points
var ErrNotEnoughData = errors.New("not enough data to chart")

// WritePopulationChart renders alive cells per generation as a PNG line chart.
// populations[i] is the population at generation i.
func WritePopulationChart(w io.Writer, populations []int) error {
	if len(populations) < 2 {
		return errors.Wrapf(ErrNotEnoughData, "[WritePopulationChart] got %d samples", len(populations))
	}

	xs := make([]float64, len(populations))
	ys := make([]float64, len(populations))
	peak := 1.0
	for i, p := range populations {
		xs[i] = float64(i)
		ys[i] = float64(p)
		peak = max(peak, ys[i])
	}

	graph := chart.Chart{
		Title:  "Population per generation",
		Width:  640,
		Height: 320,
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: xs[len(xs)-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Alive cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: peak},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Population",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 3.0},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "[WritePopulationChart] failed to render chart")
	}
	return nil
}
