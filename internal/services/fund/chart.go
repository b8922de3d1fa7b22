package fund

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/models"
)

const defaultLineColor = "2563eb" // blue-600

// RenderPriceChart renders a PNG line chart of daily closes.
// Two series: Close (fund colour, solid) and the period moving average (gray dashed).
// Returns raw PNG bytes.
func RenderPriceChart(fund *models.Fund, history *models.PriceHistory, period int) ([]byte, error) {
	if history == nil || len(history.Points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 data points", analytics.ErrInvalidArgument)
	}

	closes := history.Closes()
	dates := history.Dates()
	ma, err := analytics.MovingAverageValues(closes, period)
	if err != nil {
		return nil, err
	}

	color := strings.TrimPrefix(fund.Color, "#")
	if color == "" {
		color = defaultLineColor
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex(color),
			StrokeWidth: 2.5,
		},
		XValues: dates,
		YValues: closes,
	}

	series := []chart.Series{closeSeries}
	// a single MA point cannot be drawn as a line
	if len(ma) >= 2 {
		series = append(series, chart.TimeSeries{
			Name: fmt.Sprintf("MA(%d)", period),
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: append([]time.Time(nil), dates[period-1:]...),
			YValues: ma,
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (%s)", fund.Name, fund.Symbol),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("02 Jan")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
