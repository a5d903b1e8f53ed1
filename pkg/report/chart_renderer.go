package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderSpendingChart renders expenses-by-category totals as a PNG bar chart.
// Returns nil when there is nothing to draw.
func RenderSpendingChart(byCategory map[string]float64) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, nil
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	bars := make([]chart.Value, 0, len(categories))
	for _, category := range categories {
		bars = append(bars, chart.Value{
			Label: category,
			Value: byCategory[category],
		})
	}

	graph := chart.BarChart{
		Title:    "Spending by Category",
		Width:    900,
		Height:   450,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("could not render spending chart: %w", err)
	}
	return buf.Bytes(), nil
}
