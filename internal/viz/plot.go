// Package viz turns evolution runs into terminal plots.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/anku308/wolfca/internal/automaton"
)

// PopulationSeries answers the live-cell count of each generation, oldest
// first.
func PopulationSeries(rows []automaton.Row) []float64 {
	series := make([]float64, len(rows))
	for i, a := range rows {
		series[i] = float64(a.Population())
	}
	return series
}

// PlotPopulation renders the population series as a line graph.
func PlotPopulation(series []float64, caption string) string {
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}
