package viz

import (
	"strings"
	"testing"

	"github.com/anku308/wolfca/internal/automaton"
)

func TestPopulationSeries(t *testing.T) {
	rows := []automaton.Row{
		automaton.FromSeed(0, 8),
		automaton.FromSeed(0b1011, 8),
		automaton.FromSeed(0xFF, 8),
	}
	got := PopulationSeries(rows)
	want := []float64{0, 3, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPlotPopulationCaption(t *testing.T) {
	graph := PlotPopulation([]float64{1, 2, 3, 2, 1}, "population")
	if !strings.Contains(graph, "population") {
		t.Error("plot missing caption")
	}
	if len(strings.Split(graph, "\n")) < 2 {
		t.Error("plot suspiciously flat")
	}
}
