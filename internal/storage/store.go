// Package storage writes headless-run artifacts: a metadata JSON document
// and a CSV raster of the retained generations. These are analysis
// outputs, not a mechanism for resuming an automaton.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/anku308/wolfca/internal/automaton"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// RunMetadata describes one headless run.
type RunMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Rule        uint8     `json:"rule"`
	Seed        string    `json:"seed"`
	Width       int       `json:"width"`
	Depth       int       `json:"depth"`
	Generations uint64    `json:"generations"`
}

// Save writes metadata.json and generations.csv for the given history
// window under a fresh run directory and answers the run ID.
func (s *Store) Save(meta RunMetadata, rows []automaton.Row) (string, error) {
	runID := fmt.Sprintf("rule%d_%d", meta.Rule, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "generations.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(rows) == 0 {
		return runID, nil
	}
	header := []string{"generation"}
	for i := 0; i < rows[0].Len(); i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for g, a := range rows {
		record := []string{strconv.Itoa(g)}
		for i := 0; i < a.Len(); i++ {
			if a.Cell(i) {
				record = append(record, "1")
			} else {
				record = append(record, "0")
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}
