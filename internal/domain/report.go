package domain

import (
	"time"
)

// GenerationResult summarizes one generated and written table
type GenerationResult struct {
	Scenario string        `json:"scenario"`
	Path     string        `json:"path"`
	Format   string        `json:"format"`
	Rows     int           `json:"rows"`
	Columns  int           `json:"columns"`
	Duration time.Duration `json:"duration_ns"`
}

// RunReport collects the results of a generate-all run
type RunReport struct {
	StartedAt time.Time          `json:"started_at"`
	Dir       string             `json:"dir"`
	Results   []GenerationResult `json:"results"`
}

// TotalRows returns the number of rows written across all results
func (r *RunReport) TotalRows() int {
	total := 0
	for _, res := range r.Results {
		total += res.Rows
	}
	return total
}

// Elapsed sums the per-table durations
func (r *RunReport) Elapsed() time.Duration {
	var d time.Duration
	for _, res := range r.Results {
		d += res.Duration
	}
	return d
}
