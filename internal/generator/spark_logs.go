package generator

import (
	"fmt"
	"time"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/domain"
)

var (
	logLevels       = []string{"INFO", "WARN", "ERROR"}
	logLevelWeights = []float64{0.9, 0.07, 0.03}
)

// SparkLogsGenerator emits task-level log lines for a sequence of jobs. The
// clock only moves forward.
type SparkLogsGenerator struct {
	base
	config domain.SparkLogsConfig
}

// NewSparkLogsGenerator seeds a generator from its config
func NewSparkLogsGenerator(config domain.SparkLogsConfig) *SparkLogsGenerator {
	return &SparkLogsGenerator{base: newBase(ScenarioSparkLogs, config.Seed), config: config}
}

// Generate walks jobs, stages and tasks. With NumRows set the output has
// exactly NumRows lines: it stops early at the cap and keeps adding jobs past
// NumJobs until the cap is reached.
func (g *SparkLogsGenerator) Generate() (dataset.Table, error) {
	cfg := g.config
	capacity := cfg.NumRows
	if capacity == 0 {
		capacity = cfg.NumJobs * cfg.MaxStagesPerJob * cfg.MaxTasksPerStage / 4
	}
	records := make([]domain.SparkLogLine, 0, capacity)
	t := cfg.StartTime

	more := func(jobID int) bool {
		if cfg.NumRows > 0 {
			return len(records) < cfg.NumRows
		}
		return jobID <= cfg.NumJobs
	}

	for jobID := 1; more(jobID); jobID++ {
		appID := fmt.Sprintf("app-%04d", jobID)
		numStages := g.rng.IntBetween(1, cfg.MaxStagesPerJob)

		for stageID := 0; stageID < numStages; stageID++ {
			numTasks := g.rng.IntBetween(1, cfg.MaxTasksPerStage)
			for taskID := 0; taskID < numTasks; taskID++ {
				t = t.Add(time.Duration(g.rng.IntBetween(1, 10)) * time.Second)
				level := WeightedChoice(g.rng, logLevels, logLevelWeights)
				records = append(records, domain.SparkLogLine{
					Timestamp: t,
					AppID:     appID,
					JobID:     jobID,
					StageID:   stageID,
					TaskID:    taskID,
					Level:     level,
					Message:   fmt.Sprintf("Job %d Stage %d Task %d %s", jobID, stageID, taskID, level),
				})
				if cfg.NumRows > 0 && len(records) >= cfg.NumRows {
					return finish(&g.base, records)
				}
			}
		}
	}
	return finish(&g.base, records)
}
