package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/datagen/synthetic-data/internal/domain"
	"github.com/datagen/synthetic-data/internal/output"
	"golang.org/x/sync/errgroup"
)

// BatchOptions controls a generate-all run.
type BatchOptions struct {
	Dir string
	// Ext is the output format for every table, "csv" when empty.
	Ext string
	// Rows, when positive, is mapped onto each scenario's size knob.
	Rows int
	// Parallel bounds the number of scenarios generated at once; zero uses GOMAXPROCS.
	Parallel int
	Output   output.Options
	Logger   Logger
}

// GenerateAll writes every registered scenario to opts.Dir as
// <scenario>.<ext>. The first failure cancels the scenarios that have not
// started yet.
func GenerateAll(ctx context.Context, cfg *domain.Configuration, opts BatchOptions) (*domain.RunReport, error) {
	logger := loggerOrNop(opts.Logger)
	if opts.Ext == "" {
		opts.Ext = "csv"
	}
	ext, err := output.ResolveFormat(opts.Ext)
	if err != nil {
		return nil, err
	}
	limit := opts.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	report := &domain.RunReport{StartedAt: time.Now(), Dir: opts.Dir}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, s := range Scenarios() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gen, err := New(s.Name, cfg, opts.Rows, logger)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, s.Name+"."+ext)
			began := time.Now()
			table, err := Save(gen, path, ext, opts.Output)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			res := domain.GenerationResult{
				Scenario: s.Name,
				Path:     path,
				Format:   ext,
				Rows:     table.Len(),
				Columns:  len(table.Columns()),
				Duration: time.Since(began),
			}
			logger.Infof("Generated %d rows -> %s", res.Rows, path)

			mu.Lock()
			report.Results = append(report.Results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}
