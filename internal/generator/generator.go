// Package generator holds the synthetic data scenarios. Each scenario is an
// independent, single-threaded loop over a private Sampler; no scenario reads
// another's output.
package generator

import (
	"fmt"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/datagen/synthetic-data/internal/output"
)

// Generator produces one table of synthetic rows.
type Generator interface {
	// Name returns the canonical scenario name.
	Name() string
	Generate() (dataset.Table, error)
}

// Save generates a table and writes it to path. An empty format infers the
// sink from the path's extension.
func Save(g Generator, path, format string, opts output.Options) (dataset.Table, error) {
	table, err := g.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", g.Name(), err)
	}
	if err := output.WriteFile(path, format, table, opts); err != nil {
		return nil, err
	}
	return table, nil
}

// base carries the pieces every scenario shares.
type base struct {
	name   string
	rng    *Sampler
	Logger Logger
}

func newBase(name string, seed int64) base {
	return base{name: name, rng: NewSampler(seed), Logger: NopLogger{}}
}

func (b *base) Name() string { return b.name }

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (b *base) SetLogger(l Logger) { b.Logger = loggerOrNop(l) }

// finish wraps the generated rows into a table
func finish[T any](b *base, rows []T) (dataset.Table, error) {
	table, err := dataset.New(b.name, rows)
	if err != nil {
		return nil, err
	}
	b.Logger.Debugf("%s: generated %d rows", b.name, len(rows))
	return table, nil
}
