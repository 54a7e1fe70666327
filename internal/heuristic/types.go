package heuristic

import (
	"errors"

	"github.com/katalvlaran/astarpa/internal/localprune"
	"github.com/katalvlaran/astarpa/internal/matches"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

// ErrBadConfig wraps the first invalid sub-config encountered by Build.
var ErrBadConfig = errors.New("heuristic: invalid config")

// Variant selects which coordinate space the Contours frontier is built
// over.
type Variant int

const (
	SH Variant = iota
	CSH
	GCSH
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case SH:
		return "SH"
	case CSH:
		return "CSH"
	case GCSH:
		return "GCSH"
	default:
		return "Unknown"
	}
}

// PruneMode controls which end(s) of a match trigger a prune when the
// search passes over it.
type PruneMode int

const (
	PruneNone PruneMode = iota
	PruneStart
	PruneEnd
	PruneBoth
)

// Config configures heuristic construction end to end: seed partitioning,
// match finding, local pruning, the chosen variant, and its prune mode.
type Config struct {
	Seeds      seeds.Config
	Match      matches.Config
	Local      localprune.Config
	Variant    Variant
	Prune      PruneMode
}

// DefaultConfig returns astarpa's default heuristic configuration: GCSH,
// k=15, r=2, prune-start, local pruning disabled (spec.md §6).
func DefaultConfig() Config {
	return Config{
		Seeds:   seeds.DefaultConfig(),
		Match:   matches.DefaultConfig(),
		Local:   localprune.DefaultConfig(),
		Variant: GCSH,
		Prune:   PruneStart,
	}
}

// Validate reports whether every sub-config is individually usable.
func (c Config) Validate() error {
	if err := c.Seeds.Validate(); err != nil {
		return err
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	if err := c.Local.Validate(); err != nil {
		return err
	}
	return nil
}
