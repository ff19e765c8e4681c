// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names accepted by Config.
const (
	StrategyDensity = "density"
	StrategyOverlap = "overlap"
)

var (
	// ErrUnknownStrategy is returned by New for an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("score: unknown strategy")
	// ErrInvalidConfig wraps out-of-range strategy tuning.
	ErrInvalidConfig = errors.New("score: invalid config")
)

// Config selects and tunes a strategy. The constants are product tuning,
// not derived values; keep them configurable.
type Config struct {
	// Strategy is StrategyDensity or StrategyOverlap.
	Strategy string
	Density  Density
	Overlap  Overlap
}

// DefaultConfig returns the density strategy with default tuning.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyDensity,
		Density:  DefaultDensity(),
		Overlap:  DefaultOverlap(),
	}
}

// New returns the strategy named by cfg.Strategy.
func New(cfg Config) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Strategy)) {
	case StrategyDensity, "":
		if err := cfg.Density.validate(); err != nil {
			return nil, err
		}
		return cfg.Density, nil
	case StrategyOverlap:
		if err := cfg.Overlap.validate(); err != nil {
			return nil, err
		}
		return cfg.Overlap, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, cfg.Strategy)
	}
}
