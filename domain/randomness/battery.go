package randomness

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatteryResult collects the outcome of every randomness test over one
// sequence.
type BatteryResult[T comparable] struct {
	Runs            *RunsResult            `json:"runs"`
	AutoCorrelation *AutocorrelationResult `json:"auto_correlation"`
	Serial          *SerialResult          `json:"serial"`
	Gap             *GapResult[T]          `json:"gap"`
}

// RunAll runs the four randomness tests concurrently against the same
// two-valued sequence. The gap test uses its default target, the first
// element. Any test failure fails the whole battery, so a degenerate input is
// never mistaken for a verdict.
func RunAll[T comparable](ctx context.Context, seq []T) (*BatteryResult[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatteryResult[T]{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := WaldWolfowitz(seq)
		if err != nil {
			return err
		}
		result.Runs = r
		return nil
	})
	g.Go(func() error {
		r, err := AutoCorrelation(seq)
		if err != nil {
			return err
		}
		result.AutoCorrelation = r
		return nil
	})
	g.Go(func() error {
		r, err := SerialTest(seq)
		if err != nil {
			return err
		}
		result.Serial = r
		return nil
	})
	g.Go(func() error {
		r, err := GapTest(seq)
		if err != nil {
			return err
		}
		result.Gap = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
