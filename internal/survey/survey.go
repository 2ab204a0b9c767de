// Package survey runs every elementary rule from the same seed and reports
// how the bottom row ends up.
package survey

import (
	"context"
	"runtime"
	"slices"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"rulescroll/pkg/automaton"
)

// Options controls a survey run.
type Options struct {
	Width int
	// Height is the history kept per engine; it bounds the period search.
	Height  int
	Steps   int
	Workers int
	// Rules to evaluate. Empty means all 256.
	Rules []uint8
}

// DefaultOptions returns a 64-column survey of all rules.
func DefaultOptions() Options {
	return Options{Width: 64, Height: 16, Steps: 200, Workers: runtime.NumCPU()}
}

// Result summarises one rule.
type Result struct {
	Rule       uint8
	Population int
	Density    float64
	// Stable is set when the final advance reproduced the previous row.
	Stable bool
	// Period is the smallest p such that the final row repeats the row p
	// generations earlier, 0 when no repeat is visible in the history.
	Period int
}

// Run evaluates each requested rule on its own engine.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Steps < 0 {
		return nil, errors.Errorf("survey: negative step count %d", opts.Steps)
	}
	rules := opts.Rules
	if len(rules) == 0 {
		rules = make([]uint8, 256)
		for i := range rules {
			rules[i] = uint8(i)
		}
	}
	// probe dimensions once so every worker fails the same way
	if _, err := automaton.New(opts.Width, opts.Height, 0); err != nil {
		return nil, errors.Wrap(err, "survey")
	}

	results := make([]Result, len(rules))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, rule := range rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(opts.Width, opts.Height, opts.Steps, rule)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Rule < results[b].Rule })
	return results, nil
}

// Evaluate runs rule for steps generations from a single bottom-center seed.
func Evaluate(width, height, steps int, rule uint8) (Result, error) {
	e, err := automaton.New(width, height, rule)
	if err != nil {
		return Result{}, errors.Wrapf(err, "survey: rule %d", rule)
	}
	bottom := height - 1
	e.Fill(width/2, bottom)
	for i := 0; i < steps; i++ {
		e.Advance()
	}

	grid := e.Grid()
	last := grid[bottom]
	res := Result{Rule: rule, Population: e.Population(bottom)}
	if width > 2 {
		res.Density = float64(res.Population) / float64(width-2)
	}
	// rows above the bottom only hold real generations once they scrolled in
	history := min(steps, height-1)
	for p := 1; p <= history; p++ {
		if slices.Equal(grid[bottom-p], last) {
			res.Period = p
			break
		}
	}
	res.Stable = res.Period == 1
	return res, nil
}
