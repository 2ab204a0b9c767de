// Package automaton implements a one-dimensional elementary cellular
// automaton whose generations are stacked vertically. The bottom row holds
// the current generation and each Advance scrolls the history upward.
//
// The first and last column of every row are never recomputed: they keep the
// value they were seeded with and scroll upward unchanged.
package automaton

// MinSize is the smallest accepted width and height.
const MinSize = 2

// Engine owns the generation grid and the Wolfram rule that evolves it.
// An Engine is not safe for concurrent use.
type Engine struct {
	rows [][]bool
	rule uint8
	gen  uint64
}

// New allocates a width x height grid of dead cells evolved by rule.
func New(width, height int, rule uint8) (*Engine, error) {
	if width < MinSize || height < MinSize {
		return nil, &ValidationError{Width: width, Height: height}
	}
	cells := make([]bool, width*height)
	rows := make([][]bool, height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return &Engine{rows: rows, rule: rule}, nil
}

// Width returns the number of cells per row.
func (e *Engine) Width() int { return len(e.rows[0]) }

// Height returns the number of visible generations.
func (e *Engine) Height() int { return len(e.rows) }

// Rule returns the Wolfram code driving the automaton.
func (e *Engine) Rule() uint8 { return e.rule }

// Generation counts the Advance calls made since construction.
func (e *Engine) Generation() uint64 { return e.gen }

// Grid exposes the rows, oldest first. The returned slice is owned by the
// engine and tracks every later Advance; callers must not modify it.
func (e *Engine) Grid() [][]bool { return e.rows }

// Snapshot returns a deep copy of the grid.
func (e *Engine) Snapshot() [][]bool {
	out := make([][]bool, len(e.rows))
	for y, row := range e.rows {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Cell reports whether (x, y) is alive.
func (e *Engine) Cell(x, y int) bool {
	e.check(x, y)
	return e.rows[y][x]
}

// Fill marks (x, y) alive.
func (e *Engine) Fill(x, y int) {
	e.check(x, y)
	e.rows[y][x] = true
}

// Clear marks (x, y) dead.
func (e *Engine) Clear(x, y int) {
	e.check(x, y)
	e.rows[y][x] = false
}

// Population returns the number of live cells in row y.
func (e *Engine) Population(y int) int {
	e.check(0, y)
	n := 0
	for _, c := range e.rows[y] {
		if c {
			n++
		}
	}
	return n
}

// Advance scrolls every row up by one and writes the next generation into
// the bottom row. The discarded top row is reused as the new bottom row.
func (e *Engine) Advance() {
	h := len(e.rows)
	scratch := e.rows[0]
	copy(e.rows, e.rows[1:])
	e.rows[h-1] = scratch

	prev := e.rows[h-2]
	w := len(prev)
	scratch[0] = prev[0]
	scratch[w-1] = prev[w-1]
	for x := 1; x < w-1; x++ {
		scratch[x] = Lookup(e.rule, Neighborhood(prev[x-1], prev[x], prev[x+1]))
	}
	e.gen++
}

func (e *Engine) check(x, y int) {
	if y < 0 || y >= len(e.rows) || x < 0 || x >= len(e.rows[y]) {
		panic(&IndexError{X: x, Y: y, Width: len(e.rows[0]), Height: len(e.rows)})
	}
}
