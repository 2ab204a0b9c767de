package automaton

import "fmt"

// ValidationError reports grid dimensions below MinSize.
type ValidationError struct {
	Width  int
	Height int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("automaton: grid %dx%d too small (min %dx%d)", e.Width, e.Height, MinSize, MinSize)
}

// IndexError is the panic value for coordinates outside the grid.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("automaton: cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}
