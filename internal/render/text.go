package render

import (
	"bufio"
	"io"
)

// Glyphs used by WriteText.
const (
	BlockOn  = "██"
	BlockOff = "  "
)

// WriteText prints one line per row, on for live cells and off otherwise.
func WriteText(w io.Writer, rows [][]bool, on, off string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, c := range row {
			if c {
				bw.WriteString(on)
			} else {
				bw.WriteString(off)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
