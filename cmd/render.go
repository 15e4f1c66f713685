package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/note"
)

const cellWidth = 8

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderFretboard prints the frets of r with one row per string. With lit
// nil every cell shows its note name; otherwise only lit cells do.
func renderFretboard(w io.Writer, fb *fretboard.Fretboard, r fretboard.Range, lit [][]bool) error {
	var b strings.Builder

	b.WriteString("        ")
	for fret := r.From; fret <= r.To; fret++ {
		fmt.Fprintf(&b, "%*d", cellWidth, fret)
	}
	b.WriteString("\n        ")
	b.WriteString(strings.Repeat("-", cellWidth*r.Width()))
	b.WriteString("\n")

	for str := 0; str < fb.Strings(); str++ {
		row, err := fb.Row(str, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%-5s | ", stringLabel(row[0].Transpose(-r.From)))
		for i, n := range row {
			fmt.Fprintf(&b, "%*s", cellWidth, cellLabel(n, lit, str, i))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func stringLabel(open note.Note) string {
	if name, ok := open.Scientific(); ok {
		return name
	}
	return open.Name()
}

func cellLabel(n note.Note, lit [][]bool, str, i int) string {
	if lit == nil {
		return n.Name()
	}
	if lit[str][i] {
		return "[" + n.Name() + "]"
	}
	return "."
}
