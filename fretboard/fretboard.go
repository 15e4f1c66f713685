package fretboard

import (
	"strings"

	"github.com/jsphweid/theorybox/constants"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/util"
	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("fretboard index out of range")

// StandardTuning lists the open strings from high E down to low E.
var StandardTuning = []note.Note{
	note.New(64), note.New(59), note.New(55), note.New(50), note.New(45), note.New(40),
}

// Fretboard is every (string, fret) pitch of a tuned neck. The grid is
// computed once by Build and never changes; retuning means building another.
type Fretboard struct {
	tuning []note.Note
	frets  int
	cells  []note.Note
}

type Position struct {
	String int
	Fret   int
}

func Build(tuning []note.Note, frets int) (*Fretboard, error) {
	if len(tuning) == 0 {
		return nil, errors.Wrap(ErrIndexOutOfRange, "tuning has no strings")
	}
	if frets < 0 {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%d frets", frets)
	}

	fb := &Fretboard{
		tuning: util.Clone(tuning),
		frets:  frets,
		cells:  make([]note.Note, 0, len(tuning)*(frets+1)),
	}
	for _, open := range fb.tuning {
		for fret := 0; fret <= frets; fret++ {
			fb.cells = append(fb.cells, open.Transpose(fret))
		}
	}
	return fb, nil
}

func Standard() *Fretboard {
	fb, _ := Build(StandardTuning, constants.DefaultFrets)
	return fb
}

func (fb *Fretboard) Strings() int {
	return len(fb.tuning)
}

// Frets is the highest fret; each string has Frets()+1 cells including the open string.
func (fb *Fretboard) Frets() int {
	return fb.frets
}

func (fb *Fretboard) Tuning() []note.Note {
	return util.Clone(fb.tuning)
}

func (fb *Fretboard) NoteAt(str, fret int) (note.Note, error) {
	if str < 0 || str >= fb.Strings() || fret < 0 || fret > fb.frets {
		return note.Note{}, errors.Wrapf(ErrIndexOutOfRange,
			"string %d fret %d on a %d string, %d fret board", str, fret, fb.Strings(), fb.frets)
	}
	return fb.cells[str*(fb.frets+1)+fret], nil
}

// Row returns the notes of one string between the frets of r.
func (fb *Fretboard) Row(str int, r Range) ([]note.Note, error) {
	if err := fb.checkRange(r); err != nil {
		return nil, err
	}
	if str < 0 || str >= fb.Strings() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "string %d", str)
	}
	start := str*(fb.frets+1) + r.From
	return util.Clone(fb.cells[start : start+r.Width()]), nil
}

// Positions finds every cell sharing n's pitch class.
func (fb *Fretboard) Positions(n note.Note) []Position {
	var res []Position
	for i, cell := range fb.cells {
		if cell.SameClass(n) {
			res = append(res, Position{String: i / (fb.frets + 1), Fret: i % (fb.frets + 1)})
		}
	}
	return res
}

// Range is an inclusive span of frets.
type Range struct {
	From int
	To   int
}

func (r Range) Width() int {
	return r.To - r.From + 1
}

func (fb *Fretboard) FullRange() Range {
	return Range{From: 0, To: fb.frets}
}

func (fb *Fretboard) checkRange(r Range) error {
	if r.From < 0 || r.To > fb.frets || r.From > r.To {
		return errors.Wrapf(ErrIndexOutOfRange, "frets %d-%d on a %d fret board", r.From, r.To, fb.frets)
	}
	return nil
}

// MatchPolicy decides whether a fretboard cell counts as one of the targets.
type MatchPolicy int

const (
	// PitchClass matches on pitch mod 12.
	PitchClass MatchPolicy = iota
	// Substring matches when one note name contains the other. "C" therefore
	// also lights up C#/Db; kept for displays built around the old behavior.
	Substring
)

func ParsePolicy(s string) (MatchPolicy, error) {
	switch s {
	case "", "pitch-class":
		return PitchClass, nil
	case "substring":
		return Substring, nil
	}
	return PitchClass, errors.Errorf("unknown highlight policy %q", s)
}

func (p MatchPolicy) String() string {
	if p == Substring {
		return "substring"
	}
	return "pitch-class"
}

func (p MatchPolicy) matches(cell, target note.Note) bool {
	if p == Substring {
		a, b := cell.Name(), target.Name()
		return a == b || strings.Contains(a, b) || strings.Contains(b, a)
	}
	return cell.SameClass(target)
}

// Highlight marks the cells in r that match any target. The result is indexed
// [string][fret-r.From].
func (fb *Fretboard) Highlight(targets []note.Note, r Range, policy MatchPolicy) ([][]bool, error) {
	if err := fb.checkRange(r); err != nil {
		return nil, err
	}

	grid := make([][]bool, fb.Strings())
	for str := range grid {
		grid[str] = make([]bool, r.Width())
		for fret := r.From; fret <= r.To; fret++ {
			cell := fb.cells[str*(fb.frets+1)+fret]
			for _, target := range targets {
				if policy.matches(cell, target) {
					grid[str][fret-r.From] = true
					break
				}
			}
		}
	}
	return grid, nil
}
