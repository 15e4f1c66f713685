package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/util"
	"github.com/pkg/errors"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type Chord struct {
	Name    string
	Quality string
	Root    note.Note
	offsets []int
}

func Build(f interval.Formula, root note.Note) Chord {
	return Chord{
		Name:    root.Name() + f.Symbol,
		Quality: f.Slug,
		Root:    root,
		offsets: f.Semitones(),
	}
}

func ByQuality(quality string, root note.Note) (Chord, error) {
	f, ok := interval.Chords.Get(quality)
	if !ok {
		return Chord{}, errors.Wrapf(ErrUnknownQuality, "%q", quality)
	}
	return Build(f, root), nil
}

func Major(root note.Note) Chord     { return Build(interval.MajorChord, root) }
func Minor(root note.Note) Chord     { return Build(interval.MinorChord, root) }
func Dominant7(root note.Note) Chord { return Build(interval.Dominant7Chord, root) }
func Major7(root note.Note) Chord    { return Build(interval.Major7Chord, root) }
func Minor7(root note.Note) Chord    { return Build(interval.Minor7Chord, root) }

func (c Chord) Offsets() []int {
	return util.Clone(c.offsets)
}

// Notes returns the root followed by the root transposed by each offset.
// Offsets landing on the same pitch class are kept.
func (c Chord) Notes() []note.Note {
	notes := make([]note.Note, 0, len(c.offsets)+1)
	notes = append(notes, c.Root)
	for _, offset := range c.offsets {
		notes = append(notes, c.Root.Transpose(offset))
	}
	return notes
}

func (c Chord) Key() string {
	return Key(c.Notes())
}

// Key identifies the set of pitch classes in notes, ignoring voicing and
// doubling: C4 E4 G4 and G2 C3 E5 share a key.
func Key(notes []note.Note) string {
	seen := make(map[int]bool)
	var classes []int
	for _, n := range notes {
		if !seen[n.Class()] {
			seen[n.Class()] = true
			classes = append(classes, n.Class())
		}
	}
	return CreateChordKey(classes)
}

func CreateChordKey(classes []int) string {
	sort.Slice(classes, func(i, j int) bool {
		return classes[i] < classes[j]
	})
	var res string
	for i, class := range classes {
		res += fmt.Sprintf("%v", class)
		if i < len(classes)-1 {
			res += "-"
		}
	}
	return res
}

// Identify names the chord spelled by notes. Each note is tried as the root in
// the order given, against every known quality.
func Identify(notes []note.Note) (Chord, bool) {
	key := Key(notes)
	for _, root := range notes {
		for _, f := range interval.Chords.All() {
			c := Build(f, root)
			if c.Key() == key {
				return c, true
			}
		}
	}
	return Chord{}, false
}
