package scale

import (
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/util"
	"github.com/pkg/errors"
)

var ErrUnknownQuality = errors.New("unknown scale quality")

type Scale struct {
	Name  string
	Root  note.Note
	steps []int
}

func Build(f interval.Formula, root note.Note) Scale {
	return Scale{
		Name:  root.Name() + f.Symbol,
		Root:  root,
		steps: f.Semitones(),
	}
}

func ByQuality(quality string, root note.Note) (Scale, error) {
	f, ok := interval.Scales.Get(quality)
	if !ok {
		return Scale{}, errors.Wrapf(ErrUnknownQuality, "%q", quality)
	}
	return Build(f, root), nil
}

func Major(root note.Note) Scale           { return Build(interval.MajorScale, root) }
func Minor(root note.Note) Scale           { return Build(interval.MinorScale, root) }
func PentatonicMajor(root note.Note) Scale { return Build(interval.PentatonicMajorScale, root) }
func PentatonicMinor(root note.Note) Scale { return Build(interval.PentatonicMinorScale, root) }
func Blues(root note.Note) Scale           { return Build(interval.BluesScale, root) }

func (s Scale) Steps() []int {
	return util.Clone(s.steps)
}

// Notes walks the steps once from the root, so the result always has one
// more entry than there are steps.
func (s Scale) Notes() []note.Note {
	notes := make([]note.Note, 0, len(s.steps)+1)
	notes = append(notes, s.Root)

	current := s.Root
	for _, step := range s.steps {
		current = current.Transpose(step)
		notes = append(notes, current)
	}
	return notes
}

func (s Scale) Contains(n note.Note) bool {
	for _, sn := range s.Notes() {
		if sn.SameClass(n) {
			return true
		}
	}
	return false
}
