package progression

import (
	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/scale"
	"github.com/pkg/errors"
)

var ErrDegreeOutOfRange = errors.New("scale degree out of range")

var ErrUnknownPreset = errors.New("unknown progression preset")

type Progression struct {
	Name   string
	Scale  scale.Scale
	Chords []chord.Chord
}

// Resolve builds the chord a roman numeral names within s. The chord root is
// the scale note at the numeral's degree; scales with fewer notes than the
// degree needs are rejected.
func Resolve(s scale.Scale, token string) (chord.Chord, error) {
	numeral, _ := ParseNumeral(token)
	return resolve(s.Notes(), numeral)
}

func resolve(scaleNotes []note.Note, numeral Numeral) (chord.Chord, error) {
	if numeral.Degree >= len(scaleNotes) {
		return chord.Chord{}, errors.Wrapf(ErrDegreeOutOfRange,
			"%q needs degree %d, scale has %d notes", numeral.Token, numeral.Degree+1, len(scaleNotes))
	}
	return chord.Build(numeral.Quality, scaleNotes[numeral.Degree]), nil
}

// Build resolves every token against s. The first token that cannot be
// resolved fails the whole progression.
func Build(name string, s scale.Scale, tokens []string) (Progression, error) {
	scaleNotes := s.Notes()
	chords := make([]chord.Chord, 0, len(tokens))
	for i, token := range tokens {
		numeral, _ := ParseNumeral(token)
		c, err := resolve(scaleNotes, numeral)
		if err != nil {
			return Progression{}, errors.Wrapf(err, "entry %d", i+1)
		}
		chords = append(chords, c)
	}
	return Progression{Name: name, Scale: s, Chords: chords}, nil
}

func (p Progression) Names() []string {
	res := make([]string, len(p.Chords))
	for i, c := range p.Chords {
		res[i] = c.Name
	}
	return res
}
