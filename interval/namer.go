package interval

import (
	"github.com/jsphweid/theorybox/constants"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/util"
)

const Unknown = "Unknown interval"

var semitonesByName = map[string]int{
	"Minor 2nd": 1, "Major 2nd": 2, "Minor 3rd": 3, "Major 3rd": 4,
	"Perfect 4th": 5, "Tritone": 6, "Perfect 5th": 7, "Minor 6th": 8,
	"Major 6th": 9, "Minor 7th": 10, "Major 7th": 11, "Octave": 12,
}

var nameBySemitones = func() map[int]string {
	m := make(map[int]string, len(semitonesByName))
	for name, s := range semitonesByName {
		m[s] = name
	}
	return m
}()

type Definition struct {
	Name      string
	Semitones int
}

// Namer turns semitone distances into interval names.
//
// With mod12 a distance is reduced modulo the octave before lookup, so an
// exact octave reduces to 0 and is reported as Unknown. OctaveAsOctave names
// every nonzero multiple of 12 "Octave" instead.
type Namer struct {
	OctaveAsOctave bool
}

func (n Namer) NameOf(semitones int, mod12 bool) string {
	distance := util.Abs(semitones)
	if mod12 {
		if n.OctaveAsOctave && distance != 0 && distance%constants.SemitonesPerOctave == 0 {
			return nameBySemitones[constants.SemitonesPerOctave]
		}
		distance %= constants.SemitonesPerOctave
	}
	if name, ok := nameBySemitones[distance]; ok {
		return name
	}
	return Unknown
}

func (n Namer) Between(a, b note.Note) string {
	return n.NameOf(b.Pitch-a.Pitch, true)
}

func (n Namer) Semitones(name string) (int, bool) {
	s, ok := semitonesByName[name]
	return s, ok
}

// Definitions lists the table ordered by size.
func (n Namer) Definitions() []Definition {
	res := make([]Definition, 0, len(semitonesByName))
	for _, s := range util.GetKeys(nameBySemitones) {
		res = append(res, Definition{Name: nameBySemitones[s], Semitones: s})
	}
	return res
}
