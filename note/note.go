package note

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/theorybox/constants"
	"github.com/jsphweid/theorybox/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

var ErrInvalidRootNote = errors.New("invalid root note")

// Chromatic holds the display name of each pitch class. Spelling is fixed per
// index; sharps and flats are never chosen from context.
var Chromatic = [constants.SemitonesPerOctave]string{
	"C", "C#/Db", "D", "D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
}

// Note is an absolute pitch in MIDI-like units (C4 = 60). Any integer is a
// valid pitch; the name is always derived from it.
type Note struct {
	Pitch int
}

func New(pitch int) Note {
	return Note{Pitch: pitch}
}

func (n Note) Class() int {
	return util.FloorMod(n.Pitch, constants.SemitonesPerOctave)
}

func (n Note) Name() string {
	return Chromatic[n.Class()]
}

func (n Note) String() string {
	return n.Name()
}

func (n Note) Transpose(semitones int) Note {
	return Note{Pitch: n.Pitch + semitones}
}

func (n Note) SameClass(other Note) bool {
	return n.Class() == other.Class()
}

// MIDI returns the MIDI key for this pitch when it falls inside 0-127.
func (n Note) MIDI() (midi.Note, bool) {
	if n.Pitch < 0 || n.Pitch > 127 {
		return 0, false
	}
	return midi.Note(uint8(n.Pitch)), true
}

// Scientific names the pitch with its octave, C4 = 60, using flats for the
// black keys ("Db4", "E2"). gomidi counts octaves from key 0, one above
// scientific numbering. Pitches outside 0-127 have no name.
func (n Note) Scientific() (string, bool) {
	m, ok := n.MIDI()
	if !ok {
		return "", false
	}
	return m.Name() + strconv.Itoa(int(m.Octave())-1), true
}

func Names(notes []Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.Name()
	}
	return res
}

func Pitches(notes []Note) []int {
	res := make([]int, len(notes))
	for i, n := range notes {
		res[i] = n.Pitch
	}
	return res
}

// Lookup resolves a user supplied root name to a note in the octave of middle C.
// An exact spelling ("C#", "Db", "C#/Db") wins; otherwise the first chromatic
// entry containing the input is taken, so "#/D" still resolves to C#/Db.
func Lookup(name string) (Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Note{}, errors.Wrap(ErrInvalidRootNote, "empty name")
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	name = string(runes)

	for i, entry := range Chromatic {
		if entry == name {
			return New(constants.MiddleC + i), nil
		}
		for _, spelling := range strings.Split(entry, "/") {
			if spelling == name {
				return New(constants.MiddleC + i), nil
			}
		}
	}

	for i, entry := range Chromatic {
		if strings.Contains(entry, name) {
			return New(constants.MiddleC + i), nil
		}
	}

	return Note{}, errors.Wrapf(ErrInvalidRootNote, "%q", name)
}

var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseScientific parses names like "E4", "F#3" or "Bb-1" (C4 = 60).
func ParseScientific(name string) (Note, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return Note{}, errors.Wrapf(ErrInvalidRootNote, "%q is too short", name)
	}

	semitone, ok := letterOffsets[strings.ToUpper(name[:1])[0]]
	if !ok {
		return Note{}, errors.Wrapf(ErrInvalidRootNote, "%q has no note letter", name)
	}

	idx := 1
	switch name[idx] {
	case '#':
		semitone++
		idx++
	case 'b':
		semitone--
		idx++
	}

	octave, err := strconv.Atoi(name[idx:])
	if err != nil {
		return Note{}, errors.Wrapf(ErrInvalidRootNote, "%q has no octave", name)
	}

	return New((octave+1)*constants.SemitonesPerOctave + semitone), nil
}
