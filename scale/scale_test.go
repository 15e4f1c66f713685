package scale

import (
	"testing"

	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorSpansAnOctave(t *testing.T) {
	for r := -24; r <= 96; r++ {
		notes := Major(note.New(r)).Notes()
		require.Len(t, notes, 8)
		assert.Equal(t, 12, notes[7].Pitch-notes[0].Pitch, "root %d", r)
		assert.Equal(t, notes[0].Name(), notes[7].Name())
	}
}

func TestCMajorNames(t *testing.T) {
	s := Major(note.New(60))

	assert := assert.New(t)
	assert.Equal("C Major", s.Name)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B", "C"}, note.Names(s.Notes()))
	assert.Equal([]int{60, 62, 64, 65, 67, 69, 71, 72}, note.Pitches(s.Notes()))
}

func TestNamedScales(t *testing.T) {
	a := note.New(69)
	cases := []struct {
		scale Scale
		name  string
		names []string
	}{
		{Minor(a), "A Minor", []string{"A", "B", "C", "D", "E", "F", "G", "A"}},
		{PentatonicMajor(a), "A Pentatonic Major", []string{"A", "B", "C#/Db", "E", "F#/Gb", "A"}},
		{PentatonicMinor(a), "A Pentatonic Minor", []string{"A", "C", "D", "E", "G", "A"}},
		{Blues(a), "A Blues", []string{"A", "C", "D", "D#/Eb", "E", "G", "A"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.scale.Name)
			assert.Equal(t, c.names, note.Names(c.scale.Notes()))
			assert.Len(t, c.scale.Notes(), len(c.scale.Steps())+1)
		})
	}
}

func TestModes(t *testing.T) {
	d, err := ByQuality("dorian", note.New(62))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "E", "F", "G", "A", "B", "C", "D"}, note.Names(d.Notes()))
}

func TestByQualityUnknown(t *testing.T) {
	_, err := ByQuality("bebop", note.New(60))
	assert.True(t, errors.Is(err, ErrUnknownQuality))
}

func TestNotesAreIdempotent(t *testing.T) {
	a := Build(interval.BluesScale, note.New(52))
	b := Build(interval.BluesScale, note.New(52))

	assert := assert.New(t)
	assert.Equal(a.Notes(), b.Notes())
	assert.Equal(a.Notes(), a.Notes())
}

func TestStepsDoNotAliasFormula(t *testing.T) {
	s := Major(note.New(60))
	s.Steps()[0] = 5
	assert.Equal(t, []int{2, 2, 1, 2, 2, 2, 1}, s.Steps())
	assert.Equal(t, []int{2, 2, 1, 2, 2, 2, 1}, Major(note.New(60)).Steps())
}

func TestCopiesShareNoSteps(t *testing.T) {
	s := Major(note.New(60))
	copied := s
	copied.Steps()[1] = 9
	assert.Equal(t, "E", s.Notes()[2].Name())
	assert.Equal(t, s.Notes(), copied.Notes())
}

func TestContains(t *testing.T) {
	s := Major(note.New(60))

	assert := assert.New(t)
	assert.True(s.Contains(note.New(40)))
	assert.False(s.Contains(note.New(61)))
}
