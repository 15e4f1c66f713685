package chord

import (
	"testing"

	"github.com/jsphweid/theorybox/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominant7OnMiddleC(t *testing.T) {
	c := Dominant7(note.New(60))

	assert := assert.New(t)
	assert.Equal("C7", c.Name)
	assert.Equal([]int{60, 64, 67, 70}, note.Pitches(c.Notes()))
	assert.Equal([]string{"C", "E", "G", "A#/Bb"}, note.Names(c.Notes()))
}

func TestNamedChords(t *testing.T) {
	a := note.New(57)
	cases := []struct {
		chord   Chord
		name    string
		pitches []int
	}{
		{Major(a), "A Major", []int{57, 61, 64}},
		{Minor(a), "A Minor", []int{57, 60, 64}},
		{Major7(a), "AMaj7", []int{57, 61, 64, 68}},
		{Minor7(a), "Amin7", []int{57, 60, 64, 67}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.chord.Name)
			assert.Equal(t, c.pitches, note.Pitches(c.chord.Notes()))
			assert.Equal(t, c.chord.Root, c.chord.Notes()[0])
		})
	}
}

func TestNoDuplicateCollapsing(t *testing.T) {
	c := Chord{Root: note.New(60), offsets: []int{12, 7, 12}}
	assert.Equal(t, []int{60, 72, 67, 72}, note.Pitches(c.Notes()))
}

func TestOffsetsAreCopied(t *testing.T) {
	c := Major7(note.New(60))
	c.Offsets()[0] = 3
	assert.Equal(t, []int{4, 7, 11}, c.Offsets())
	assert.Equal(t, []int{60, 64, 67, 71}, note.Pitches(c.Notes()))
}

func TestByQuality(t *testing.T) {
	c, err := ByQuality("minor7", note.New(62))
	require.NoError(t, err)
	assert.Equal(t, "D", c.Root.Name())
	assert.Equal(t, "minor7", c.Quality)

	_, err = ByQuality("sus4", note.New(62))
	assert.True(t, errors.Is(err, ErrUnknownQuality))
}

func TestCreateChordKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0-4-7", CreateChordKey([]int{7, 0, 4}))
	assert.Equal("", CreateChordKey(nil))
}

func TestKeyIgnoresVoicing(t *testing.T) {
	voiced := []note.Note{note.New(43), note.New(48), note.New(76), note.New(60)}
	assert.Equal(t, Major(note.New(60)).Key(), Key(voiced))
}

func TestIdentify(t *testing.T) {
	notes := Dominant7(note.New(55)).Notes()
	// G7 voiced from the third
	voiced := []note.Note{notes[1], notes[2], notes[3], notes[0]}

	c, ok := Identify(voiced)
	require.True(t, ok)

	assert := assert.New(t)
	assert.Equal("dominant7", c.Quality)
	assert.Equal("G", c.Root.Name())

	_, ok = Identify([]note.Note{note.New(60), note.New(61), note.New(62)})
	assert.False(ok)
}

func TestChordsAreIdempotent(t *testing.T) {
	assert.Equal(t, Major7(note.New(65)).Notes(), Major7(note.New(65)).Notes())
}
