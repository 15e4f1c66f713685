package model

import (
	"encoding/json"
	"testing"

	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteOmitsMidiOutsideRange(t *testing.T) {
	data, err := json.Marshal(NewNote(note.New(-3)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","pitch":-3}`, string(data))

	data, err = json.Marshal(NewNote(note.New(64)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"E","pitch":64,"midi":64,"scientific":"E4"}`, string(data))
}

func TestNewNoteScientificUsesFlats(t *testing.T) {
	n := NewNote(note.New(70))
	assert.Equal(t, "A#/Bb", n.Name)
	assert.Equal(t, "Bb4", n.Scientific)
}

func TestNewChord(t *testing.T) {
	c := NewChord(chord.Minor7(note.New(62)))

	assert := assert.New(t)
	assert.Equal("Dmin7", c.Name)
	assert.Equal("minor7", c.Quality)
	assert.Len(c.Notes, 4)
	assert.Equal("C", c.Notes[3].Name)
}
