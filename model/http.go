package model

import (
	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/progression"
	"github.com/jsphweid/theorybox/quiz"
	"github.com/jsphweid/theorybox/scale"
)

type Note struct {
	Name       string `json:"name"`
	Pitch      int    `json:"pitch"`
	Midi       *uint8 `json:"midi,omitempty"`
	Scientific string `json:"scientific,omitempty"`
}

type Scale struct {
	Name  string `json:"name"`
	Root  Note   `json:"root"`
	Steps []int  `json:"steps"`
	Notes []Note `json:"notes"`
}

type Chord struct {
	Name    string `json:"name"`
	Quality string `json:"quality"`
	Root    Note   `json:"root"`
	Notes   []Note `json:"notes"`
}

type Progression struct {
	Name   string  `json:"name"`
	Scale  Scale   `json:"scale"`
	Chords []Chord `json:"chords"`
}

type ProgressionRequestBody struct {
	Root     string   `json:"root"`
	Scale    string   `json:"scale"`
	Numerals []string `json:"numerals"`
	Preset   string   `json:"preset"`
}

type Fretboard struct {
	Tuning    []Note   `json:"tuning"`
	From      int      `json:"from"`
	To        int      `json:"to"`
	Cells     [][]Note `json:"cells"`
	Highlight [][]bool `json:"highlight,omitempty"`
}

type Interval struct {
	Semitones int    `json:"semitones"`
	Name      string `json:"name"`
}

type Exercise struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

func NewNote(n note.Note) Note {
	res := Note{Name: n.Name(), Pitch: n.Pitch}
	if m, ok := n.MIDI(); ok {
		v := m.Value()
		res.Midi = &v
		res.Scientific, _ = n.Scientific()
	}
	return res
}

func NewNotes(notes []note.Note) []Note {
	res := make([]Note, len(notes))
	for i, n := range notes {
		res[i] = NewNote(n)
	}
	return res
}

func NewScale(s scale.Scale) Scale {
	return Scale{Name: s.Name, Root: NewNote(s.Root), Steps: s.Steps(), Notes: NewNotes(s.Notes())}
}

func NewChord(c chord.Chord) Chord {
	return Chord{Name: c.Name, Quality: c.Quality, Root: NewNote(c.Root), Notes: NewNotes(c.Notes())}
}

func NewProgression(p progression.Progression) Progression {
	chords := make([]Chord, len(p.Chords))
	for i, c := range p.Chords {
		chords[i] = NewChord(c)
	}
	return Progression{Name: p.Name, Scale: NewScale(p.Scale), Chords: chords}
}

func NewExercise(e quiz.Exercise) Exercise {
	return Exercise{
		ID:     e.Identifier().String(),
		Kind:   string(e.Kind()),
		Prompt: e.Prompt(),
		Answer: e.Solution(),
	}
}
