package progression

import (
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/scale"
	"github.com/pkg/errors"
)

type Preset struct {
	Key      string
	Title    string
	Scale    interval.Formula
	Numerals []string
}

var Presets = []Preset{
	{Key: "i-iv-v", Title: "Major I-IV-V", Scale: interval.MajorScale, Numerals: []string{"I", "IV", "V"}},
	{Key: "pop", Title: "Major I-V-vi-IV (Pop)", Scale: interval.MajorScale, Numerals: []string{"I", "V", "vi", "IV"}},
	{Key: "jazz", Title: "Major ii-V-I (Jazz)", Scale: interval.MajorScale, Numerals: []string{"ii", "V", "I"}},
	{Key: "minor", Title: "Minor i-iv-v", Scale: interval.MinorScale, Numerals: []string{"i", "iv", "v"}},
}

func FindPreset(key string) (Preset, bool) {
	for _, p := range Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

func BuildPreset(key string, root note.Note) (Progression, error) {
	p, ok := FindPreset(key)
	if !ok {
		return Progression{}, errors.Wrapf(ErrUnknownPreset, "%q", key)
	}
	return Build(root.Name()+" "+p.Title, scale.Build(p.Scale, root), p.Numerals)
}
