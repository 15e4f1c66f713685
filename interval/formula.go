package interval

import "github.com/jsphweid/theorybox/util"

// Formula is a named, immutable list of semitone values. Scale formulas hold
// successive steps; chord formulas hold offsets from the root.
type Formula struct {
	Slug      string
	Name      string
	Symbol    string
	semitones []int
}

func NewFormula(slug, name, symbol string, semitones ...int) Formula {
	return Formula{Slug: slug, Name: name, Symbol: symbol, semitones: util.Clone(semitones)}
}

func (f Formula) Semitones() []int {
	return util.Clone(f.semitones)
}

func (f Formula) Len() int {
	return len(f.semitones)
}

// Registry keeps formulas in registration order and by slug.
type Registry struct {
	ordered []Formula
	bySlug  map[string]Formula
}

func NewRegistry(formulas ...Formula) *Registry {
	r := &Registry{bySlug: make(map[string]Formula, len(formulas))}
	for _, f := range formulas {
		r.ordered = append(r.ordered, f)
		r.bySlug[f.Slug] = f
	}
	return r
}

func (r *Registry) Get(slug string) (Formula, bool) {
	f, ok := r.bySlug[slug]
	return f, ok
}

func (r *Registry) All() []Formula {
	return util.Clone(r.ordered)
}

func (r *Registry) Slugs() []string {
	res := make([]string, len(r.ordered))
	for i, f := range r.ordered {
		res[i] = f.Slug
	}
	return res
}

var (
	MajorScale           = NewFormula("major", "Major", " Major", 2, 2, 1, 2, 2, 2, 1)
	MinorScale           = NewFormula("minor", "Minor", " Minor", 2, 1, 2, 2, 1, 2, 2)
	PentatonicMajorScale = NewFormula("pentatonic-major", "Pentatonic Major", " Pentatonic Major", 2, 2, 3, 2, 3)
	PentatonicMinorScale = NewFormula("pentatonic-minor", "Pentatonic Minor", " Pentatonic Minor", 3, 2, 2, 3, 2)
	BluesScale           = NewFormula("blues", "Blues", " Blues", 3, 2, 1, 1, 3, 2)
)

// modes of the major scale
var (
	Ionian     = NewFormula("ionian", "Ionian", " Ionian", 2, 2, 1, 2, 2, 2, 1)
	Dorian     = NewFormula("dorian", "Dorian", " Dorian", 2, 1, 2, 2, 2, 1, 2)
	Phrygian   = NewFormula("phrygian", "Phrygian", " Phrygian", 1, 2, 2, 2, 1, 2, 2)
	Lydian     = NewFormula("lydian", "Lydian", " Lydian", 2, 2, 2, 1, 2, 2, 1)
	Mixolydian = NewFormula("mixolydian", "Mixolydian", " Mixolydian", 2, 2, 1, 2, 2, 1, 2)
	Aeolian    = NewFormula("aeolian", "Aeolian", " Aeolian", 2, 1, 2, 2, 1, 2, 2)
	Locrian    = NewFormula("locrian", "Locrian", " Locrian", 1, 2, 2, 1, 2, 2, 2)
)

var (
	MajorChord     = NewFormula("major", "Major", " Major", 4, 7)
	MinorChord     = NewFormula("minor", "Minor", " Minor", 3, 7)
	Dominant7Chord = NewFormula("dominant7", "Dominant 7", "7", 4, 7, 10)
	Major7Chord    = NewFormula("major7", "Major 7", "Maj7", 4, 7, 11)
	Minor7Chord    = NewFormula("minor7", "Minor 7", "min7", 3, 7, 10)
)

var Scales = NewRegistry(
	MajorScale, MinorScale, PentatonicMajorScale, PentatonicMinorScale, BluesScale,
	Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
)

var Chords = NewRegistry(
	MajorChord, MinorChord, Dominant7Chord, Major7Chord, Minor7Chord,
)
