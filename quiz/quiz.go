package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/constants"
	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/util"
	"github.com/pkg/errors"
)

var ErrUnknownKind = errors.New("unknown exercise kind")

type Kind string

const (
	KindInterval     Kind = "interval"
	KindChord        Kind = "chord"
	KindFretboard    Kind = "fretboard"
	KindConstruction Kind = "construction"
)

var Kinds = []Kind{KindInterval, KindChord, KindFretboard, KindConstruction}

type Exercise interface {
	Identifier() uuid.UUID
	Kind() Kind
	Prompt() string
	Solution() string
}

// Generator draws exercises from a seeded source. Two generators built with
// the same seed and collaborators produce the same exercises, IDs included.
type Generator struct {
	rng   *rand.Rand
	namer interval.Namer
	board *fretboard.Fretboard
}

func NewGenerator(seed int64, namer interval.Namer, board *fretboard.Fretboard) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		namer: namer,
		board: board,
	}
}

func (g *Generator) Generate(kind Kind, count int) ([]Exercise, error) {
	var next func() Exercise
	switch kind {
	case KindInterval:
		next = func() Exercise { return g.Interval() }
	case KindChord:
		next = func() Exercise { return g.Chord() }
	case KindFretboard:
		next = func() Exercise { return g.Fretboard() }
	case KindConstruction:
		next = func() Exercise { return g.Construction() }
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	res := make([]Exercise, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, next())
	}
	return res, nil
}

func (g *Generator) id() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(g.rng))
}

func (g *Generator) root() note.Note {
	return note.New(constants.MiddleC + g.rng.Intn(constants.SemitonesPerOctave))
}

func (g *Generator) quality() interval.Formula {
	all := interval.Chords.All()
	return all[g.rng.Intn(len(all))]
}

type IntervalExercise struct {
	ID        uuid.UUID
	Start     note.Note
	End       note.Note
	Semitones int
	Answer    string
}

func (g *Generator) Interval() IntervalExercise {
	start := g.root()
	size := 1 + g.rng.Intn(constants.SemitonesPerOctave)
	return IntervalExercise{
		ID:        g.id(),
		Start:     start,
		End:       start.Transpose(size),
		Semitones: size,
		// sizes are drawn from 1-12 and named unreduced, so 12 is an Octave
		Answer: g.namer.NameOf(size, false),
	}
}

func (e IntervalExercise) Identifier() uuid.UUID { return e.ID }
func (e IntervalExercise) Kind() Kind            { return KindInterval }
func (e IntervalExercise) Prompt() string        { return e.Start.Name() + " to " + e.End.Name() }
func (e IntervalExercise) Solution() string {
	return fmt.Sprintf("%s (%d semitones)", e.Answer, e.Semitones)
}

func (e IntervalExercise) Check(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), e.Answer)
}

type ChordExercise struct {
	ID     uuid.UUID
	Chord  chord.Chord
	Answer string
}

func (g *Generator) Chord() ChordExercise {
	root := g.root()
	f := g.quality()
	return ChordExercise{ID: g.id(), Chord: chord.Build(f, root), Answer: f.Name}
}

func (e ChordExercise) Identifier() uuid.UUID { return e.ID }
func (e ChordExercise) Kind() Kind            { return KindChord }
func (e ChordExercise) Prompt() string        { return strings.Join(note.Names(e.Chord.Notes()), " ") }
func (e ChordExercise) Solution() string      { return e.Answer }

func (e ChordExercise) Check(answer string) bool {
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, e.Answer) || strings.EqualFold(answer, e.Chord.Quality)
}

type FretboardExercise struct {
	ID     uuid.UUID
	String int
	Fret   int
	Answer note.Note
}

func (g *Generator) Fretboard() FretboardExercise {
	str := g.rng.Intn(g.board.Strings())
	fret := g.rng.Intn(util.Min(constants.QuizFretSpan, g.board.Frets()+1))
	n, _ := g.board.NoteAt(str, fret)
	return FretboardExercise{ID: g.id(), String: str, Fret: fret, Answer: n}
}

func (e FretboardExercise) Identifier() uuid.UUID { return e.ID }
func (e FretboardExercise) Kind() Kind            { return KindFretboard }
func (e FretboardExercise) Prompt() string {
	return fmt.Sprintf("string %d, fret %d", e.String+1, e.Fret)
}
func (e FretboardExercise) Solution() string { return e.Answer.Name() }

// Check accepts any spelling of the right pitch class.
func (e FretboardExercise) Check(answer string) bool {
	n, err := note.Lookup(answer)
	if err != nil {
		return false
	}
	return n.SameClass(e.Answer)
}

type ConstructionExercise struct {
	ID    uuid.UUID
	Chord chord.Chord
}

func (g *Generator) Construction() ConstructionExercise {
	root := g.root()
	f := g.quality()
	return ConstructionExercise{ID: g.id(), Chord: chord.Build(f, root)}
}

func (e ConstructionExercise) Identifier() uuid.UUID { return e.ID }
func (e ConstructionExercise) Kind() Kind            { return KindConstruction }
func (e ConstructionExercise) Prompt() string        { return e.Chord.Name }
func (e ConstructionExercise) Solution() string {
	return strings.Join(note.Names(e.Chord.Notes()), " ")
}

// Check accepts the chord's notes in any order or octave.
func (e ConstructionExercise) Check(answers []string) bool {
	notes := make([]note.Note, 0, len(answers))
	for _, a := range answers {
		n, err := note.Lookup(a)
		if err != nil {
			return false
		}
		notes = append(notes, n)
	}
	return chord.Key(notes) == e.Chord.Key()
}
