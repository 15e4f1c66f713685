package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/config"
	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/progression"
	"github.com/jsphweid/theorybox/quiz"
	"github.com/jsphweid/theorybox/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the model as JSON over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := NewRouter(cfg)
		if err != nil {
			return err
		}
		logger.Info("listening", "port", cfg.Port)
		return http.ListenAndServe(":"+cfg.Port, handler)
	},
}

type server struct {
	cfg    *config.Config
	board  *fretboard.Fretboard
	policy fretboard.MatchPolicy
	namer  interval.Namer
}

// NewRouter builds the HTTP API for c. The fretboard is built once and shared
// by every request since it never changes. A root may be any spelling Lookup
// accepts, including "A#/Bb" sent as A%23/Bb.
func NewRouter(c *config.Config) (http.Handler, error) {
	board, err := c.Fretboard()
	if err != nil {
		return nil, err
	}
	s := &server{cfg: c, board: board, policy: c.Policy(), namer: c.Namer()}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales", s.handleListScales).Methods("GET")
	router.HandleFunc("/scales/{quality}/{root:.+}", s.handleScale).Methods("GET")
	router.HandleFunc("/chords", s.handleListChords).Methods("GET")
	router.HandleFunc("/chords/{quality}/{root:.+}", s.handleChord).Methods("GET")
	router.HandleFunc("/progressions", s.handleProgression).Methods("POST")
	router.HandleFunc("/fretboard", s.handleFretboard).Methods("GET")
	router.HandleFunc("/intervals", s.handleListIntervals).Methods("GET")
	router.HandleFunc("/intervals/{semitones}", s.handleInterval).Methods("GET")
	router.HandleFunc("/quiz/{kind}", s.handleQuiz).Methods("GET")

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router), nil
}

func respond(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", "err", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, note.ErrInvalidRootNote),
		errors.Is(err, fretboard.ErrIndexOutOfRange),
		errors.Is(err, errNoNumerals):
		return http.StatusBadRequest
	case errors.Is(err, scale.ErrUnknownQuality),
		errors.Is(err, chord.ErrUnknownQuality),
		errors.Is(err, progression.ErrUnknownPreset),
		errors.Is(err, quiz.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, progression.ErrDegreeOutOfRange):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		logger.Warn("bad request", "path", r.URL.Path, "status", status, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func (s *server) queryRange(r *http.Request) (fretboard.Range, error) {
	rng := s.board.FullRange()
	for name, dst := range map[string]*int{"from": &rng.From, "to": &rng.To} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return rng, errors.Wrapf(fretboard.ErrIndexOutOfRange, "%s=%q", name, raw)
		}
		*dst = v
	}
	return rng, nil
}

func (s *server) highlighted(r *http.Request, notes []note.Note) (model.Fretboard, error) {
	rng, err := s.queryRange(r)
	if err != nil {
		return model.Fretboard{}, err
	}
	lit, err := s.board.Highlight(notes, rng, s.policy)
	if err != nil {
		return model.Fretboard{}, err
	}
	return newFretboardView(s.board, rng, lit)
}

func (s *server) handleListScales(w http.ResponseWriter, r *http.Request) {
	respond(w, interval.Scales.Slugs())
}

func (s *server) handleListChords(w http.ResponseWriter, r *http.Request) {
	respond(w, interval.Chords.Slugs())
}

type scaleResponse struct {
	model.Scale
	Fretboard *model.Fretboard `json:"fretboard,omitempty"`
}

func (s *server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.Lookup(vars["root"])
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	sc, err := scale.ByQuality(vars["quality"], root)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}

	res := scaleResponse{Scale: model.NewScale(sc)}
	if r.URL.Query().Get("highlight") == "true" {
		view, err := s.highlighted(r, sc.Notes())
		if err != nil {
			fail(w, r, statusFor(err), err)
			return
		}
		res.Fretboard = &view
	}
	respond(w, res)
}

type chordResponse struct {
	model.Chord
	Fretboard *model.Fretboard `json:"fretboard,omitempty"`
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, err := note.Lookup(vars["root"])
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	c, err := chord.ByQuality(vars["quality"], root)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}

	res := chordResponse{Chord: model.NewChord(c)}
	if r.URL.Query().Get("highlight") == "true" {
		view, err := s.highlighted(r, c.Notes())
		if err != nil {
			fail(w, r, statusFor(err), err)
			return
		}
		res.Fretboard = &view
	}
	respond(w, res)
}

func (s *server) handleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fail(w, r, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}
	if input.Root == "" {
		input.Root = "C"
	}
	if input.Scale == "" {
		input.Scale = interval.MajorScale.Slug
	}

	p, err := buildProgression(input)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	respond(w, model.NewProgression(p))
}

// handleFretboard highlights the comma separated notes= names, if any.
func (s *server) handleFretboard(w http.ResponseWriter, r *http.Request) {
	var targets []note.Note
	if raw := r.URL.Query().Get("notes"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			n, err := note.Lookup(name)
			if err != nil {
				fail(w, r, statusFor(err), err)
				return
			}
			targets = append(targets, n)
		}
	}

	rng, err := s.queryRange(r)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	var lit [][]bool
	if targets != nil {
		lit, err = s.board.Highlight(targets, rng, s.policy)
		if err != nil {
			fail(w, r, statusFor(err), err)
			return
		}
	}
	view, err := newFretboardView(s.board, rng, lit)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	respond(w, view)
}

func (s *server) handleListIntervals(w http.ResponseWriter, r *http.Request) {
	defs := s.namer.Definitions()
	res := make([]model.Interval, len(defs))
	for i, d := range defs {
		res[i] = model.Interval{Semitones: d.Semitones, Name: d.Name}
	}
	respond(w, res)
}

// handleInterval reduces modulo the octave unless mod12=false.
func (s *server) handleInterval(w http.ResponseWriter, r *http.Request) {
	semitones, err := strconv.Atoi(mux.Vars(r)["semitones"])
	if err != nil {
		fail(w, r, http.StatusBadRequest, errors.Wrap(err, "semitones must be a whole number"))
		return
	}
	reduce := r.URL.Query().Get("mod12") != "false"
	respond(w, model.Interval{Semitones: semitones, Name: s.namer.NameOf(semitones, reduce)})
}

func (s *server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var seed *int64
	if query.Has("seed") {
		v, err := strconv.ParseInt(query.Get("seed"), 10, 64)
		if err != nil {
			fail(w, r, http.StatusBadRequest, errors.Wrap(err, "seed"))
			return
		}
		seed = &v
	}
	count := s.cfg.Exercises
	if raw := query.Get("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			fail(w, r, http.StatusBadRequest, errors.Errorf("count must be between 1 and 100, got %q", raw))
			return
		}
		count = v
	}

	g := quiz.NewGenerator(pickSeed(seed, s.cfg.Seed), s.namer, s.board)
	exercises, err := g.Generate(quiz.Kind(mux.Vars(r)["kind"]), count)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	res := make([]model.Exercise, len(exercises))
	for i, e := range exercises {
		res[i] = model.NewExercise(e)
	}
	respond(w, res)
}
