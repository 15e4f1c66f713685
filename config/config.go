package config

import (
	"os"
	"strconv"

	"github.com/jsphweid/theorybox/constants"
	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/quiz"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is everything a model consumer needs that is not fixed music theory.
// Tuning lists open strings from the highest to the lowest in scientific
// notation ("E4"). OctaveAsOctave names multiples of 12 "Octave" instead of
// reducing them away.
type Config struct {
	Tuning         []string `yaml:"tuning"`
	Frets          int      `yaml:"frets"`
	Highlight      string   `yaml:"highlight"`
	OctaveAsOctave bool     `yaml:"octave_as_octave"`
	Seed           *int64   `yaml:"seed"`
	Exercises      int      `yaml:"exercises"`
	Port           string   `yaml:"port"`
}

func Default() *Config {
	return &Config{
		Tuning:    []string{"E4", "B3", "G3", "D3", "A2", "E2"},
		Frets:     constants.DefaultFrets,
		Highlight: fretboard.PitchClass.String(),
		Exercises: constants.DefaultExerciseCount,
		Port:      constants.GetPort(),
	}
}

// Load reads path over the defaults. A missing file is not an error. The
// THEORYBOX_SEED and PORT environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if seed := constants.GetSeed(); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "THEORYBOX_SEED")
		}
		cfg.Seed = &v
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := c.OpenStrings(); err != nil {
		return err
	}
	if c.Frets < 0 || c.Frets > constants.MaxFrets {
		return errors.Errorf("frets must be between 0 and %d, got %d", constants.MaxFrets, c.Frets)
	}
	if c.Exercises < 1 {
		return errors.Errorf("exercises must be positive, got %d", c.Exercises)
	}
	_, err := fretboard.ParsePolicy(c.Highlight)
	return err
}

func (c *Config) OpenStrings() ([]note.Note, error) {
	if len(c.Tuning) == 0 {
		return nil, errors.New("tuning has no strings")
	}
	res := make([]note.Note, 0, len(c.Tuning))
	for i, name := range c.Tuning {
		n, err := note.ParseScientific(name)
		if err != nil {
			return nil, errors.Wrapf(err, "tuning string %d", i+1)
		}
		res = append(res, n)
	}
	return res, nil
}

func (c *Config) Fretboard() (*fretboard.Fretboard, error) {
	open, err := c.OpenStrings()
	if err != nil {
		return nil, err
	}
	return fretboard.Build(open, c.Frets)
}

func (c *Config) Policy() fretboard.MatchPolicy {
	p, _ := fretboard.ParsePolicy(c.Highlight)
	return p
}

func (c *Config) Namer() interval.Namer {
	return interval.Namer{OctaveAsOctave: c.OctaveAsOctave}
}

func (c *Config) Generator(seed int64) (*quiz.Generator, error) {
	board, err := c.Fretboard()
	if err != nil {
		return nil, err
	}
	return quiz.NewGenerator(seed, c.Namer(), board), nil
}
