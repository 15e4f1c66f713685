package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "theorybox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "")
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(24, cfg.Frets)
	assert.Equal(fretboard.PitchClass, cfg.Policy())
	assert.False(cfg.Namer().OctaveAsOctave)
	assert.Equal("8080", cfg.Port)

	board, err := cfg.Fretboard()
	require.NoError(t, err)
	assert.Equal(note.Pitches(fretboard.StandardTuning), note.Pitches(board.Tuning()))
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "")
	t.Setenv("PORT", "")
	path := writeConfig(t, `
tuning: [D4, A3, F#3, D3, A2, D2]
frets: 12
highlight: substring
octave_as_octave: true
seed: 99
exercises: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(fretboard.Substring, cfg.Policy())
	assert.True(cfg.Namer().OctaveAsOctave)
	require.NotNil(t, cfg.Seed)
	assert.Equal(int64(99), *cfg.Seed)
	assert.Equal(3, cfg.Exercises)

	board, err := cfg.Fretboard()
	require.NoError(t, err)
	assert.Equal(12, board.Frets())
	low, err := board.NoteAt(5, 0)
	require.NoError(t, err)
	assert.Equal(38, low.Pitch)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "1234")
	t.Setenv("PORT", "9090")
	path := writeConfig(t, "seed: 5\nport: \"7070\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(1234), *cfg.Seed)
	assert.Equal(t, "9090", cfg.Port)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "")
	cases := map[string]string{
		"bad note":   "tuning: [E4, Q3]\n",
		"no strings": "tuning: []\n",
		"frets":      "frets: -2\n",
		"huge frets": "frets: 2000000000\n",
		"policy":     "highlight: fuzzy\n",
		"exercises":  "exercises: 0\n",
		"yaml":       "tuning: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestSeedZeroIsKept(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "")
	cfg, err := Load(writeConfig(t, "seed: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(0), *cfg.Seed)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Seed)
}

func TestFretsUpperBound(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "")
	cfg, err := Load(writeConfig(t, "frets: 36\n"))
	require.NoError(t, err)
	assert.Equal(t, 36, cfg.Frets)

	_, err = Load(writeConfig(t, "frets: 37\n"))
	assert.Error(t, err)
}

func TestBadSeed(t *testing.T) {
	t.Setenv("THEORYBOX_SEED", "abc")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGeneratorIsSeeded(t *testing.T) {
	cfg := Default()
	a, err := cfg.Generator(8)
	require.NoError(t, err)
	b, err := cfg.Generator(8)
	require.NoError(t, err)
	assert.Equal(t, a.Interval(), b.Interval())
}
