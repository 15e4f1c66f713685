package constants

import "os"

func GetConfigPath() string {
	path := os.Getenv("THEORYBOX_CONFIG")
	if path != "" {
		return path
	}
	return "./theorybox.yaml"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetSeed returns the raw THEORYBOX_SEED value, empty when unset.
func GetSeed() string {
	return os.Getenv("THEORYBOX_SEED")
}

const SemitonesPerOctave = 12

// MIDI value of C4. Roots resolved from a bare name land in this octave.
const MiddleC = 60

const DefaultFrets = 24

const MaxFrets = 36

// quiz fretboard questions stay below the 12th fret
const QuizFretSpan = 12

const DefaultExerciseCount = 5
