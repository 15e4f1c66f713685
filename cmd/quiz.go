package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/quiz"
	"github.com/spf13/cobra"
)

var (
	quizSeed  int64
	quizCount int
)

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().Int64Var(&quizSeed, "seed", 0, "random seed (default: config seed, else the clock)")
	quizCmd.Flags().IntVar(&quizCount, "count", 0, "number of exercises (default: config exercises)")
	quizCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

var quizCmd = &cobra.Command{
	Use:       "quiz <interval|chord|fretboard|construction>",
	Short:     "Prints practice exercises with their answers",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(quiz.KindInterval), string(quiz.KindChord), string(quiz.KindFretboard), string(quiz.KindConstruction)},
	RunE: func(cmd *cobra.Command, args []string) error {
		var explicit *int64
		if cmd.Flags().Changed("seed") {
			explicit = &quizSeed
		}
		seed := pickSeed(explicit, cfg.Seed)
		count := quizCount
		if count <= 0 {
			count = cfg.Exercises
		}

		g, err := cfg.Generator(seed)
		if err != nil {
			return err
		}
		exercises, err := g.Generate(quiz.Kind(args[0]), count)
		if err != nil {
			return err
		}
		logger.Debug("generated exercises", "kind", args[0], "count", count, "seed", seed)
		return printExercises(cmd.OutOrStdout(), exercises, asJSON)
	},
}

// pickSeed prefers an explicit seed, then the configured one, then the clock.
// Nil means not given; zero is a seed like any other.
func pickSeed(explicit, configured *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	if configured != nil {
		return *configured
	}
	return time.Now().UnixNano()
}

func printExercises(w io.Writer, exercises []quiz.Exercise, asJSON bool) error {
	if asJSON {
		res := make([]model.Exercise, len(exercises))
		for i, e := range exercises {
			res[i] = model.NewExercise(e)
		}
		return writeJSON(w, res)
	}
	for i, e := range exercises {
		fmt.Fprintf(w, "Exercise %d: %s\n  Answer: %s\n", i+1, e.Prompt(), e.Solution())
	}
	return nil
}
