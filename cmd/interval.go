package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var mod12 bool

func init() {
	rootCmd.AddCommand(intervalCmd)
	intervalCmd.Flags().BoolVar(&mod12, "mod12", true, "reduce the distance modulo the octave before naming it")
	intervalCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

var intervalCmd = &cobra.Command{
	Use:   "interval [semitones]",
	Short: "Names a semitone distance, or lists the interval table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		namer := cfg.Namer()
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			return printDefinitions(w, namer.Definitions(), asJSON)
		}
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrap(err, "semitones must be a whole number")
		}
		res := model.Interval{Semitones: semitones, Name: namer.NameOf(semitones, mod12)}
		if asJSON {
			return writeJSON(w, res)
		}
		_, err = fmt.Fprintln(w, res.Name)
		return err
	},
}

func printDefinitions(w io.Writer, defs []interval.Definition, asJSON bool) error {
	if asJSON {
		res := make([]model.Interval, len(defs))
		for i, d := range defs {
			res[i] = model.Interval{Semitones: d.Semitones, Name: d.Name}
		}
		return writeJSON(w, res)
	}
	fmt.Fprintln(w, "Common Intervals:")
	for _, d := range defs {
		fmt.Fprintf(w, "%12s: %d semitones\n", d.Name, d.Semitones)
	}
	return nil
}
