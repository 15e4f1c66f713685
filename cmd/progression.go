package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/progression"
	"github.com/jsphweid/theorybox/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var progressionReq model.ProgressionRequestBody

var errNoNumerals = errors.New("no numerals given")

func init() {
	rootCmd.AddCommand(progressionCmd)
	progressionCmd.Flags().StringVar(&progressionReq.Root, "root", "C", "root note")
	progressionCmd.Flags().StringVar(&progressionReq.Scale, "scale", "major", "scale the numerals are read in")
	progressionCmd.Flags().StringVar(&progressionReq.Preset, "preset", "", "named progression: "+strings.Join(presetKeys(), ", "))
	progressionCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

var progressionCmd = &cobra.Command{
	Use:   "progression [numerals...]",
	Short: "Resolves roman numerals to chords",
	Long:  `Resolves roman numerals (I, ii, V7, ...) to chords of a scale, or builds a named progression with --preset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := progressionReq
		req.Numerals = args
		p, err := buildProgression(req)
		if err != nil {
			return err
		}
		return printProgression(cmd.OutOrStdout(), p, asJSON)
	},
}

func presetKeys() []string {
	res := make([]string, len(progression.Presets))
	for i, p := range progression.Presets {
		res[i] = p.Key
	}
	return res
}

func buildProgression(req model.ProgressionRequestBody) (progression.Progression, error) {
	root, err := note.Lookup(req.Root)
	if err != nil {
		return progression.Progression{}, err
	}
	if req.Preset != "" {
		return progression.BuildPreset(req.Preset, root)
	}
	if len(req.Numerals) == 0 {
		return progression.Progression{}, errNoNumerals
	}

	s, err := scale.ByQuality(req.Scale, root)
	if err != nil {
		return progression.Progression{}, err
	}
	for _, token := range req.Numerals {
		if _, ok := progression.ParseNumeral(token); !ok {
			logger.Warn("unrecognized numeral, using the tonic", "numeral", token, "scale", s.Name)
		}
	}
	name := s.Name + " " + strings.Join(req.Numerals, "-")
	return progression.Build(name, s, req.Numerals)
}

func printProgression(w io.Writer, p progression.Progression, asJSON bool) error {
	if asJSON {
		return writeJSON(w, model.NewProgression(p))
	}
	fmt.Fprintf(w, "%s Progression:\n", p.Name)
	for i, c := range p.Chords {
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, c.Name, strings.Join(note.Names(c.Notes()), " "))
	}
	return nil
}
