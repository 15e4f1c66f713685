package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/theorybox/chord"
	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
	addViewFlags(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <quality> <root>",
	Short: "Shows a chord and where its notes lie on the neck",
	Long:  `Shows a chord and where its notes lie on the neck. Qualities: ` + strings.Join(interval.Chords.Slugs(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Lookup(args[1])
		if err != nil {
			return err
		}
		c, err := chord.ByQuality(args[0], root)
		if err != nil {
			return err
		}
		fb, err := cfg.Fretboard()
		if err != nil {
			return err
		}
		return printChord(cmd.OutOrStdout(), c, fb, viewRange(fb), cfg.Policy(), asJSON)
	},
}

func printChord(w io.Writer, c chord.Chord, fb *fretboard.Fretboard, r fretboard.Range, policy fretboard.MatchPolicy, asJSON bool) error {
	if asJSON {
		return writeJSON(w, model.NewChord(c))
	}
	fmt.Fprintf(w, "%s Chord: %s\n", c.Name, strings.Join(note.Names(c.Notes()), " "))
	lit, err := fb.Highlight(c.Notes(), r, policy)
	if err != nil {
		return err
	}
	return renderFretboard(w, fb, r, lit)
}
