package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/interval"
	"github.com/jsphweid/theorybox/model"
	"github.com/jsphweid/theorybox/note"
	"github.com/jsphweid/theorybox/scale"
	"github.com/jsphweid/theorybox/util"
	"github.com/spf13/cobra"
)

var (
	fromFret int
	toFret   int
	asJSON   bool
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	addViewFlags(scaleCmd)
}

func addViewFlags(c *cobra.Command) {
	c.Flags().IntVar(&fromFret, "from", 0, "first fret shown")
	c.Flags().IntVar(&toFret, "to", -1, "last fret shown (default 12, or the last fret)")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

var scaleCmd = &cobra.Command{
	Use:   "scale <quality> <root>",
	Short: "Shows a scale and where it lies on the neck",
	Long:  `Shows a scale and where it lies on the neck. Qualities: ` + strings.Join(interval.Scales.Slugs(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := note.Lookup(args[1])
		if err != nil {
			return err
		}
		s, err := scale.ByQuality(args[0], root)
		if err != nil {
			return err
		}
		fb, err := cfg.Fretboard()
		if err != nil {
			return err
		}
		return printScale(cmd.OutOrStdout(), s, fb, viewRange(fb), cfg.Policy(), asJSON)
	},
}

func viewRange(fb *fretboard.Fretboard) fretboard.Range {
	to := toFret
	if to < 0 {
		to = util.Min(12, fb.Frets())
	}
	return fretboard.Range{From: fromFret, To: to}
}

func printScale(w io.Writer, s scale.Scale, fb *fretboard.Fretboard, r fretboard.Range, policy fretboard.MatchPolicy, asJSON bool) error {
	if asJSON {
		return writeJSON(w, model.NewScale(s))
	}
	fmt.Fprintf(w, "%s Scale (%s): %s\n", s.Name, s.Root.Name(), strings.Join(note.Names(s.Notes()), " "))
	lit, err := fb.Highlight(s.Notes(), r, policy)
	if err != nil {
		return err
	}
	return renderFretboard(w, fb, r, lit)
}
