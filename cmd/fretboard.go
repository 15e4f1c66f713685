package cmd

import (
	"github.com/jsphweid/theorybox/fretboard"
	"github.com/jsphweid/theorybox/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fretboardCmd)
	addViewFlags(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Prints the note on every fret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fb, err := cfg.Fretboard()
		if err != nil {
			return err
		}
		r := viewRange(fb)
		if asJSON {
			view, err := newFretboardView(fb, r, nil)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), view)
		}
		return renderFretboard(cmd.OutOrStdout(), fb, r, nil)
	},
}

func newFretboardView(fb *fretboard.Fretboard, r fretboard.Range, lit [][]bool) (model.Fretboard, error) {
	view := model.Fretboard{
		Tuning:    model.NewNotes(fb.Tuning()),
		From:      r.From,
		To:        r.To,
		Highlight: lit,
	}
	for str := 0; str < fb.Strings(); str++ {
		row, err := fb.Row(str, r)
		if err != nil {
			return model.Fretboard{}, err
		}
		view.Cells = append(view.Cells, model.NewNotes(row))
	}
	return view, nil
}
