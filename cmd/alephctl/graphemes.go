package main

import (
	"github.com/david-schor/LibAleph/aleph"
	"github.com/david-schor/LibAleph/aleph/segment"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGraphemesCmd())
}

func newGraphemesCmd() *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "graphemes [text]",
		Short: "Segment text into extended grapheme clusters",
		Long: `The graphemes command splits the given text (or stdin) into extended
grapheme clusters per UAX #29, one per line. With --count only the
number of clusters is printed.

Example:
  alephctl graphemes "नमस्ते"
  alephctl graphemes --count "🇺🇸🇫🇷"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			s, err := aleph.NewValidate(in)
			if err != nil {
				return err
			}

			if count {
				if jsonOut {
					return printJSON(map[string]int{"graphemes": s.GLen()})
				}
				printInfo("%d\n", s.GLen())
				return nil
			}

			var clusters []string
			b := s.Bytes()
			for i := 0; i < len(b); {
				end := segment.NextBoundary(b, i)
				clusters = append(clusters, string(b[i:end]))
				i = end
			}
			if jsonOut {
				return printJSON(clusters)
			}
			for _, c := range clusters {
				printInfo("%s\n", c)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&count, "count", false, "Print only the cluster count")
	return cmd
}
