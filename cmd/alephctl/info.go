package main

import (
	"github.com/david-schor/LibAleph/aleph"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [text]",
		Short: "Report the three lengths and metadata of a text",
		Long: `The info command prints the byte length, code point length and
grapheme cluster length of the given text (or stdin), plus the Unicode
version of the property tables.

Example:
  alephctl info "Café"
  echo -n "नमस्ते" | alephctl info --json`,
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
			logger.Debug("parsed input", "bytes", s.Size())

			if jsonOut {
				return printJSON(map[string]any{
					"bytes":          s.Size(),
					"codepoints":     s.Len(),
					"graphemes":      s.GLen(),
					"capacity":       s.Mem(),
					"unicodeVersion": aleph.UnicodeVersion,
				})
			}
			printInfo("Bytes:           %d\n", s.Size())
			printInfo("Code points:     %d\n", s.Len())
			printInfo("Graphemes:       %d\n", s.GLen())
			printInfo("Capacity:        %d\n", s.Mem())
			printInfo("Unicode version: %s\n", aleph.UnicodeVersion)
			return nil
		},
	}
}
