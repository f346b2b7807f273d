package main

import (
	"fmt"

	"github.com/david-schor/LibAleph/aleph"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTransformCmd())
}

func newTransformCmd() *cobra.Command {
	var simple bool

	cmd := &cobra.Command{
		Use:   "transform <upper|lower|title|fold> [text]",
		Short: "Case-transform text with full or simple mappings",
		Long: `The transform command applies a Unicode case transformation to the
given text (or stdin). Full mappings may change the length (ß becomes
SS); --simple restricts to the 1:1 mappings.

Example:
  alephctl transform upper "straße"
  alephctl transform lower "ΟΔΥΣΣΕΥΣ"
  alephctl transform fold --simple "Fluß"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[1:])
			if err != nil {
				return err
			}
			s, err := aleph.NewValidate(in)
			if err != nil {
				return err
			}

			switch op := args[0]; {
			case op == "upper" && simple:
				s.ToUpperSimple()
			case op == "upper":
				s.ToUpper()
			case op == "lower" && simple:
				s.ToLowerSimple()
			case op == "lower":
				s.ToLower()
			case op == "title" && simple:
				s.ToTitleSimple()
			case op == "title":
				s.ToTitle()
			case op == "fold" && simple:
				s.ToFoldSimple()
			case op == "fold":
				s.ToFold()
			default:
				return fmt.Errorf("unknown transform %q (want upper, lower, title or fold)", args[0])
			}

			if jsonOut {
				return printJSON(map[string]any{
					"text":       s.String(),
					"bytes":      s.Size(),
					"codepoints": s.Len(),
				})
			}
			printInfo("%s\n", s.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&simple, "simple", false, "Use 1:1 simple mappings")
	return cmd
}
