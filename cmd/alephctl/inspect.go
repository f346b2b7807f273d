package main

import (
	"fmt"

	"github.com/david-schor/LibAleph/aleph"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

type cpReport struct {
	Codepoint string `json:"codepoint"`
	Char      string `json:"char"`
	Category  string `json:"category"`
	Block     string `json:"block"`
	CCC       uint8  `json:"ccc"`
	Upper     string `json:"upper,omitempty"`
	Lower     string `json:"lower,omitempty"`
	Fold      string `json:"fold,omitempty"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [text]",
		Short: "Show per-code-point properties of a text",
		Long: `The inspect command prints one line per code point of the given text
(or stdin): scalar value, general category, block, combining class and
case mappings.

Example:
  alephctl inspect "Åß"
  alephctl inspect --json "नि"`,
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

			var reports []cpReport
			it := s.Iter()
			for {
				cp, ok := it.NextCP()
				if !ok {
					break
				}
				r := cpReport{
					Codepoint: fmt.Sprintf("U+%04X", cp),
					Char:      string(cp),
					Category:  aleph.CategoryName(cp),
					Block:     aleph.BlockNameOf(cp),
					CCC:       aleph.CCC(cp),
				}
				if u := aleph.FullUpperCP(cp); len(u) != 1 || u[0] != cp {
					r.Upper = string(u)
				}
				if l := aleph.FullLowerCP(cp); len(l) != 1 || l[0] != cp {
					r.Lower = string(l)
				}
				if f := aleph.FullFoldCP(cp); len(f) != 1 || f[0] != cp {
					r.Fold = string(f)
				}
				reports = append(reports, r)
			}

			if jsonOut {
				return printJSON(reports)
			}
			for _, r := range reports {
				printInfo("%-8s %-3q %-3s ccc=%-3d %s", r.Codepoint, r.Char, r.Category, r.CCC, r.Block)
				if r.Upper != "" {
					printInfo("  upper=%q", r.Upper)
				}
				if r.Lower != "" {
					printInfo("  lower=%q", r.Lower)
				}
				if r.Fold != "" {
					printInfo("  fold=%q", r.Fold)
				}
				printInfo("\n")
			}
			return nil
		},
	}
}
