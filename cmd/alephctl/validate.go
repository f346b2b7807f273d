package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/david-schor/LibAleph/aleph"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that files contain well-formed UTF-8",
		Long: `The validate command maps each file read-only and checks that it is
entirely well-formed UTF-8, reporting the byte offset of the first
malformed byte otherwise.

Example:
  alephctl validate corpus.txt notes.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, path := range args {
				m, err := aleph.MapFile(path)
				if err != nil {
					if errors.Is(err, aleph.ErrInvalidUTF8) {
						fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
						bad++
						continue
					}
					return err
				}
				printInfo("%s: ok (%d bytes)\n", path, m.Size())
				_ = m.Close()
			}
			if bad > 0 {
				return fmt.Errorf("%d file(s) failed validation", bad)
			}
			return nil
		},
	}
}
