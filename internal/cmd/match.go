package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmbracelet/pal/internal/pal"
)

func newMatchCmd(p pal.Platform) *cobra.Command {
	return &cobra.Command{
		Use:   "match <os>...",
		Short: "Check OS names against the compiled target",
		Long: `Prints whether each name refers to the OS this binary was built for.
Names are case-sensitive; "macos" and "darwin" are the same family.
Fails if any name does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var misses int
			for _, name := range args {
				ok := p.Matches(name)
				if !ok {
					misses++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", name, ok)
			}
			if misses > 0 {
				return fmt.Errorf("%d of %d names do not match %s", misses, len(args), p.Name())
			}
			return nil
		},
	}
}
