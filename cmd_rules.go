package main

import (
	"fmt"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range checks.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Key(), c.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
