package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/opref/internal/presentation"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all verified operator versions",
		Long: `List every verified operator version exactly once.

Examples:
  opref list
  opref list -o yaml
  opref list -o json | jq -r '.[].name' | sort -u`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, _, err := a.registry()
			if err != nil {
				return err
			}
			return a.formatter().FormatKeys(presentation.FromRegistry(r))
		},
	}
}
