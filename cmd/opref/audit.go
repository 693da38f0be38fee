package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/opref/internal/presentation"
)

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the repairs applied to the registry and its digest",
		Long: `Show how the registry was normalized: entries that held several keys
with no separator and were split, and duplicate entries that were dropped.
These are data-correctness assumptions worth reviewing at the source.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, source, err := a.registry()
			if err != nil {
				return err
			}
			return a.formatter().FormatAudit(presentation.NewAudit(source, r))
		},
	}
}
