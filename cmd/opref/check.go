package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/opref/internal/opref"
	"github.com/born-ml/opref/internal/presentation"
)

var errNeedsRepair = errors.New("registry file needs repair")

func newCheckCmd(a *app) *cobra.Command {
	var requireClean bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a registry file",
		Long: `Validate a registry file and print the repairs normalization applied
(concatenated entries split, duplicates dropped). Malformed lines fail the
check with their line number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := opref.LoadFile(args[0])
			if err != nil {
				return err
			}
			a.logLoaded(args[0], r)

			if err := a.formatter().FormatAudit(presentation.NewAudit(args[0], r)); err != nil {
				return err
			}
			if requireClean && !r.Report().Clean() {
				return fmt.Errorf("%s: %d repairs: %w", args[0], len(r.Report().Repairs), errNeedsRepair)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&requireClean, "require-clean", false, "fail if any entry needed repair")
	return cmd
}
