package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/opref/internal/presentation"
)

var errNotVerified = errors.New("not verified")

func newContainsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contains KEY...",
		Short: "Report whether operator versions are verified",
		Long: `Report whether each KEY is in the registry. Matching is exact and
case-sensitive: "Relu-1" and "relu-1" are different keys.

Examples:
  opref contains Relu-1 Softmax-1
  opref contains --strict Relu-2 || echo "missing reference"
  opref contains -o json Relu-1 | jq '.[].verified'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, _, err := a.registry()
			if err != nil {
				return err
			}

			results := make([]presentation.MembershipDTO, 0, len(args))
			missing := 0
			for _, key := range args {
				ok := r.Contains(key)
				if !ok {
					missing++
				}
				results = append(results, presentation.MembershipDTO{Key: key, Verified: ok})
			}

			if err := a.formatter().FormatMembership(results); err != nil {
				return err
			}
			if a.cfg.Strict && missing > 0 {
				return fmt.Errorf("%d of %d keys: %w", missing, len(args), errNotVerified)
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "exit with an error if any key is not verified")
	_ = a.v.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}
