package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the registry as one identifier per line",
		Long: `Write the registry to FILE, one identifier per line, UTF-8, with no
header. Use "-" for standard output. The result can be read back with --file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, _, err := a.registry()
			if err != nil {
				return err
			}

			if args[0] == "-" {
				_, err := r.WriteTo(a.stdout)
				return err
			}
			if err := r.SaveFile(args[0]); err != nil {
				return err
			}
			a.log.Info("registry exported", zap.String("path", args[0]), zap.Int("keys", r.Len()))
			return nil
		},
	}
}
