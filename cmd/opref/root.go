package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/opref/internal/config"
	"github.com/born-ml/opref/internal/opref"
	"github.com/born-ml/opref/internal/presentation"
)

const builtinSource = "built-in"

// app carries the state shared by all subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		log:    zap.NewNop(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:   "opref",
		Short: "Query the registry of verified operator reference implementations",
		Long: `Query the registry of operator versions ("Relu-1", "Softmax-1", ...) that
have a verified reference implementation usable as a test oracle.

By default the built-in table is used; --file selects a registry file with
one identifier per line.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./.opref.yaml)")
	pf.StringP("file", "f", "", "registry file to use instead of the built-in table")
	pf.StringP("format", "o", config.FormatText, "output format: text, json or yaml")
	pf.BoolP("verbose", "v", false, "log diagnostics to stderr")
	for _, name := range []string{"file", "format", "verbose"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(
		newContainsCmd(a),
		newListCmd(a),
		newExportCmd(a),
		newCheckCmd(a),
		newAuditCmd(a),
		newVersionCmd(),
	)
	return root
}

// init resolves configuration (flags > env > config file > defaults) and
// sets up logging.
func (a *app) init() error {
	defaults := config.Defaults()
	a.v.SetDefault("format", defaults.Format)
	a.v.SetDefault("strict", defaults.Strict)
	a.v.SetEnvPrefix("OPREF")
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".opref")
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.cfg.Verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(a.stderr),
			zap.DebugLevel,
		)
		a.log = zap.New(core).Named("opref")
	}
	return nil
}

// registry returns the configured registry and a label for its source.
func (a *app) registry() (*opref.Registry, string, error) {
	if a.cfg.File == "" {
		r := opref.Verified()
		a.logLoaded(builtinSource, r)
		return r, builtinSource, nil
	}

	r, err := opref.LoadFile(a.cfg.File)
	if err != nil {
		return nil, "", err
	}
	a.logLoaded(a.cfg.File, r)
	return r, a.cfg.File, nil
}

func (a *app) logLoaded(source string, r *opref.Registry) {
	for _, rep := range r.Report().Repairs {
		a.log.Warn("registry entry repaired",
			zap.String("source", source),
			zap.Stringer("kind", rep.Kind),
			zap.Int("index", rep.Index),
			zap.String("entry", rep.Entry),
			zap.Strings("keys", rep.Keys),
		)
	}
	a.log.Debug("registry loaded",
		zap.String("source", source),
		zap.Int("keys", r.Len()),
		zap.String("digest", r.DigestHex()),
	)
}

func (a *app) formatter() *presentation.Formatter {
	return presentation.NewFormatter(a.stdout, a.cfg.Format)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "opref %s\n", version)
			return err
		},
	}
}
