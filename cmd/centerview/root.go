package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/centerview/internal/app"
	"github.com/dshills/centerview/internal/config"
	"github.com/dshills/centerview/internal/logging"
)

// ErrNoTerminal is returned when the UI is started without a terminal.
var ErrNoTerminal = errors.New("stdout is not a terminal")

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	script     string
	absolute   bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "centerview [file]",
		Short: "Center text in a terminal viewport",
		Long: `centerview pads a viewport with left and right margins so its text
sits in the middle of the frame, and keeps the margins right as the
terminal is resized or split.

Settings are read from the config file, then CENTERVIEW_* environment
variables, then flags.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, f, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "Append JSON logs to this file")
	pf.BoolVar(&f.absolute, "absolute", false, "Center within the whole frame instead of each viewport")
	cmd.Flags().StringVar(&f.script, "script", "", "Lua init script (overrides plugin.init_script)")

	cmd.AddCommand(newCalcCmd(f))
	cmd.AddCommand(newConfigCmd(f))
	return cmd
}

// load builds the effective configuration: file, environment, then flags.
// A bad environment variable is reported as a warning.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, _, err := config.Load(f.configPath)
	if err != nil {
		if !errors.Is(err, config.ErrInvalidValue) {
			return cfg, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	f.overrides(cmd)(&cfg)
	return cfg, nil
}

// overrides returns a function applying the flags the user set.
func (f *rootFlags) overrides(cmd *cobra.Command) func(*config.Config) {
	flags := cmd.Flags()
	return func(cfg *config.Config) {
		if flags.Changed("absolute") {
			cfg.Center.UseAbsoluteCentering = f.absolute
		}
		if f.logLevel != "" {
			cfg.Log.Level = f.logLevel
		}
		if f.logFile != "" {
			cfg.Log.File = config.ExpandHome(f.logFile)
		}
	}
}

func runUI(cmd *cobra.Command, f *rootFlags, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w; use 'centerview calc' for scripted use", ErrNoTerminal)
	}

	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.UI.InitialBuffer = args[0]
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}

	a, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: config.ExpandHome(f.configPath),
		Overrides:  f.overrides(cmd),
		Script:     f.script,
		Log:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer a.Close()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			a.Quit()
		}
	}()

	return a.Run()
}
