// Package cli wires the ritzel command line: the root command runs the
// calculator TUI, subcommands work headless.
package cli

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/ritzel/internal/app"
	"github.com/llehouerou/ritzel/internal/config"
	"github.com/llehouerou/ritzel/internal/errmsg"
	"github.com/llehouerou/ritzel/internal/logging"
)

// OpError is a failure shown to the user as an errmsg line.
type OpError struct {
	Op  errmsg.Op
	Err error
}

func (e *OpError) Error() string { return errmsg.Format(e.Op, e.Err) }

func (e *OpError) Unwrap() error { return e.Err }

// env is what every command gets once flags are parsed.
type env struct {
	configPath string
	logLevel   string
	logFile    string

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// setup loads the configuration and opens the log. Flags win over the
// config file.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return &OpError{Op: errmsg.OpLoadConfig, Err: err}
	}
	e.cfg = cfg

	logCfg := cfg.GetLogConfig()
	if cmd.Flags().Changed("log-level") {
		logCfg.Level = e.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		logCfg.File = e.logFile
	}

	log, closer, err := logging.Setup(logCfg.Level, logCfg.File)
	if err != nil {
		return &OpError{Op: errmsg.OpOpenLog, Err: err}
	}
	e.log = log
	e.closer = closer
	return nil
}

func (e *env) close() error {
	if e.closer == nil {
		return nil
	}
	err := e.closer.Close()
	e.closer = nil
	return err
}

// runProgram runs the TUI. Replaced in tests.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// NewRootCommand builds the ritzel command tree.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "ritzel",
		Short: "Gear ratio calculator",
		Long: `ritzel links the tooth counts of two gears and their ratio.
Edit any two values and the third is recomputed; lock the one that
must not change.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(e)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "config file (read after the user and local config)")
	flags.StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&e.logFile, "log-file", "", "log file (default $XDG_STATE_HOME/ritzel/ritzel.log)")

	root.AddCommand(newSolveCommand(e))

	return root
}

func runTUI(e *env) error {
	m, err := app.New(e.cfg, e.log)
	if err != nil {
		return &OpError{Op: errmsg.OpInitialize, Err: err}
	}

	e.log.Info().Msg("starting")
	if err := runProgram(m); err != nil {
		e.log.Error().Err(err).Msg("program exited with error")
		return &OpError{Op: errmsg.OpInitialize, Err: err}
	}
	e.log.Info().Msg("exiting")
	return nil
}

// Execute runs the root command with the process arguments. The caller
// prints the returned error.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()

	var opErr *OpError
	if err != nil && !errors.As(err, &opErr) {
		// Flag and argument errors: point at the usage.
		return errors.Join(err, errors.New("run 'ritzel --help' for usage"))
	}
	return err
}
