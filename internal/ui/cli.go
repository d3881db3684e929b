package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/freeslot/internal/config"
	"github.com/javiermolinar/freeslot/internal/logging"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	root       *cobra.Command
	configPath string
	debug      bool // Enable debug logging
	logger     *zap.Logger
	closeLog   func()
}

// NewApp creates a new CLI application. If cfg is nil the configuration is
// loaded from --config (or the default path) before any command runs.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, logger: zap.NewNop(), closeLog: func() {}}

	a.root = &cobra.Command{
		Use:   "freeslot",
		Short: "Find free consultation slots in a working day",
		Long: `Freeslot lists the fixed-length consultation slots that are still
free in a working day, given the consultations already booked.

Slots are aligned to the start of the day and step by the slot length.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+logging.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.freeCmd())
	a.root.AddCommand(a.formatCmd())

	return a
}

// setup loads configuration and the debug logger before a command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.config == nil || a.configPath != "" {
		cfg, err := config.LoadFrom(a.resolvedConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	logger, closeFn, err := logging.New(a.debug, "")
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeFn
	a.logger.Debug("command started", zap.String("command", cmd.CommandPath()))
	return nil
}

func (a *App) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "freeslot %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetIO redirects command input and output, mainly for tests.
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// SetArgs overrides the arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close flushes the debug log.
func (a *App) Close() error {
	a.closeLog()
	return nil
}
