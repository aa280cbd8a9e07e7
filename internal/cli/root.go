// Package cli wires the log engine to a cobra command tree. Each
// subcommand delegates to a small handler struct so the handlers can be
// exercised directly in tests without going through cobra.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shibashis07/time-logger/internal/config"
	"github.com/shibashis07/time-logger/internal/engine"
	"github.com/shibashis07/time-logger/internal/logging"
	"github.com/shibashis07/time-logger/internal/store"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	store  store.Store
	engine *engine.Engine
}

// NewRootCommand creates the root cobra command with global flags. The
// store and engine are constructed lazily in PersistentPreRunE so that
// flag overrides are applied before the backend is opened.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{config: cfg}

	root.cmd = &cobra.Command{
		Use:   "timelog",
		Short: "A command-line activity logger",
		Long: `Time Logger (timelog) records timed activities and summarizes where the day went.

EXAMPLES:
  timelog add "Reading" 09:00 09:30        # Log a 30 minute activity
  timelog list                             # List logged activities
  timelog chart                            # Per-activity time breakdown
  timelog export                           # Write activities to a CSV file
  timelog export -                         # Write CSV to stdout
  timelog delete RECORD_ID                 # Delete a logged activity

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults
  The config file lives at ~/.config/timelog/config.toml (TOML).

  Storage Configuration:
    TIMELOG_BACKEND                        Storage backend: sqlite or file (default: sqlite)
    TIMELOG_DIR                            Storage directory (default: ~/.timelog)
    TIMELOG_DB_FILENAME                    SQLite database filename (default: timelog.db)
    TIMELOG_LOG_FILENAME                   JSON log filename for the file backend (default: timelog.json)

  Engine Configuration:
    TIMELOG_SCOPE                          View scope: all or today (default: all)
    TIMELOG_REFRESH                        Refresh strategy after a commit: reload or optimistic (default: reload)

  Export Configuration:
    TIMELOG_EXPORT_BASE                    Export filename base (default: time-log)
    TIMELOG_EXPORT_DATE_SUFFIX             Append the day to the export filename (default: true)

  Application Configuration:
    TIMELOG_APP_TIMEOUT                    Application timeout (default: 60s)
    TIMELOG_APP_VERBOSE                    Enable debug output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.initEngine()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.closeStore()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("backend", "", "Storage backend, sqlite or file (overrides TIMELOG_BACKEND)")
	flags.String("dir", "", "Storage directory (overrides TIMELOG_DIR)")
	flags.String("db-filename", "", "SQLite database filename (overrides TIMELOG_DB_FILENAME)")
	flags.String("log-filename", "", "JSON log filename (overrides TIMELOG_LOG_FILENAME)")

	// Engine configuration
	flags.String("scope", "", "View scope, all or today (overrides TIMELOG_SCOPE)")
	flags.String("refresh", "", "Refresh strategy, reload or optimistic (overrides TIMELOG_REFRESH)")

	// Export configuration
	flags.String("export-base", "", "Export filename base (overrides TIMELOG_EXPORT_BASE)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TIMELOG_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug output (overrides TIMELOG_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [activity name] [start] [end]",
		Short: "Log a timed activity",
		Long: `Log an activity with HH:MM start and end clock times.

The end time must be after the start time on the same day; activities do
not wrap past midnight.

Examples:
  timelog add "Reading" 09:00 09:30
  timelog add Morning standup 09:30 09:45`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewAddCommand(r.engine).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged activities",
		Long:  "List logged activities for the active scope, oldest start time first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListCommand(r.engine).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [record id]",
		Short: "Delete a logged activity",
		Long: `Delete a logged activity by its record id.

Record ids are shown by the list command. Deletion works on any stored
record, including records hidden by a today-only scope.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDeleteCommand(r.engine).Execute(ctx, args)
		},
	}

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Show a per-activity time breakdown",
		Long:  "Show a bar chart of total minutes per activity name, in first-logged order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewChartCommand(r.engine).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [output]",
		Short: "Export activities to CSV",
		Long: `Export the activities in the active scope to a CSV file.

With no argument the file name comes from the export configuration,
e.g. time-log-2025-03-14.csv. Pass a path (or --output) to choose the
destination, or "-" to write the CSV to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				args = []string{output}
			}
			return NewExportCommand(r.engine).Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "Destination path for the CSV file, or - for stdout")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		deleteCmd,
		chartCmd,
		exportCmd,
	)
}

// commandContext returns a context bounded by the configured application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// initEngine opens the configured store and loads the engine view state.
func (r *RootCommand) initEngine() error {
	if r.engine != nil {
		return nil
	}

	if r.config.Application.Verbose {
		os.Setenv("TIMELOG_DEBUG", "1")
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	s, err := config.CreateStore(r.config)
	if err != nil {
		return err
	}
	r.store = s

	r.engine = engine.New(s, engine.Options{
		Scope:            engine.Scope(r.config.Engine.Scope),
		Refresh:          engine.RefreshStrategy(r.config.Engine.Refresh),
		ExportBaseName:   r.config.Export.BaseName,
		ExportDateSuffix: r.config.Export.DateSuffix,
	})

	ctx, cancel := r.commandContext()
	defer cancel()

	logging.Debugf("loading view state: backend=%s scope=%s\n", r.config.Storage.Backend, r.config.Engine.Scope)
	return r.engine.Load(ctx)
}

// closeStore releases the backend opened by initEngine.
func (r *RootCommand) closeStore() error {
	if r.store == nil {
		return nil
	}
	s := r.store
	r.store = nil
	return s.Close()
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Storage configuration
	if backend, _ := flags.GetString("backend"); backend != "" {
		r.config.Storage.Backend = backend
	}
	if dir, _ := flags.GetString("dir"); dir != "" {
		r.config.Storage.Dir = dir
	}
	if filename, _ := flags.GetString("db-filename"); filename != "" {
		r.config.Storage.DBFilename = filename
	}
	if filename, _ := flags.GetString("log-filename"); filename != "" {
		r.config.Storage.LogFilename = filename
	}

	// Engine configuration
	if scope, _ := flags.GetString("scope"); scope != "" {
		r.config.Engine.Scope = scope
	}
	if refresh, _ := flags.GetString("refresh"); refresh != "" {
		r.config.Engine.Refresh = refresh
	}

	// Export configuration
	if base, _ := flags.GetString("export-base"); base != "" {
		r.config.Export.BaseName = base
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
