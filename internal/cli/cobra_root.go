package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"daily-todo/internal/api"
	"daily-todo/internal/config"
	"daily-todo/internal/logging"
	"daily-todo/internal/repository/sqlite"
	"daily-todo/internal/services"
	"daily-todo/internal/validation"
)

// RepositoryOpener opens the store described by cfg.
type RepositoryOpener func(cfg *config.Config) (sqlite.Repository, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	opener RepositoryOpener
	clock  services.Clock
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	config    *config.Config
	repo      sqlite.Repository
	logCloser io.Closer
	app       *App
}

// NewRootCommand creates the root cobra command with global flags. The store
// is opened by opener once flags and configuration are known.
func NewRootCommand(opener RepositoryOpener, in io.Reader, out, errOut io.Writer, clock services.Clock) *RootCommand {
	root := &RootCommand{
		opener: opener,
		clock:  clock,
		in:     in,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A calendar-based daily to-do list",
		Long: `Daily To-Do (td) keeps a to-do list for every calendar date in a local SQLite database.

EXAMPLES:
  td add "Buy milk"                        # Add a to-do for today
  td -d 2024-06-01 list                    # Show the to-dos of a date
  td check 1 3                             # Mark items 1 and 3 as done
  td delete 2                              # Delete item 2 after confirmation
  td calendar 2024-06                      # Show which days hold to-dos
  td export --all todos.html               # Save every to-do as HTML
  td shell                                 # Interactive mode

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file: $TD_CONFIG or ~/.td/config.yaml

  TD_DB_DIR                                Database directory (default: ~/.td)
  TD_DB_FILENAME                           Database filename (default: todo.db)
  TD_DB_QUERY_TIMEOUT                      Query timeout (default: 10s)
  TD_DB_WRITE_TIMEOUT                      Write timeout (default: 5s)
  TD_DB_DIR_PERMISSIONS                    Directory permissions in octal (default: 755)
  TD_CONTENT_MAX_LENGTH                    Longest to-do in characters (default: 0, no limit)
  TD_APP_TIMEOUT                           Timeout per command (default: 60s)
  TD_APP_VERBOSE                           Debug logging (default: false)
  TD_LOG_LEVEL                             Log level (default: warn)
  TD_LOG_FILE                              Write JSON logs to a rotated file
  TD_DEBUG                                 Any value enables debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd.Context())
		},
	}
	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetArgs overrides the command line arguments.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command, reports a failure as a warning and releases
// the store and log file.
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if err != nil {
		r.report(err)
	}
	r.shutdown()
	return err
}

func (r *RootCommand) report(err error) {
	if r.app != nil {
		r.app.Report(err)
		return
	}
	fmt.Fprintf(r.errOut, "Error: %s\n", NewErrorHandler().Message(err))
}

func (r *RootCommand) shutdown() {
	if r.repo != nil {
		r.repo.Close()
		r.repo = nil
	}
	if r.logCloser != nil {
		r.logCloser.Close()
		r.logCloser = nil
	}
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringP("date", "d", "", "Selected date as YYYY-MM-DD (default: today)")
	flags.BoolP("yes", "y", false, "Answer yes to confirmations")
	flags.String("config", "", "Config file (overrides TD_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TD_DB_FILENAME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout per command (overrides TD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug logging (overrides TD_APP_VERBOSE)")
	flags.String("log-file", "", "Write JSON logs to this file (overrides TD_LOG_FILE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a to-do to the selected date",
		Args:  cobra.ArbitraryArgs,
		RunE:  r.runRegistered("add"),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the to-dos of the selected date",
		Args:  cobra.NoArgs,
		RunE:  r.runRegistered("list"),
	}

	checkCmd := &cobra.Command{
		Use:   "check <n...>",
		Short: "Mark items as done",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.runRegistered("check"),
	}

	uncheckCmd := &cobra.Command{
		Use:   "uncheck <n...>",
		Short: "Mark items as not done",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.runRegistered("uncheck"),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <n...>",
		Short: "Delete items after confirmation",
		Long: `Delete the numbered items of the selected date.

You are asked to confirm first unless --yes is given. This cannot be undone.`,
		Args: cobra.ArbitraryArgs,
		RunE: r.runRegistered("delete"),
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show a month and mark the days holding to-dos",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.runRegistered("calendar"),
	}

	exportCmd := &cobra.Command{
		Use:   "export <file.html>",
		Short: "Save to-dos as an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				args = append([]string{"--all"}, args...)
			}
			return r.app.Run(cmd.Context(), append([]string{"export"}, args...))
		},
	}
	exportCmd.Flags().BoolP("all", "a", false, "Export every date instead of the selected one")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive mode that keeps the selected date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewShellCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		checkCmd,
		uncheckCmd,
		deleteCmd,
		calendarCmd,
		exportCmd,
		shellCmd,
	)
}

func (r *RootCommand) runRegistered(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return r.app.Run(cmd.Context(), append([]string{name}, args...))
	}
}

// setup loads configuration, configures logging, opens the store and builds
// the controller for the selected date.
func (r *RootCommand) setup(ctx context.Context) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	r.config = cfg

	closer, err := logging.Setup(logging.Options{
		Level:      cfg.Logging.Level,
		Verbose:    cfg.Application.Verbose,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	r.logCloser = closer
	logging.Debugf("using database %s", cfg.GetDatabasePath())

	repo, err := r.opener(cfg)
	if err != nil {
		return err
	}
	r.repo = repo

	flags := r.cmd.PersistentFlags()
	yes, _ := flags.GetBool("yes")
	prompter := NewTerminalPrompter(r.in, r.out, r.errOut, yes)
	todos := services.NewTodoServiceWithMaxLength(repo, cfg.Validation.ContentMaxLength)
	controller := api.NewController(todos, prompter, r.clock)
	r.app = NewApp(controller, prompter, r.out, r.getAppTimeout())

	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()

	if err := controller.Start(ctx); err != nil {
		return err
	}
	if dateArg, _ := flags.GetString("date"); dateArg != "" {
		date, err := validation.NewTodoValidator().GetValidDate(dateArg)
		if err != nil {
			return err
		}
		if err := controller.SelectDate(ctx, date); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig runs the configuration cascade with flags applied last.
func (r *RootCommand) loadConfig() (*config.Config, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		dbDir, _ := flags.GetString("db-dir")
		overrides.DBDir = &dbDir
	}
	if flags.Changed("db-filename") {
		dbFilename, _ := flags.GetString("db-filename")
		overrides.DBFilename = &dbFilename
	}
	if flags.Changed("app-timeout") {
		appTimeout, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &appTimeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("log-file") {
		logFile, _ := flags.GetString("log-file")
		overrides.LogFile = &logFile
	}

	configPath, _ := flags.GetString("config")
	return config.NewLoader().WithConfigFile(configPath).LoadWithOverrides(overrides)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}
