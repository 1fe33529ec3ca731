// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/fjacquet/fincontroller/internal/config"
	"github.com/fjacquet/fincontroller/internal/container"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent overrides shared by every command.
type GlobalFlags struct {
	Store     string
	NoStore   bool
	LogLevel  string
	LogFormat string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.Discard()

	// AppContainer holds the wired dependencies once PersistentPreRunE has run
	AppContainer *container.Container

	// Flags holds the persistent flag values
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fincontroller",
		Short: "Personal income and expense tracker.",
		Long: `fincontroller records income and expense transactions in a local JSON store.
It lists, filters and sorts them, edits their category or description,
and reports statistics per kind and category.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initializeApp,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer == nil {
				return nil
			}
			return AppContainer.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.Store, "store", "s", "", "Transaction store file (default from configuration)")
	Cmd.PersistentFlags().BoolVar(&Flags.NoStore, "no-store", false, "Keep transactions in memory only")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
}

func initializeApp(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	ApplyOverrides(cfg, Flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	SetContainer(c)

	if warning := c.GetService().LoadWarning(); warning != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: %v\nIniciando com uma coleção vazia.\n", warning)
	}
	return nil
}

// ApplyOverrides copies non-empty command-line values onto cfg.
func ApplyOverrides(cfg *config.Config, flags GlobalFlags) {
	if flags.Store != "" {
		cfg.Storage.File = flags.Store
	}
	if flags.NoStore {
		cfg.Storage.Enabled = false
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.Log.Format = flags.LogFormat
	}
}

// SetContainer installs c as the application container and adopts its logger.
func SetContainer(c *container.Container) {
	AppContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// Service returns the transaction service of the application container.
func Service() (*service.TransactionService, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer.GetService(), nil
}
