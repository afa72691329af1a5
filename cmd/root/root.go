// Package root contains the root command for the application
package root

import (
	"fjacquet/homefinance/internal/account"
	"fjacquet/homefinance/internal/config"
	"fjacquet/homefinance/internal/fileutils"
	"fjacquet/homefinance/internal/ledger"
	"fjacquet/homefinance/internal/report"
	"fjacquet/homefinance/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "homefinance",
		Short: "A console tool to track wallets, transactions and budgets.",
		Long: `homefinance is a personal-finance console application: register,
log in, create wallets, record income and expense transactions, and track
per-category budget limits. Run the 'shell' subcommand for the interactive
menu.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to homefinance!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Set the configured logger for all packages
			store.SetLogger(Log)
			account.SetLogger(Log)
			ledger.SetLogger(Log)
			report.SetLogger(Log)
			fileutils.SetLogger(Log)

			if DataDir != "" {
				Cfg.Data.Directory = DataDir
			}
			report.SetDelimiter([]rune(Cfg.Export.Delimiter)[0])
		},
	}

	// DataDir overrides the configured data directory when set.
	DataDir string

	// Specific register command flags
	Username string
	Password string

	// Specific export command flags
	WalletName string
	Output     string
	Kind       string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data-dir", "d", "", "Data directory for record files")
}

// Services builds the stores and services over the configured data
// directory.
func Services() (*account.Service, *ledger.Service) {
	users := store.NewUserStore(Cfg.Data.Directory)
	wallets := store.NewWalletStore(Cfg.Data.Directory)
	categories := store.NewCategoryStore(Cfg.Data.Directory)

	return account.NewService(users, wallets, categories),
		ledger.NewService(wallets, categories)
}
