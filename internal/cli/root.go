package cli

import (
	"github.com/spf13/cobra"

	"github.com/justyntemme/scribe/internal/app"
	"github.com/justyntemme/scribe/internal/config"
	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/logging"
)

var (
	// Global flags
	configPath string
	dbPath     string

	// Root flags
	debugMode bool
	noRestore bool

	// launch starts the editor; swapped in tests.
	launch = app.Main
)

// rootCmd opens the editor on an optional folder.
var rootCmd = &cobra.Command{
	Use:     "scribe [dir]",
	Version: "dev",
	Short:   "A lightweight text editor with a folder explorer",
	Long: `scribe opens a folder as a workspace, lists its files in a sidebar
and shows the selected file as text.

Without a folder argument the last opened folder is restored.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig()
		if err != nil {
			return err
		}

		level := mgr.Get().Logging.Level
		if debugMode || debug.Enabled {
			level = "debug"
		}
		if err := logging.SetLevel(level); err != nil {
			logging.NewLogger("cli").WithError(err).Warn("ignoring log level")
		}

		var root string
		if len(args) == 1 {
			root = args[0]
		}
		launch(app.Options{
			Root:      root,
			NoRestore: noRestore,
			Config:    mgr,
			DBPath:    dbPath,
		})
		return nil
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file named by --config.
func loadConfig() (*config.Manager, error) {
	mgr := config.NewManager()
	if err := mgr.LoadFrom(configFile()); err != nil {
		return nil, err
	}
	return mgr, nil
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/scribe/config.json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Recent files database (default in the user config directory)")

	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable verbose debug logging")
	rootCmd.Flags().BoolVar(&noRestore, "no-restore", false, "Start without reopening the last folder")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(recentCmd)
}
