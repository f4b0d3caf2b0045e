package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/sheets/internal/app"
	"github.com/zjrosen/sheets/internal/config"
	"github.com/zjrosen/sheets/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// defaultConfigPath is where a config is created when none is found.
const defaultConfigPath = ".sheets/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:   "sheets",
	Short: "A terminal bottom sheet demo",
	Long: `A main view with three buttons, each opening a bottom sheet that
slides up over the view with one of three screens.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .sheets/config.yaml or ~/.config/sheets/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs (also enabled by SHEETS_DEBUG=1)")
	rootCmd.Flags().String("argument", "",
		"argument passed to bottom screen 3 (overrides screens.argument)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("screens.argument", rootCmd.Flags().Lookup("argument"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .sheets/config.yaml (current directory)
		// 2. ~/.config/sheets/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "sheets"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .sheets/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				viper.SetConfigFile(defaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else {
			cfgErr = fmt.Errorf("reading config: %w", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil && cfgErr == nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
	}
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return defaultConfigPath
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug || log.EnabledFromEnv() {
		cleanup, err := log.Init(cfg.LogPath)
		if err != nil {
			return err
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting sheets", "version", version, "config", configFilePath())
	}

	configPath := viper.ConfigFileUsed()
	model := app.New(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Loader:     newConfigLoader(cmd, configPath),
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	// Clean up watcher and subscription resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newConfigLoader re-reads path for live reload and re-applies the command
// line overrides, which a fresh read of the file would otherwise drop.
func newConfigLoader(cmd *cobra.Command, path string) app.Loader {
	return func() (config.Config, error) {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		return applyFlagOverrides(cmd, loaded), nil
	}
}

// applyFlagOverrides copies explicitly set flags over c.
func applyFlagOverrides(cmd *cobra.Command, c config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("argument") {
		if argument, err := flags.GetString("argument"); err == nil {
			c.Screens.Argument = argument
		}
	}
	if flags.Changed("debug") {
		if debug, err := flags.GetBool("debug"); err == nil {
			c.Debug = debug
		}
	}
	return c
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
