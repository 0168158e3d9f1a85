package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/drills/internal/config"
	"github.com/rail44/drills/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "Luhn checksums and polygon perimeters",
	Long: `Drills validates identification numbers with the Luhn checksum and
computes perimeters of polygons and circles described in YAML files.

Settings are read from drills.toml (searched upwards from the working
directory), then from DRILLS_* environment variables, then from flags.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is drills.toml in the working directory or above)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().String("format", "", "output format: text or markdown")
	rootCmd.PersistentFlags().Int("precision", 0, "decimal places for perimeters")
	rootCmd.PersistentFlags().String("color", "", "colored output: auto, always, never")

	for _, name := range []string{"log-level", "format", "precision", "color"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	viper.SetEnvPrefix("DRILLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads drills.toml and applies environment and flag overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if viper.IsSet("log-level") {
		cfg.LogLevel = viper.GetString("log-level")
	}
	if viper.IsSet("format") {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("precision") {
		cfg.Precision = viper.GetInt("precision")
	}
	if viper.IsSet("color") {
		cfg.Color = viper.GetString("color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mustLoadConfig loads the configuration and sets up logging, exiting on failure
func mustLoadConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setupLogging(cfg)
	if cfg.Source != "" {
		log.Info("using config file", slog.String("path", cfg.Source))
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", cfg.LogLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
