package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.klb.dev/flatclip/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and FLATCLIP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → FLATCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("flatclip")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/flatclip/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "flatclip"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("FLATCLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags registers --no-background, --log-format and --log-level.
func addLoggingFlags(f *pflag.FlagSet) {
	f.Bool("no-background", false, "treat the session as interactive: coloured logs, debug level")
	f.String("log-format", string(logging.FormatAuto), "log format: auto|text|json (auto: text on a terminal, JSON otherwise)")
	f.String("log-level", "", "minimum log level: debug|info|warn|error (default: debug when interactive, info otherwise)")
}

// addConfigFlag registers --config, which bypasses the config search path.
func addConfigFlag(f *pflag.FlagSet) {
	f.String("config", "", "TOML config file (default: search /etc/flatclip and ~/.config/flatclip)")
}

// setupLogging installs the global slog logger from the bound logging flags
// and returns the level it chose. Interactive sessions default to debug.
func setupLogging(v *viper.Viper) slog.Level {
	fallback := slog.LevelInfo
	if v.GetBool("no-background") || logging.IsTTY(os.Stderr) {
		fallback = slog.LevelDebug
	}
	level := logging.ParseLevel(v.GetString("log-level"), fallback)
	logging.Setup(logging.ParseFormat(v.GetString("log-format")), level)
	return level
}
