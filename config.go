/*
Package main
File: config.go
Description: Resolves the CLI settings (economy file, seed, log level) with Viper.
Precedence: command-line flag > GALAXIES_* environment variable > default.
*/

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/everforgeworks/galaxies-trade-run/internal/game"
)

const (
	envPrefix = "GALAXIES"

	cfgKeyConfig   = "config"
	cfgKeySeed     = "seed"
	cfgKeyLogLevel = "log-level"
)

// settings is what every command needs to start a session.
type settings struct {
	ConfigPath string
	Seed       uint64
	LogLevel   slog.Level
}

// bindSettings attaches the persistent flags to a fresh Viper instance.
func bindSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(cfgKeyConfig, "")
	v.SetDefault(cfgKeySeed, uint64(0))
	v.SetDefault(cfgKeyLogLevel, "info")

	flags := cmd.PersistentFlags()
	flags.String(cfgKeyConfig, "", "economy file (default: built-in economy)")
	flags.Uint64(cfgKeySeed, 0, "market random seed (default: time based)")
	flags.String(cfgKeyLogLevel, "info", "log level: debug, info, warn, error")

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// resolveSettings reads the bound values.
func resolveSettings(v *viper.Viper) (settings, error) {
	s := settings{
		ConfigPath: v.GetString(cfgKeyConfig),
		Seed:       v.GetUint64(cfgKeySeed),
	}
	if s.Seed == 0 {
		s.Seed = uint64(time.Now().UnixNano())
	}
	if err := s.LogLevel.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return settings{}, fmt.Errorf("log level: %w", err)
	}
	return s, nil
}

// setupLogging installs the default structured logger on stderr.
func setupLogging(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEconomy reads the economy file, or falls back to the built-in one.
func loadEconomy(path string) (game.Economy, error) {
	if path == "" {
		return game.DefaultEconomy(), nil
	}
	eco, err := game.LoadConfig(path)
	if err != nil {
		return game.Economy{}, err
	}
	slog.Info("economy loaded", "path", path)
	return eco, nil
}
