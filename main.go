/*
Package main
File: main.go
Description: Entry point of the 'galaxies' CLI. Loads the economy, builds a session
and drives the day loop, either interactively (play) or unattended (simulate).
*/

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/everforgeworks/galaxies-trade-run/internal/console"
	"github.com/everforgeworks/galaxies-trade-run/internal/game"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var (
	cfg    *viper.Viper
	active settings
)

var rootCmd = &cobra.Command{
	Use:           "galaxies",
	Short:         "Galaxies: Trade Run, a turn-based trading game",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cfg)
		if err != nil {
			return err
		}
		active = s
		setupLogging(s.LogLevel)
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively on stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		return play(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var simulateDays int
var simulateCrew uint64

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run days unattended and print the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulateDays < 0 {
			return fmt.Errorf("days must not be negative, got %d", simulateDays)
		}
		session, err := newSession()
		if err != nil {
			return err
		}
		return simulate(session, simulateDays, simulateCrew, cmd.OutOrStdout())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Economy configuration tools",
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate an economy file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := active.ConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return errors.New("no economy file given (use --config or an argument)")
		}
		if _, err := game.LoadConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

func init() {
	var err error
	cfg, err = bindSettings(rootCmd)
	cobra.CheckErr(err)

	simulateCmd.Flags().IntVar(&simulateDays, "days", 7, "number of days to run")
	simulateCmd.Flags().Uint64Var(&simulateCrew, "crew", 0, "crew to hire before setting sail")

	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(playCmd, simulateCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSession() (*console.Session, error) {
	eco, err := loadEconomy(active.ConfigPath)
	if err != nil {
		return nil, err
	}
	state, err := game.NewState(eco, active.Seed)
	if err != nil {
		return nil, err
	}
	slog.Debug("session started", "seed", active.Seed, "vessel", state.Trader.Vessel().ID())
	return console.NewSession(state), nil
}

// play is the interactive game loop.
func play(s *console.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome aboard. Type 'help' for commands.")
	if err := console.RenderStatus(out, s.Day, s.State.Trader); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		quit, err := s.Handle(scanner.Text(), out)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if quit {
			fmt.Fprintln(out, "Fair winds.")
			return nil
		}
	}
}

// simulate ticks the clock without trading and prints the status each day.
func simulate(s *console.Session, days int, crew uint64, out io.Writer) error {
	s.State.Trader.Vessel().HireCrew(crew)
	if err := console.RenderStatus(out, s.Day, s.State.Trader); err != nil {
		return err
	}
	for i := 0; i < days; i++ {
		if _, err := s.Handle("wait", out); err != nil {
			return err
		}
	}
	return console.RenderMarket(out, s.State.Market.Listing())
}
