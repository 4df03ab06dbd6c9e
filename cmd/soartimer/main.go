package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/openf3l/soartimer/internal/app"
	"github.com/openf3l/soartimer/internal/audio"
	"github.com/openf3l/soartimer/internal/config"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	var (
		configPath string
		muted      bool
	)

	rootCmd := &cobra.Command{
		Use:   "soartimer",
		Short: "Terminal training timer for F3L duration flying",
		Long: `soartimer runs the F3L working-window and flight clocks in the
terminal, with launch detection from a simulated elevator, voice cues,
and the standard reset gestures.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger, closeLog, err := setupLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()
			slog.SetDefault(logger)

			profile, err := audio.LoadProfile(cfg.Audio.ProfilePath)
			if err != nil {
				return err
			}

			var sink audio.Sink
			if cfg.Audio.Enabled && !muted {
				sink = audio.NewSlogSink(logger)
			}

			logger.Info("starting", "version", version, "tickMs", cfg.TickMs)

			p := tea.NewProgram(app.New(cfg, sink, profile, logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run UI: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default .soartimer.json)")
	rootCmd.Flags().BoolVar(&muted, "muted", false, "start with audio muted")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("soartimer %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger opens the configured log file. Logs never go to the terminal
// while the UI owns it.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
