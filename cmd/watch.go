package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/config"
	"github.com/rail44/drills/internal/interactive"
	"github.com/rail44/drills/internal/log"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.yaml>",
	Short: "Watch a shape file and recompute perimeters on every save",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		filePath := args[0]

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			log.Error("file does not exist", slog.String("file", filePath))
			os.Exit(1)
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			log.Error("failed to resolve path", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if err := runInteractiveMode(absPath, cfg); err != nil {
			log.Error("watch failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runInteractiveMode(filePath string, cfg *config.Config) error {
	// The TUI owns the terminal, so only errors get through
	log.SetLevel(log.LevelError)

	m := interactive.NewModel(filePath, cfg.Precision, log.Default())
	p := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	}, log.Default())
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Initial load
	go p.Send(interactive.FileChanged())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
