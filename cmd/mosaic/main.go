package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mosaicgrid/mosaic/internal/adapter"
	"github.com/mosaicgrid/mosaic/internal/gallery"
	"github.com/mosaicgrid/mosaic/internal/layout"
	"github.com/mosaicgrid/mosaic/internal/tui"
	"github.com/mosaicgrid/mosaic/internal/tui/components"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("mosaic %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("mosaic requires an interactive terminal")
	}

	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting mosaic", "version", Version)

	grid := buildGrid(cfg)

	// Seed geometry for the first frame; the real WindowSizeMsg follows.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		grid.SetSize(w, h-tui.ChromeHeight)
	}

	gallerySvc := gallery.NewService(logger)
	model := tui.NewModel(gallerySvc, grid)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// buildGrid assembles the grid component from configuration
func buildGrid(cfg *adapter.Config) components.Grid {
	var sizing layout.ColumnSizing
	if cfg.UI.Columns > 0 {
		sizing = layout.FixedColumns{
			Columns: cfg.UI.Columns,
			Gutter:  cfg.UI.Gutter,
		}
	} else {
		sizing = layout.DynamicColumns{
			MinTileWidth:  cfg.UI.MinTileWidth,
			MaxTileWidth:  cfg.UI.MaxTileWidth,
			GutterRegular: cfg.UI.Gutter,
			GutterCompact: cfg.UI.GutterCompact,
			MaxGridWidth:  cfg.UI.MaxGridWidth,
		}
	}

	grid := components.NewGrid(sizing, tui.CardBuilder)
	grid.SetRowMode(layout.ParseRowHeightMode(cfg.UI.RowHeight))
	grid.SetFixedRowHeight(cfg.UI.FixedRowHeight)
	grid.SetTraits(layout.Traits{
		Category: layout.ParseSizeCategory(cfg.UI.SizeCategory),
		Class:    layout.ParseSizeClass(cfg.UI.SizeClass),
	})
	return grid
}
