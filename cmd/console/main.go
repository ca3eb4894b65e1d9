package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/language-rpg/internal/config"
	"github.com/jwebster45206/language-rpg/internal/logger"
	"github.com/jwebster45206/language-rpg/pkg/catalog"
	"github.com/jwebster45206/language-rpg/pkg/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closer := logger.Setup(cfg)
	defer func() {
		_ = closer.Close() // Ignore error in defer
	}()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.WithError(log, err).Error("failed to load catalog", "path", cfg.CatalogPath)
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	var rng *rand.Rand
	if cfg.RNGSeed != 0 {
		rng = rand.New(rand.NewPCG(cfg.RNGSeed, cfg.RNGSeed))
	}

	session, err := game.NewSession(cat, rng, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}
	log = logger.WithSessionID(log, session.ID.String())
	log.Info("console started", "catalog", catalogSource(cfg.CatalogPath), "seeded", rng != nil)

	ui := NewConsoleUI(game.NewInterpreter(session), cfg.PlayerName, log)
	p := tea.NewProgram(ui,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("console exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("console stopped")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFile(path)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
