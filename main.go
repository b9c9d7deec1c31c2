package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/game"
	"github.com/iburimskiy/hero-field/internal/sound"
	"github.com/iburimskiy/hero-field/internal/theme"
)

func main() {
	log.SetPrefix("hero-field: ")
	log.SetFlags(log.Ltime)

	if err := run(); err != nil {
		log.Print(err)
		// Started from a desktop launcher there is no terminal to read the log.
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle + " - wheel/PgUp/PgDn to scroll, F3: stats, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := game.NewGame(game.Options{
		Store:      theme.OpenDefaultStore(),
		SystemDark: theme.DetectSystemDark(os.Getenv),
		Chime:      sound.NewChime(),
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
