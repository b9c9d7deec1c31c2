// Command hero-tty draws the particle field in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/hero-field/internal/theme"
	"github.com/iburimskiy/hero-field/internal/tty"
)

func main() {
	log.SetPrefix("hero-tty: ")
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	restoreLog := tty.RedirectLog(filepath.Join(os.TempDir(), "hero-tty.log"))
	defer func() {
		screen.Fini()
		restoreLog()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sw := theme.Load(theme.OpenDefaultStore(), theme.DetectSystemDark(os.Getenv))
	app := tty.New(screen, sw, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
