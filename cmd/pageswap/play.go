// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/framegrace/pageswap/engine"
)

var errNotTerminal = errors.New("pageswap needs an interactive terminal")

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := engine.NewTcellDriver(screen)

	g, err := newGame(settings, driver, driver, engine.NewSystemClock())
	if err != nil {
		return err
	}
	atexit.Register(g.Close)
	if g.journal != nil {
		log.Printf("Game: recording swaps in session %s", g.journal.Session())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = g.manager.Play(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		log.Printf("Game: stopped by signal")
		return nil
	}
	return err
}
