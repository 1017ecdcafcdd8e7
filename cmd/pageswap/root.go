// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pageswap/root.go
// Summary: Command tree, shared flags and settings resolution.

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/framegrace/pageswap/config"
	"github.com/framegrace/pageswap/internal/logging"
)

type rootOptions struct {
	configPath  string
	logFile     string
	journalPath string
}

type playOptions struct {
	*rootOptions
	fps          int
	swapDelayMS  int
	scene        string
	ignoreEvents bool
	noJournal    bool
}

func newRootCmd() *cobra.Command {
	root := &rootOptions{}
	opts := &playOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:           "pageswap",
		Short:         "Interactive memory paging simulation",
		Long:          "pageswap shows pages living in RAM and disk slots. Click or drag across pages to swap them, shift+click to swap a whole row.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			file, err := logging.Setup(root.logFile)
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}
			atexit.Register(func() { _ = file.Close() })
			log.Printf("Game: %s starting", cmd.CommandPath())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&root.configPath, "config", "", "config file (default <config dir>/pageswap/pageswap.json)")
	pf.StringVar(&root.logFile, "log-file", "", "log file (default <config dir>/pageswap/logs/pageswap.log)")
	pf.StringVar(&root.journalPath, "journal", "", "swap journal database (overrides journal.path)")

	f := cmd.Flags()
	f.IntVar(&opts.fps, "fps", 0, "target frames per second (overrides game.fps)")
	f.IntVar(&opts.swapDelayMS, "swap-delay-ms", 0, "swap animation length in ms, 0 for instant (overrides pages.swap_delay_ms)")
	f.StringVar(&opts.scene, "scene", "", "startup scene: title or board (overrides game.startup_scene)")
	f.BoolVar(&opts.ignoreEvents, "ignore-events", false, "discard input while the simulation runs")
	f.BoolVar(&opts.noJournal, "no-journal", false, "do not record swaps")

	cmd.AddCommand(newJournalCmd(root))
	return cmd
}

// loadSettings reads the config file and applies the flags the user set.
func loadSettings(cmd *cobra.Command, opts *playOptions) (config.Settings, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Set("game", "fps", opts.fps)
	}
	if flags.Changed("swap-delay-ms") {
		cfg.Set("pages", "swap_delay_ms", opts.swapDelayMS)
	}
	if flags.Changed("scene") {
		cfg.Set("game", "startup_scene", opts.scene)
	}
	if flags.Changed("ignore-events") {
		cfg.Set("game", "ignore_events", opts.ignoreEvents)
	}
	if opts.journalPath != "" {
		cfg.Set("journal", "path", opts.journalPath)
	}
	if opts.noJournal {
		cfg.Set("journal", "enabled", false)
	}

	settings, err := config.SettingsFrom(cfg)
	if err != nil {
		return config.Settings{}, fmt.Errorf("config: %w", err)
	}
	return settings, nil
}
