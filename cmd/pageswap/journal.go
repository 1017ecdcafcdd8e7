// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pageswap/journal.go
// Summary: `pageswap journal` prints recorded swaps as JSON.
// Notes: Read-only: neither the config nor the journal is created. Output is
// highlighted only when stdout is a terminal.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/pageswap/config"
	"github.com/framegrace/pageswap/monitor"
)

const latestSession = "latest"

func newJournalCmd(root *rootOptions) *cobra.Command {
	var (
		session string
		limit   int
		color   string
	)
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print swaps recorded by previous runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := journalPath(root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			j, err := monitor.OpenJournalReader(path)
			if errors.Is(err, monitor.ErrJournalMissing) {
				return writeJSON(out, []monitor.JournalEntry{}, useColor(color, out))
			}
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			if session == latestSession {
				sessions, err := j.Sessions()
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					session = ""
				} else {
					session = sessions[len(sessions)-1]
				}
			}

			entries, err := j.Records(session, limit)
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []monitor.JournalEntry{}
			}
			return writeJSON(out, entries, useColor(color, out))
		},
	}
	cmd.Flags().StringVar(&session, "session", "", `only this session id ("latest" for the most recent run)`)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows, 0 for all")
	cmd.Flags().StringVar(&color, "color", "auto", "highlight output: auto, always or never")
	return cmd
}

func journalPath(root *rootOptions) (string, error) {
	if root.journalPath != "" {
		return root.journalPath, nil
	}
	cfg, err := config.Peek(root.configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if p := cfg.GetString("journal", "path", ""); p != "" {
		return p, nil
	}
	return config.DefaultJournalPath()
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v interface{}, color bool) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if color {
		return quick.Highlight(w, string(data), "json", "terminal256", "monokai")
	}
	_, err = w.Write(data)
	return err
}
