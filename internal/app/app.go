package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/substratefi/ledgerterm/internal/ledger"
	"github.com/substratefi/ledgerterm/internal/logging/events"
	"github.com/substratefi/ledgerterm/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Server     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Check      bool
}

const connectTimeout = 5 * time.Second

// Run connects to the ledger server and executes the Bubble Tea program.
// A connection failure is fatal: the client is useless without the server,
// so it reports and exits instead of presenting an empty UI.
func Run(cfg Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	fmt.Printf("Connecting to %s...\n", cfg.Server)
	client, err := ledger.Connect(ctx, cfg.Server)
	if err != nil {
		events.App.ConnectFailed(cfg.Server, err)
		return fmt.Errorf("connect to ledger server: %w", err)
	}
	defer client.Close()
	events.App.Connected(cfg.Server)

	if cfg.Check {
		return runCheck(client)
	}

	model := ui.NewModel(client, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// runCheck verifies the server answers a basic query and prints a summary,
// mirroring what the TUI would load on startup.
func runCheck(client *ledger.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	participants, err := client.ListParticipants(ctx, ledger.RoleUnspecified)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		return err
	}
	fmt.Printf("Server is healthy. Found %d participants:\n", len(participants))
	for _, p := range participants {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
	return nil
}
