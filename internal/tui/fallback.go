package tui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"
)

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// runSimple provides line-by-line output for non-interactive environments.
// It reads plans from the channel, formats them, and prints to stdout.
// Exits when the channel closes or on interrupt signal.
func (t *TUI) runSimple() error {
	// Set up interrupt handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-sigChan:
			// Clean exit on interrupt
			if t.onQuit != nil {
				t.onQuit()
			}
			return nil
		case plan, ok := <-t.planChan:
			if !ok {
				// Channel closed, exit cleanly
				return nil
			}

			line := plan.Line(t.separator)
			timestamp := time.Now().Format("15:04:05")
			if plan.Terminal {
				fmt.Printf("%s %s (countdown complete)\n", timestamp, line)
				continue
			}
			fmt.Printf("%s %s\n", timestamp, line)
		}
	}
}
