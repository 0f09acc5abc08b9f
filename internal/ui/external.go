package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"github.com/pkg/browser"

	"steamgrip/internal/domain"
)

// ExternalOps handles operations that leave the TUI: the browser and the
// library pager.
type ExternalOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewExternalOps creates a new external operations instance
func NewExternalOps() *ExternalOps {
	return &ExternalOps{}
}

// SetProgram sets the program reference for terminal management
func (e *ExternalOps) SetProgram(p *tea.Program) {
	e.program = p
}

// OpenStorePage opens the game's store page in the default browser
func (e *ExternalOps) OpenStorePage(game domain.Game) error {
	return browser.OpenURL(game.StoreURL())
}

// ShowLibraryInPager shows the library listing using the ov pager
func (e *ExternalOps) ShowLibraryInPager(content string) error {
	if e.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := e.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = e.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
