package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until it exits.
func Run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	m, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cfg.Ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	if fm, ok := final.(*Model); ok {
		if loadErr := fm.LoadError(); loadErr != nil {
			return loadErr
		}
	}
	return nil
}
