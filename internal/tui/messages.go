package tui

import "github.com/pranavpatil70/Registeration-hub-admin/internal/engine"

// engineLoadedMsg is sent when the initial fetch completes.
type engineLoadedMsg struct {
	err error
}

// mutationDoneMsg is sent when an add or delete finishes.
type mutationDoneMsg struct {
	kind   string
	result engine.MutationResult
}

// exportDoneMsg is sent when a CSV export finishes.
type exportDoneMsg struct {
	err      error
	filename string
	rows     int
}

// statusClearMsg clears the transient status line.
type statusClearMsg struct{}
