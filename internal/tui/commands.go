package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/export"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

const statusTimeout = 4 * time.Second

// loadCmd performs the initial fetch. The model stays in stateLoading until
// the message arrives, so nothing else touches the engine concurrently.
func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return engineLoadedMsg{err: m.engine.Load(m.ctx)}
	}
}

// addCmd submits a new registration. The model is in stateSubmitting while
// this runs, which blocks every other engine access.
func (m *Model) addCmd(input model.RegistrationInput) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{kind: "add", result: m.engine.Add(m.ctx, input)}
	}
}

func (m *Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{kind: "delete", result: m.engine.Delete(m.ctx, id)}
	}
}

// exportCmd writes a CSV snapshot of the given records. The slice is taken
// from the engine before the command runs, so the goroutine never reads
// engine state.
func (m *Model) exportCmd(records []model.Registration, prefix string) tea.Cmd {
	return func() tea.Msg {
		filename := export.Filename(prefix, time.Now())
		f, err := os.Create(filename)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer func() {
			_ = f.Close()
		}()
		if err := export.Write(f, records); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: filename, rows: len(records)}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
