// Package components holds reusable dashboard widgets.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/themes"
)

const (
	fieldName = iota
	fieldEmail
	fieldCategory
	fieldCompany
	fieldPhone
	fieldCount
)

// AddForm collects a new registration. Name, email and category are
// required; company and phone are optional.
type AddForm struct {
	theme  themes.Theme
	inputs []textinput.Model
	focus  int
	errMsg string
}

// NewAddForm returns a form with the first field focused.
func NewAddForm(theme themes.Theme) AddForm {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"Full name", 100},
		{"Email address", 200},
		{"Category (student, professional, ...)", 50},
		{"Company (optional)", 100},
		{"Phone (optional)", 30},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = l.limit
		ti.Width = 44
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	return AddForm{theme: theme, inputs: inputs}
}

// Update handles key input. Tab and shift+tab move focus; other keys go to
// the focused text input.
func (f AddForm) Update(msg tea.Msg) (AddForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *AddForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// Input returns the form contents as a registration input.
func (f AddForm) Input() model.RegistrationInput {
	return model.RegistrationInput{
		Name:     strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Category: strings.TrimSpace(f.inputs[fieldCategory].Value()),
		Company:  strings.TrimSpace(f.inputs[fieldCompany].Value()),
		Phone:    strings.TrimSpace(f.inputs[fieldPhone].Value()),
	}
}

// Validate checks the required fields and records an error message for the
// view. It returns true when the form can be submitted.
func (f *AddForm) Validate() bool {
	missing := f.Input().MissingFields()
	if len(missing) == 0 {
		f.errMsg = ""
		return true
	}
	f.errMsg = fmt.Sprintf("%s required", strings.Join(missing, ", "))
	return false
}

// SetError overrides the form error line, e.g. with a store failure.
func (f *AddForm) SetError(msg string) {
	f.errMsg = msg
}

// View renders the form.
func (f AddForm) View() string {
	labels := []string{"Name", "Email", "Category", "Company", "Phone"}

	var b strings.Builder
	b.WriteString(f.theme.Title.Render("New registration"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := labels[i]
		if i == f.focus {
			label = f.theme.Selected.Render(" " + label + " ")
		} else {
			label = f.theme.Subtitle.Render(" " + label + " ")
		}
		b.WriteString(fmt.Sprintf("%-24s %s\n", label, in.View()))
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(f.theme.StatusError.Render(f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(f.theme.Subtitle.Render("tab: next field • enter: save • esc: cancel"))

	return f.theme.Box.Render(b.String())
}
