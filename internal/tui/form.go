package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label string
	value *string
}

// formFields lists the add-service inputs in display order. The pointers
// refer into m.form, so edits land directly on the raw string fields.
func (m *Model) formFields() []formField {
	return []formField{
		{"Hospital ID", &m.form.HospitalID},
		{"Service type ID", &m.form.ServiceTypeID},
		{"Service name", &m.form.Name},
		{"Provider name", &m.form.Provider},
		{"Contact", &m.form.Contact},
		{"Description", &m.form.Description},
		{"Timings", &m.form.Timings},
		{"Eligibility", &m.form.Eligibility},
		{"Required documents", &m.form.RequiredDocs},
		{"Latitude", &m.form.Latitude},
		{"Longitude", &m.form.Longitude},
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.formFields()
	field := fields[m.formIdx]

	switch msg.Type {
	case tea.KeyRunes:
		*field.value += string(msg.Runes)
		return m, nil
	case tea.KeySpace:
		*field.value += " "
		return m, nil
	case tea.KeyBackspace:
		if v := *field.value; v != "" {
			*field.value = v[:len(v)-1]
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "enter", "down":
		if m.formIdx < len(fields)-1 {
			m.formIdx++
		} else if msg.String() == "enter" {
			m.busy = true
			return m, m.submitCmd()
		}
	case "shift+tab", "up":
		if m.formIdx > 0 {
			m.formIdx--
		}
	case "ctrl+s":
		m.busy = true
		return m, m.submitCmd()
	case "ctrl+l":
		return m, m.locateCmd()
	}
	return m, nil
}

func (m Model) submitCmd() tea.Cmd {
	form := m.form
	return func() tea.Msg {
		ack, err := m.submissions.Submit(context.Background(), form)
		return submitMsg{ack: ack, err: err}
	}
}

// locateCmd fills the coordinate fields from the location chain, the
// terminal stand-in for the original "use my location" button.
func (m Model) locateCmd() tea.Cmd {
	return func() tea.Msg {
		return locateMsg{at: m.locator.Position(context.Background())}
	}
}
