package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sevanear/internal/domain/types"
	"sevanear/internal/services/browser"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// View renders whichever page the navigator says is visible.
func (m Model) View() string {
	var body string
	switch m.nav.Current() {
	case types.PageServiceList:
		body = m.viewList()
	case types.PageServiceDetail:
		body = m.viewDetail()
	case types.PageAddService:
		body = m.viewForm()
	default:
		body = m.viewHome()
	}
	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	if m.busy {
		body += "\n" + subtitleStyle.Render("Loading…")
	}
	return body + "\n"
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SevaNear") + "\n")
	b.WriteString(subtitleStyle.Render("Find community-aid services near a hospital") + "\n\n")

	b.WriteString(labelStyle.Render("Hospital") + "\n")
	if len(m.hospitals) == 0 {
		b.WriteString(subtitleStyle.Render("  (loading hospitals…)") + "\n")
	}
	for i, h := range m.hospitals {
		line := "  " + h.Name
		if i == m.hospitalIdx {
			line = selectedStyle.Render("> " + h.Name)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("Category") + "\n  ")
	cats := []string{"All Services"}
	for _, t := range m.serviceTypes {
		cats = append(cats, t.Icon+" "+t.Name)
	}
	for i, c := range cats {
		if i == m.typeIdx {
			b.WriteString(selectedStyle.Render("[" + c + "]"))
		} else {
			b.WriteString(" " + c + " ")
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(
		"↑/↓ hospital · ←/→ category · enter search · n nearby · a add service · esc/q quit"))
	return b.String()
}

func (m Model) viewList() string {
	title, counter := m.store.ListTexts()
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subtitleStyle.Render(counter) + "\n\n")

	if len(m.services) == 0 {
		b.WriteString(cardStyle.Render(
			"No Services Found\n" +
				"No services are currently available for this selection.\n" +
				"Try a different hospital or service type."))
		b.WriteString("\n")
	}
	for i, s := range m.services {
		cursor := "  "
		name := s.Name
		if i == m.listIdx {
			cursor = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		b.WriteString(cursor + name + "\n")
		b.WriteString("    " + subtitleStyle.Render(orText(s.HospitalName, "Hospital")) + "\n")
		b.WriteString("    " + subtitleStyle.Render(orText(s.Timings, "Timings not specified")) + "\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select · enter details · esc back"))
	return b.String()
}

func (m Model) viewDetail() string {
	svc, ok := m.store.Current()
	if !ok {
		return subtitleStyle.Render("No service selected.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(svc.Name) + "\n\n")
	b.WriteString(detailSection("Provider", svc.Provider))
	b.WriteString(detailSection("Description", svc.Description))
	b.WriteString(detailSection("Timings", svc.Timings))
	b.WriteString(detailSection("Contact", orText(svc.ProviderContact, svc.Contact)))
	// Optional sections disappear entirely when blank.
	if svc.Eligibility != "" {
		b.WriteString(detailSection("Eligibility", svc.Eligibility))
	}
	if svc.RequiredDocs != "" {
		b.WriteString(detailSection("Required Documents", svc.RequiredDocs))
	}

	if at, ok := m.maps.Last(); ok {
		b.WriteString(subtitleStyle.Render(
			fmt.Sprintf("Map centered at %.4f, %.4f", at.Latitude, at.Longitude)) + "\n")
	}
	b.WriteString(subtitleStyle.Render("Directions: "+browser.DirectionsLink(svc)) + "\n")

	b.WriteString(helpStyle.Render("c call link · d directions · esc back"))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add a Service") + "\n\n")

	for i, f := range (&m).formFields() {
		label := f.label
		value := *f.value
		if i == m.formIdx {
			b.WriteString(selectedStyle.Render("> "+label+": ") + value + "▏\n")
		} else {
			b.WriteString("  " + labelStyle.Render(label+": ") + value + "\n")
		}
	}

	b.WriteString(helpStyle.Render(
		"tab/↑/↓ fields · ctrl+l use my location · ctrl+s submit · esc back"))
	return b.String()
}

func detailSection(label, value string) string {
	return labelStyle.Render(label) + "\n" + value + "\n\n"
}

func orText(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
