// Package previewconsole renders a generated dataset in an interactive
// terminal browser so a run can be inspected without writing anything.
package previewconsole

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"advisorseed/internal/domain/dataset"
)

const maxVisibleMembers = 15

type previewModel struct {
	ds            dataset.Dataset
	countryCodes  []string
	countryFilter int // index into countryCodes; 0 means all
	filtered      []dataset.MemberProfile
	selectedIndex int
}

// NewModel builds a browser over the dataset's member table.
func NewModel(ds dataset.Dataset) tea.Model {
	codes := []string{"all"}
	for _, country := range dataset.Countries() {
		codes = append(codes, country.Code)
	}

	m := &previewModel{
		ds:           ds,
		countryCodes: codes,
	}
	m.applyFilter()
	return m
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
			return m, nil
		case "down", "j":
			if m.selectedIndex < len(m.filtered)-1 {
				m.selectedIndex++
			}
			return m, nil
		case "tab":
			m.countryFilter = (m.countryFilter + 1) % len(m.countryCodes)
			m.applyFilter()
			return m, nil
		}
	}
	return m, nil
}

func (m *previewModel) applyFilter() {
	code := m.countryCodes[m.countryFilter]
	if code == "all" {
		m.filtered = m.ds.Members
	} else {
		filtered := make([]dataset.MemberProfile, 0, len(m.ds.Members))
		for _, member := range m.ds.Members {
			if member.Country == code {
				filtered = append(filtered, member)
			}
		}
		m.filtered = filtered
	}
	m.selectedIndex = 0
}

func (m *previewModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("Dataset Preview"))
	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render(fmt.Sprintf(
		"seed=%d members=%d citations=%d governance=%d filter=%s",
		m.ds.Seed,
		len(m.ds.Members),
		len(m.ds.Citations),
		len(m.ds.Governance),
		m.countryCodes[m.countryFilter],
	)))
	builder.WriteString("\n\n")

	builder.WriteString(sectionStyle.Render("Members"))
	builder.WriteString("\n")
	if len(m.filtered) == 0 {
		builder.WriteString(dimStyle.Render("- no members"))
		builder.WriteString("\n")
	}

	start, end := visibleWindow(m.selectedIndex, len(m.filtered), maxVisibleMembers)
	for i := start; i < end; i++ {
		member := m.filtered[i]
		line := fmt.Sprintf("%s  %-24s age=%-3d %-13s balance=%d",
			member.MemberID, member.Name, member.Age, member.EmploymentStatus, member.SuperBalance)
		if i == m.selectedIndex {
			builder.WriteString(selectedStyle.Render("> " + line))
		} else {
			builder.WriteString("  " + line)
		}
		builder.WriteString("\n")
	}

	if m.selectedIndex < len(m.filtered) {
		member := m.filtered[m.selectedIndex]
		builder.WriteString("\n")
		builder.WriteString(sectionStyle.Render("Detail"))
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf(
			"  %s (%s, %s)\n  income=%d debt=%d other_assets=%d pension=%d dependents=%d\n  literacy=%s health=%s home=%s risk=%s marital=%s\n  persona=%s preservation_age=%d\n",
			member.Name, member.Gender, member.Country,
			member.AnnualIncomeOutsideSuper, member.Debt, member.OtherAssets,
			member.AccountBasedPension, member.Dependents,
			member.FinancialLiteracy, member.HealthStatus, member.HomeOwnership,
			member.RiskProfile, member.MaritalStatus,
			member.PersonaType, member.PreservationAge,
		))
	}

	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render("up/down navigate · tab filter country · q quit"))
	builder.WriteString("\n")
	return builder.String()
}

// visibleWindow keeps the selection inside a fixed-height list window.
func visibleWindow(selected, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
