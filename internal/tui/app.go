package tui

import (
	"fmt"
	"strings"

	"github.com/mabhi256/hexdiag/internal/ihex"
	"github.com/mabhi256/hexdiag/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func initialModel(filename string, records []ihex.RecordInfo) *Model {
	return &Model{
		filename:     filename,
		records:      records,
		currentTab:   RecordsTab,
		recordFilter: AllRecords,
		keys:         DefaultKeyMap(),
	}
}

// Run opens the interactive record browser over an already-analyzed file.
func Run(filename string, records []ihex.RecordInfo) error {
	p := tea.NewProgram(initialModel(filename, records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.currentTab = RecordsTab
		case "2":
			m.currentTab = LayoutTab

		case "f":
			if m.currentTab == RecordsTab {
				utils.CycleEnumPtr(&m.recordFilter, 1, TerminalRecords)
				m.selectedRecord = 0
				m.scrollOffset = 0
			}

		case "up", "k":
			if m.currentTab == RecordsTab && m.selectedRecord > 0 {
				m.selectedRecord--
				m.clampScroll()
			}
		case "down", "j":
			if m.currentTab == RecordsTab && m.selectedRecord < len(m.filteredRecords())-1 {
				m.selectedRecord++
				m.clampScroll()
			}

		case "enter":
			if m.currentTab == RecordsTab {
				m.showDetails = !m.showDetails
			}
		}
	}

	return m, nil
}

func (m *Model) View() string {
	header := m.renderTabs()

	var content string
	switch m.currentTab {
	case LayoutTab:
		content = m.renderLayout()
	default:
		content = m.renderRecords()
	}

	help := utils.MutedStyle.Render(
		"1 records • 2 layout • ↑/↓ select • f filter • enter details • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, content, help)
}

func (m *Model) renderTabs() string {
	tabs := []struct {
		tab  TabType
		name string
	}{
		{RecordsTab, "Records"},
		{LayoutTab, "Layout"},
	}

	var rendered []string
	for _, t := range tabs {
		style := utils.TabInactiveStyle
		if t.tab == m.currentTab {
			style = utils.TabActiveStyle
		}
		rendered = append(rendered, style.Render(t.name))
	}

	title := utils.TitleStyle.Render(fmt.Sprintf("hexdiag — %s", m.filename))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rendered, " "),
		strings.Repeat("─", max(m.width, 20)),
	)
}

// tableHeight is the number of record rows visible at once, from the current
// terminal height minus the fixed chrome around the table.
func (m *Model) tableHeight() int {
	chrome := 8 // title + tabs + separator + table header + status + help
	if m.showDetails {
		chrome += 9
	}
	return max(m.height-chrome, 3)
}

func (m *Model) clampScroll() {
	visible := m.tableHeight()
	if m.selectedRecord < m.scrollOffset {
		m.scrollOffset = m.selectedRecord
	}
	if m.selectedRecord >= m.scrollOffset+visible {
		m.scrollOffset = m.selectedRecord - visible + 1
	}
}
