package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mabhi256/hexdiag/internal/ihex"
)

type Model struct {
	// Data
	filename string
	records  []ihex.RecordInfo

	// UI State
	currentTab     TabType
	width          int
	height         int
	selectedRecord int
	scrollOffset   int
	showDetails    bool
	recordFilter   RecordFilter

	// Key bindings
	keys KeyMap
}

type TabType int

const (
	RecordsTab TabType = iota
	LayoutTab
)

type RecordFilter int

const (
	AllRecords RecordFilter = iota
	DataRecords
	AddressRecords
	TerminalRecords
)

func (f RecordFilter) String() string {
	switch f {
	case DataRecords:
		return "Data"
	case AddressRecords:
		return "Address"
	case TerminalRecords:
		return "Terminal"
	}
	return "All"
}

type KeyMap struct {
	Tab1   key.Binding
	Tab2   key.Binding
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Enter  key.Binding
	Quit   key.Binding
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:   k([]string{"1"}, "1", "records"),
		Tab2:   k([]string{"2"}, "2", "layout"),
		Up:     k([]string{"up", "k"}, "↑/k", "up"),
		Down:   k([]string{"down", "j"}, "↓/j", "down"),
		Filter: k([]string{"f"}, "f", "cycle filter"),
		Enter:  k([]string{"enter"}, "enter", "details"),
		Quit:   k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}
