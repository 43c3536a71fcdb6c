package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/hexdiag/internal/ihex"
	"github.com/mabhi256/hexdiag/utils"
)

func (m *Model) filteredRecords() []ihex.RecordInfo {
	if m.recordFilter == AllRecords {
		return m.records
	}

	var filtered []ihex.RecordInfo
	for _, info := range m.records {
		switch m.recordFilter {
		case DataRecords:
			if info.Record.Type == ihex.DataRecord {
				filtered = append(filtered, info)
			}
		case AddressRecords:
			if info.Record.Type == ihex.ExtSegmentAddrRecord || info.Record.Type == ihex.ExtLinearAddrRecord {
				filtered = append(filtered, info)
			}
		case TerminalRecords:
			if info.Resolution.Terminal {
				filtered = append(filtered, info)
			}
		}
	}
	return filtered
}

func (m *Model) renderRecords() string {
	records := m.filteredRecords()
	if len(records) == 0 {
		return utils.MutedStyle.Render("\n  No records match the current filter\n")
	}

	filterStyle := utils.TabInactiveStyle
	if m.recordFilter != AllRecords {
		filterStyle = utils.TabActiveStyle
	}
	statusLine := fmt.Sprintf("%s | %s",
		filterStyle.Render(fmt.Sprintf("Filter: %s", m.recordFilter)),
		utils.MutedStyle.Render(fmt.Sprintf("%d/%d records", len(records), len(m.records))))

	headerLine := fmt.Sprintf("%-6s │ %-24s │ %-7s │ %-5s │ %-16s",
		"Line", "Type", "Address", "Bytes", "Checksum")

	rows := []string{statusLine, utils.HeaderStyle.Render(headerLine)}

	visible := m.tableHeight()
	end := m.scrollOffset + visible
	if end > len(records) {
		end = len(records)
	}

	for i := m.scrollOffset; i < end; i++ {
		info := records[i]
		r := info.Record

		row := fmt.Sprintf("%-6d │ %-24s │ %04X    │ %-5d │ %02X",
			info.Line, r.Type, r.Address, r.ByteCount, r.Checksum)

		if i == m.selectedRecord {
			row = utils.TabActiveStyle.Render(row)
		} else {
			row = utils.TextStyle.Render(row)
		}
		rows = append(rows, row)
	}

	content := strings.Join(rows, "\n")

	if m.showDetails && m.selectedRecord < len(records) {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content, "", m.renderDetails(records[m.selectedRecord]))
	}

	return content
}

func (m *Model) renderDetails(info ihex.RecordInfo) string {
	r := info.Record
	res := info.Resolution

	lines := []string{
		utils.InfoStyle.Render(fmt.Sprintf("Record %d — %s", info.Line, r.Type)),
		utils.MutedStyle.Render(info.Text),
		fmt.Sprintf("Byte count: %02X (%d)", r.ByteCount, r.ByteCount),
		fmt.Sprintf("Address:    %04X", r.Address),
		fmt.Sprintf("Data:       %s", dataHex(r.Data)),
		fmt.Sprintf("Checksum:   %02X", r.Checksum),
		fmt.Sprintf("Data fill:  %s %d/255",
			utils.CreateProgressBar(float64(r.ByteCount)/255, 20, utils.InfoColor), r.ByteCount),
	}

	switch {
	case res.HasAbs:
		lines = append(lines, utils.GoodStyle.Render(
			fmt.Sprintf("Base %04X → absolute %08X", res.Base, res.Absolute)))
	case res.Terminal:
		lines = append(lines, utils.WarningStyle.Render("Terminal record"))
	default:
		lines = append(lines, utils.GoodStyle.Render(
			fmt.Sprintf("Base address set to %04X", res.Base)))
	}

	return utils.BoxStyle.Render(strings.Join(lines, "\n"))
}

func dataHex(data []byte) string {
	if len(data) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for i, d := range data {
		if i > 0 && i%16 == 0 {
			b.WriteString("\n            ")
		}
		fmt.Fprintf(&b, "%02X ", d)
	}
	return strings.TrimRight(b.String(), " ")
}
