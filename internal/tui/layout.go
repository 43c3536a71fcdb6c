package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/mabhi256/hexdiag/internal/ihex"
	"github.com/mabhi256/hexdiag/utils"
)

// renderLayout shows how the file's data is spread across its records: a bar
// per record with its data-byte count, plus the resolved address summary.
func (m *Model) renderLayout() string {
	var (
		totalData int
		dataRecs  int
		barStyle  = lipgloss.NewStyle().Foreground(utils.InfoColor)
	)

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	bc := barchart.New(width, 12)

	for _, info := range m.records {
		r := info.Record
		if r.Type == ihex.DataRecord {
			dataRecs++
			totalData += r.ByteCount
		}
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("L%d", info.Line),
			Values: []barchart.BarValue{
				{Name: "bytes", Value: float64(r.ByteCount), Style: barStyle},
			},
		})
	}
	bc.Draw()

	summary := []string{
		utils.InfoStyle.Render("Data bytes per record"),
		bc.View(),
		"",
		fmt.Sprintf("Records: %d   Data records: %d   Data bytes: %d",
			len(m.records), dataRecs, totalData),
	}

	for _, info := range m.records {
		if info.Resolution.HasAbs {
			summary = append(summary, utils.GoodStyle.Render(
				fmt.Sprintf("Line %d: %s → absolute %08X",
					info.Line, info.Record.Type, info.Resolution.Absolute)))
		}
	}

	return strings.Join(summary, "\n")
}
