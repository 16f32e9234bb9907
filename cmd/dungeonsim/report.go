package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/udisondev/dungeoncrawl/internal/sim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	goodStyle = cellStyle.Foreground(lipgloss.Color("86"))
	badStyle  = cellStyle.Foreground(lipgloss.Color("196"))

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	goodWinRate = 0.6
	badWinRate  = 0.4
	winRateCol  = 3
)

func renderReport(r sim.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Balance simulation"))
	b.WriteString("\n")
	b.WriteString(renderRows(r.Rows, true))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("By class"))
	b.WriteString("\n")
	b.WriteString(renderRows(r.ByClass(), false))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("%d encounters in %s", r.Encounters(), r.Elapsed.Round(time.Millisecond))))
	return b.String()
}

func renderRows(rows []sim.Row, withLevel bool) string {
	winRates := make([]float64, len(rows))
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("Class", "Level", "Fights", "Win %", "Avg turns", "Avg dealt", "Avg taken", "Timeouts")

	for i, row := range rows {
		level := "all"
		if withLevel {
			level = fmt.Sprint(row.Level)
		}
		winRates[i] = row.WinRate()
		t.Row(
			row.Class.String(),
			level,
			fmt.Sprint(row.Encounters),
			fmt.Sprintf("%.1f", row.WinRate()*100),
			fmt.Sprintf("%.1f", row.AvgTurns()),
			fmt.Sprintf("%.1f", row.AvgDamageDealt()),
			fmt.Sprintf("%.1f", row.AvgDamageTaken()),
			fmt.Sprint(row.TimedOut),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == winRateCol && winRates[row] >= goodWinRate:
			return goodStyle
		case col == winRateCol && winRates[row] < badWinRate:
			return badStyle
		default:
			return cellStyle
		}
	})
	return t.String()
}
