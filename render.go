package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/jumpei00/gostocksignal/app/models/indicator"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	summaryStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)

	analysisWidth       = 33
	descriptionWidth    = 64
	recommendationWidth = 16

	recommendationColors = map[indicator.Recommendation]lipgloss.Color{
		indicator.Sell: lipgloss.Color("#FF6347"),
		indicator.Hold: lipgloss.Color("#FFFF00"),
		indicator.Buy:  lipgloss.Color("#008000"),
	}
	trendColors = map[string]lipgloss.Color{
		models.TrendUp:   lipgloss.Color("#008000"),
		models.TrendDown: lipgloss.Color("#FF0000"),
	}
)

func row(analysis, description, recommendation string, style lipgloss.Style) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Width(analysisWidth).Render(analysis),
		style.Width(descriptionWidth).Render(description),
		style.Width(recommendationWidth).Render(recommendation),
	)
}

// renderTable draws the recommendation table, colored by recommendation,
// followed by the trend and close extremes of the range
func renderTable(symbol string, table indicator.Table, summary *models.Summary) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Trade Recommendations for %s", symbol)),
		row("Analysis", "Description", "Recommendation", headerStyle),
	}
	for _, record := range table {
		recommendation := lipgloss.NewStyle().Bold(true).
			Foreground(recommendationColors[record.Recommendation]).
			Render(string(record.Recommendation))
		lines = append(lines, row(record.Analysis, record.Description, recommendation, cellStyle))
	}

	if summary != nil {
		trend := lipgloss.NewStyle().Foreground(trendColors[summary.Trend]).Render(summary.Trend)
		lines = append(lines, summaryStyle.Render(fmt.Sprintf("trend: %s  min close: %.2f (%s)  max close: %.2f (%s)",
			trend,
			summary.MinClose, time.UnixMilli(summary.MinTime).UTC().Format("2006-01-02"),
			summary.MaxClose, time.UnixMilli(summary.MaxTime).UTC().Format("2006-01-02"))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
