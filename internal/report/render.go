package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorHigh = lipgloss.Color("#EF4444")
	colorOK   = lipgloss.Color("#10B981")
	colorMute = lipgloss.Color("#6B7280")
)

// RenderText writes r as a plain-text document: a title, one table per section and the banner.
// Colors are dropped automatically when w is not a terminal.
func RenderText(w io.Writer, r *Report) error {
	if r == nil {
		return errors.New("report is nil")
	}
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMute)
	sectionStyle := lipgloss.NewStyle().Bold(true)

	sb.WriteString(titleStyle.Render("Carbon Footprint Report"))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("User: " + r.UserID))
	if !r.GeneratedAt.IsZero() {
		sb.WriteString(mutedStyle.Render("  Generated: " + r.GeneratedAt.Format("2006-01-02 15:04 MST")))
	}
	sb.WriteString("\n\n")

	for _, s := range r.Sections {
		sb.WriteString(sectionStyle.Render(s.Title))
		sb.WriteString("\n")
		if len(s.Rows) == 0 {
			sb.WriteString(mutedStyle.Render("No records"))
			sb.WriteString("\n\n")
			continue
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(mutedStyle).
			Headers(s.LabelHeader, "Emission (kg CO2e)")
		for _, row := range s.Rows {
			t.Row(row.Label, formatKg(row.Emission))
		}
		t.Row("Subtotal", formatKg(s.Subtotal))
		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	color := colorOK
	if r.Banner.Level == LevelHigh {
		color = colorHigh
	}
	bannerStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color).
		Padding(0, 1)
	headline := lipgloss.NewStyle().Bold(true).Foreground(color).Render(r.Banner.Headline)
	sb.WriteString(bannerStyle.Render(headline + "\n" + r.Banner.Message + "\n" + r.Banner.Summary()))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatKg(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
