package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nvidales/agelens/internal/domain"
	"github.com/nvidales/agelens/internal/usecase/interpret"
)

// renderResults draws the three metrics with trend arrows plus the narrative.
// Pure string assembly so it can be tested without a terminal.
func renderResults(t Theme, a domain.Assessment, width int) string {
	bio := interpret.BioTrend(a.BioDelta)
	fin := interpret.FinTrend(a.FinDelta)

	var b strings.Builder

	b.WriteString(metricLine(t, "Biological Age", fmt.Sprintf("%.1f", a.BiologicalAge),
		toneStyle(t, bio.Tone).Render(fmt.Sprintf("%s %+.1f vs chronological", bio.Glyph, a.BioDelta))))
	b.WriteString("\n")
	b.WriteString(metricLine(t, "Financial Age", fmt.Sprintf("%.1f", a.FinancialAge),
		toneStyle(t, fin.Tone).Render(fmt.Sprintf("%s %+.1f vs biological", fin.Glyph, a.FinDelta))))
	b.WriteString("\n")
	b.WriteString(metricLine(t, "Financial / Biological Ratio", fmt.Sprintf("%.2f", a.Ratio), ""))
	b.WriteString("\n")
	b.WriteString(metricLine(t, "Net Worth", formatNetWorth(a.NetWorth), ""))

	card := t.Card.Render(b.String())

	narrativeWidth := 72
	if width > 0 && width-8 < narrativeWidth {
		narrativeWidth = width - 8
	}
	narrative := t.Card.Render(
		t.Label.Render("Interpretation") + "\n\n" +
			wrapText(a.Narrative, narrativeWidth),
	)

	help := t.Help.Render("r restart • q quit")
	return card + "\n" + narrative + "\n" + help
}

// metricLine renders one metric: label, value, optional delta annotation.
func metricLine(t Theme, label, value, delta string) string {
	line := t.Label.Render(label+":") + " " + value
	if delta != "" {
		line += "  " + delta
	}
	return line
}

func toneStyle(t Theme, tone interpret.Tone) lipgloss.Style {
	switch tone {
	case interpret.ToneGood:
		return t.Good
	case interpret.ToneBad:
		return t.Bad
	default:
		return t.Neutral
	}
}

func formatNetWorth(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 0)
	}
	return "$" + humanize.CommafWithDigits(v, 0)
}

// wrapText breaks the narrative into lines of at most width runes, keeping
// the blank line between the two interpretation paragraphs.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}

	paragraphs := strings.Split(s, "\n\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		var lines []string
		var line strings.Builder
		for _, word := range strings.Fields(p) {
			if line.Len() > 0 && line.Len()+1+len(word) > width {
				lines = append(lines, line.String())
				line.Reset()
			}
			if line.Len() > 0 {
				line.WriteString(" ")
			}
			line.WriteString(word)
		}
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
		out = append(out, strings.Join(lines, "\n"))
	}

	return strings.Join(out, "\n\n")
}
