package tui

import (
	"strings"
	"testing"

	"github.com/nvidales/agelens/internal/domain"
)

func TestRenderResultsContainsMetrics(t *testing.T) {
	a := domain.Assessment{
		ChronologicalAge: 40,
		BiologicalAge:    41,
		FinancialAge:     48,
		Ratio:            48.0 / 41.0,
		NetWorth:         300000,
		BioDelta:         1,
		FinDelta:         7,
		Narrative:        "alpha paragraph\n\nbeta paragraph",
	}

	out := renderResults(DefaultTheme(), a, 100)

	for _, want := range []string{"41.0", "48.0", "1.17", "$300,000", "alpha paragraph", "beta paragraph"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in results view, got:\n%s", want, out)
		}
	}
}

func TestFormatNetWorthNegative(t *testing.T) {
	if got := formatNetWorth(-35000); got != "-$35,000" {
		t.Fatalf("expected -$35,000, got %q", got)
	}
}

func TestWrapTextKeepsParagraphBreak(t *testing.T) {
	in := "one two three\n\nfour five six"
	out := wrapText(in, 80)
	if !strings.Contains(out, "\n\n") {
		t.Fatalf("expected blank line between paragraphs, got %q", out)
	}
}

func TestWrapTextBreaksLongLines(t *testing.T) {
	in := strings.Repeat("word ", 30)
	out := wrapText(strings.TrimSpace(in), 20)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestWrapTextZeroWidthIsIdentity(t *testing.T) {
	in := "unchanged text"
	if got := wrapText(in, 0); got != in {
		t.Fatalf("expected identity for zero width, got %q", got)
	}
}
