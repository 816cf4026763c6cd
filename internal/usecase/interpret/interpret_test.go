package interpret

import (
	"strings"
	"testing"
)

// --- bioMessage ---

func TestBioMessageBranches(t *testing.T) {
	cases := []struct {
		name    string
		chron   float64
		bio     float64
		snippet string
	}{
		{"well below", 40, 35, "significantly below"},
		{"lower band edge", 40, 37, "aligns closely"},
		{"equal", 40, 40, "aligns closely"},
		{"upper band edge", 40, 43, "aligns closely"},
		{"above", 40, 44, "is above"},
	}
	for _, c := range cases {
		got := bioMessage(c.chron, c.bio)
		if !strings.Contains(got, c.snippet) {
			t.Errorf("%s: bioMessage(%v, %v) = %q, want substring %q", c.name, c.chron, c.bio, got, c.snippet)
		}
	}
}

// --- finMessage ---

func TestFinMessageBranches(t *testing.T) {
	cases := []struct {
		name    string
		bio     float64
		fin     float64
		snippet string
	}{
		{"well ahead", 41, 48, "substantially higher"},
		{"upper band edge", 41, 46, "roughly aligned"},
		{"equal", 41, 41, "roughly aligned"},
		{"lower band edge", 41, 36, "roughly aligned"},
		{"behind", 41, 35.9, "is below"},
	}
	for _, c := range cases {
		got := finMessage(c.bio, c.fin)
		if !strings.Contains(got, c.snippet) {
			t.Errorf("%s: finMessage(%v, %v) = %q, want substring %q", c.name, c.bio, c.fin, got, c.snippet)
		}
	}
}

// --- Narrative ---

func TestNarrativeOrderAndSeparator(t *testing.T) {
	got := Narrative(40, 41, 48)

	parts := strings.Split(got, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected two messages joined by a blank line, got %d parts", len(parts))
	}
	if !strings.Contains(parts[0], "biological age aligns") {
		t.Errorf("expected biological comparison first, got %q", parts[0])
	}
	if !strings.Contains(parts[1], "substantially higher") {
		t.Errorf("expected financial comparison second, got %q", parts[1])
	}
}

// --- Trends ---

func TestBioTrend(t *testing.T) {
	if tr := BioTrend(-2); tr.Glyph != "↓" || tr.Tone != ToneGood {
		t.Errorf("BioTrend(-2) = %+v, want ↓ good", tr)
	}
	if tr := BioTrend(3); tr.Glyph != "↑" || tr.Tone != ToneBad {
		t.Errorf("BioTrend(3) = %+v, want ↑ bad", tr)
	}
	if tr := BioTrend(0); tr.Glyph != "→" || tr.Tone != ToneNeutral {
		t.Errorf("BioTrend(0) = %+v, want → neutral", tr)
	}
}

func TestFinTrend(t *testing.T) {
	if tr := FinTrend(7); tr.Glyph != "↑" || tr.Tone != ToneGood {
		t.Errorf("FinTrend(7) = %+v, want ↑ good", tr)
	}
	if tr := FinTrend(-1); tr.Glyph != "↓" || tr.Tone != ToneBad {
		t.Errorf("FinTrend(-1) = %+v, want ↓ bad", tr)
	}
	if tr := FinTrend(0); tr.Glyph != "→" || tr.Tone != ToneNeutral {
		t.Errorf("FinTrend(0) = %+v, want → neutral", tr)
	}
}
