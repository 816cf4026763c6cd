package interpret

// Tone classifies a delta as favorable, unfavorable, or flat so the
// presentation layer can pick a color.
type Tone string

const (
	ToneGood    Tone = "good"
	ToneBad     Tone = "bad"
	ToneNeutral Tone = "neutral"
)

// Trend pairs a directional glyph with its tone.
type Trend struct {
	Glyph string
	Tone  Tone
}

// BioTrend maps a biological-age delta (biological − chronological) to a
// trend. A negative delta is favorable: being biologically younger than the
// calendar says.
func BioTrend(delta float64) Trend {
	switch {
	case delta < 0:
		return Trend{Glyph: "↓", Tone: ToneGood}
	case delta > 0:
		return Trend{Glyph: "↑", Tone: ToneBad}
	default:
		return Trend{Glyph: "→", Tone: ToneNeutral}
	}
}

// FinTrend maps a financial-age delta (financial − biological) to a trend.
// A positive delta is favorable: wealth maturity ahead of the health-adjusted
// life stage.
func FinTrend(delta float64) Trend {
	switch {
	case delta > 0:
		return Trend{Glyph: "↑", Tone: ToneGood}
	case delta < 0:
		return Trend{Glyph: "↓", Tone: ToneBad}
	default:
		return Trend{Glyph: "→", Tone: ToneNeutral}
	}
}
