// Package interpret turns the computed ages into narrative text and trend
// indicators for the presentation layer.
package interpret

import "strings"

// Comparison tolerances in years: ages inside the band read as "aligned".
const (
	bioBand = 3 // biological vs chronological
	finBand = 5 // financial vs biological
)

const (
	bioBelowMsg = "Your biological age is significantly below your chronological age. " +
		"This typically reflects strong cardiovascular fitness, favorable biomarkers, " +
		"and generally robust metabolic health."
	bioAlignedMsg = "Your biological age aligns closely with your chronological age — generally balanced health. " +
		"With targeted adjustments, you can push biological age lower."
	bioAboveMsg = "Your biological age is above your chronological age. " +
		"This commonly reflects elevated baseline stress markers, higher resting heart rate, " +
		"lower activity levels, or lifestyle friction. There is opportunity to improve here."

	finAheadMsg = "Your financial age is substantially higher than your biological age. " +
		"This is a very strong position: you are accumulating wealth faster than most people at your health-adjusted life stage."
	finAlignedMsg = "Your financial age is roughly aligned with your biological age. " +
		"This is stable, but improving savings rate or asset growth could move you above the curve."
	finBehindMsg = "Your financial age is below your biological age. " +
		"This suggests under-accumulation relative to your health-adjusted stage of life. " +
		"Increasing savings rate, reducing liabilities, or optimizing investment mix may help."
)

// Narrative evaluates the two threshold comparisons and returns the selected
// message for each, biological first, separated by a blank line.
func Narrative(chronAge, bioAge, finAge float64) string {
	parts := []string{
		bioMessage(chronAge, bioAge),
		finMessage(bioAge, finAge),
	}
	return strings.Join(parts, "\n\n")
}

func bioMessage(chronAge, bioAge float64) string {
	switch {
	case bioAge < chronAge-bioBand:
		return bioBelowMsg
	case bioAge <= chronAge+bioBand:
		return bioAlignedMsg
	default:
		return bioAboveMsg
	}
}

func finMessage(bioAge, finAge float64) string {
	switch {
	case finAge > bioAge+finBand:
		return finAheadMsg
	case finAge >= bioAge-finBand:
		return finAlignedMsg
	default:
		return finBehindMsg
	}
}
