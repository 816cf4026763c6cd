package score

// AgeRatio returns financial age divided by biological age; above 1 is
// favorable. Returns 0 when the biological age is non-positive, which cannot
// arise from the estimators but guards direct callers.
func AgeRatio(bioAge, finAge float64) float64 {
	if bioAge <= 0 {
		return 0
	}
	return finAge / bioAge
}
