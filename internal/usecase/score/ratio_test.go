package score

import "testing"

func TestAgeRatio(t *testing.T) {
	if got := AgeRatio(40, 60); got != 1.5 {
		t.Fatalf("AgeRatio(40, 60) = %v, want 1.5", got)
	}
	if got := AgeRatio(50, 25); got != 0.5 {
		t.Fatalf("AgeRatio(50, 25) = %v, want 0.5", got)
	}
}

func TestAgeRatioGuardsNonPositiveBioAge(t *testing.T) {
	if got := AgeRatio(0, 50); got != 0 {
		t.Fatalf("AgeRatio(0, 50) = %v, want 0", got)
	}
	if got := AgeRatio(-3, 50); got != 0 {
		t.Fatalf("AgeRatio(-3, 50) = %v, want 0", got)
	}
}
