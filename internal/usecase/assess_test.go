package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/nvidales/agelens/internal/domain"
)

func demoPerson() domain.PersonProfile {
	return domain.PersonProfile{
		ChronologicalAge: 40,
		HeightCM:         175,
		WeightKG:         75,
		RestingHR:        65,
		Activity:         "Moderately Active",
		Conditions:       []string{"Smoker"},
	}
}

func demoFinancial() domain.FinancialProfile {
	return domain.FinancialProfile{
		AnnualIncome:   75000,
		LiquidAssets:   100000,
		IlliquidAssets: 200000,
		Liabilities:    0,
		Housing:        domain.HousingRent,
	}
}

func TestAssessEndToEnd(t *testing.T) {
	// Bio: 40−2+0−2+5 = 41. Net worth 300000 → implied age 45, rent +3 → 48.
	a := Assess(demoPerson(), demoFinancial())

	if a.BiologicalAge != 41 {
		t.Fatalf("expected biological age 41, got %v", a.BiologicalAge)
	}
	if a.FinancialAge != 48 {
		t.Fatalf("expected financial age 48, got %v", a.FinancialAge)
	}
	if a.NetWorth != 300000 {
		t.Fatalf("expected net worth 300000, got %v", a.NetWorth)
	}
	if a.Ratio != 48.0/41.0 {
		t.Fatalf("expected ratio %v, got %v", 48.0/41.0, a.Ratio)
	}
	if a.BioDelta != 1 {
		t.Fatalf("expected bio delta +1, got %v", a.BioDelta)
	}
	if a.FinDelta != 7 {
		t.Fatalf("expected fin delta +7, got %v", a.FinDelta)
	}
}

func TestAssessNarrativeBranchSelection(t *testing.T) {
	// bio 41 vs chron 40 → aligned; fin 48 vs bio 41 → ahead.
	a := Assess(demoPerson(), demoFinancial())

	if !strings.Contains(a.Narrative, "aligns closely") {
		t.Errorf("expected aligned biological message, got %q", a.Narrative)
	}
	if !strings.Contains(a.Narrative, "substantially higher") {
		t.Errorf("expected ahead financial message, got %q", a.Narrative)
	}
}

func TestAssessIsDeterministic(t *testing.T) {
	a := Assess(demoPerson(), demoFinancial())
	b := Assess(demoPerson(), demoFinancial())
	if a != b {
		t.Fatalf("expected identical assessments for identical inputs:\n%+v\n%+v", a, b)
	}
}

// --- AssessProfile ---

type fakeLoader struct {
	prof domain.Profile
	err  error
}

func (f fakeLoader) LoadProfile(string) (domain.Profile, error) {
	return f.prof, f.err
}

func TestAssessProfileExecute(t *testing.T) {
	uc := NewAssessProfile(fakeLoader{
		prof: domain.Profile{Person: demoPerson(), Financial: demoFinancial()},
	})

	a, err := uc.Execute("profile.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.BiologicalAge != 41 || a.FinancialAge != 48 {
		t.Fatalf("unexpected assessment: %+v", a)
	}
}

func TestAssessProfileExecutePropagatesLoaderError(t *testing.T) {
	wantErr := &domain.OpError{Op: "yamlprofile.load", Kind: domain.KindNotFound}
	uc := NewAssessProfile(fakeLoader{err: wantErr})

	_, err := uc.Execute("missing.yaml")
	if err == nil {
		t.Fatal("expected error")
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Kind != domain.KindNotFound {
		t.Fatalf("expected not_found OpError, got %v", err)
	}
}
