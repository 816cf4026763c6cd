package usecase

import (
	"github.com/nvidales/agelens/internal/domain"
	"github.com/nvidales/agelens/internal/ports"
	"github.com/nvidales/agelens/internal/usecase/interpret"
	"github.com/nvidales/agelens/internal/usecase/score"
)

// Assess runs the full scoring pipeline over one profile: biological age,
// financial age, ratio, deltas, and narrative. It is pure; repeated calls
// with the same inputs yield the same assessment.
func Assess(person domain.PersonProfile, fin domain.FinancialProfile) domain.Assessment {
	netWorth := fin.NetWorth()

	bioAge := score.BiologicalAge(person)
	finAge := score.FinancialAge(netWorth, fin.Housing)

	return domain.Assessment{
		ChronologicalAge: person.ChronologicalAge,
		BiologicalAge:    bioAge,
		FinancialAge:     finAge,
		Ratio:            score.AgeRatio(bioAge, finAge),
		NetWorth:         netWorth,
		BioDelta:         bioAge - person.ChronologicalAge,
		FinDelta:         finAge - bioAge,
		Narrative:        interpret.Narrative(person.ChronologicalAge, bioAge, finAge),
	}
}

// AssessProfile loads a profile document through a ProfileLoader and scores
// it. This is the non-interactive (file-driven) entry point.
type AssessProfile struct {
	profiles ports.ProfileLoader
}

func NewAssessProfile(pl ports.ProfileLoader) *AssessProfile {
	return &AssessProfile{profiles: pl}
}

func (uc *AssessProfile) Execute(path string) (domain.Assessment, error) {
	prof, err := uc.profiles.LoadProfile(path)
	if err != nil {
		return domain.Assessment{}, err
	}
	return Assess(prof.Person, prof.Financial), nil
}
