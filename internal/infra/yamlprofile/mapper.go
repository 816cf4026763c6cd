package yamlprofile

import (
	"fmt"

	"github.com/nvidales/agelens/internal/domain"
)

// MapProfile validates the dto and maps it into the domain.
//
// Only structurally unusable inputs are rejected here (the estimators divide
// by height and start from chronological age). Activity level, housing
// status, and condition tags pass through untouched: the scoring core treats
// unrecognized values as no-ops by contract.
func MapProfile(path string, yp YAMLProfile) (domain.Profile, error) {
	if yp.Person.ChronologicalAge == nil {
		return domain.Profile{}, invalidField(path, "person.chronological_age", "chronological age is required")
	}
	if *yp.Person.ChronologicalAge <= 0 {
		return domain.Profile{}, invalidField(path, "person.chronological_age", "chronological age must be positive")
	}
	if yp.Person.HeightCM == nil || *yp.Person.HeightCM <= 0 {
		return domain.Profile{}, invalidField(path, "person.height_cm", "height must be positive")
	}
	if yp.Person.WeightKG == nil || *yp.Person.WeightKG <= 0 {
		return domain.Profile{}, invalidField(path, "person.weight_kg", "weight must be positive")
	}

	var restingHR float64
	if yp.Person.RestingHR != nil {
		restingHR = *yp.Person.RestingHR
	}

	conditions := yp.Person.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	return domain.Profile{
		Name: yp.Name,
		Person: domain.PersonProfile{
			ChronologicalAge: *yp.Person.ChronologicalAge,
			HeightCM:         *yp.Person.HeightCM,
			WeightKG:         *yp.Person.WeightKG,
			RestingHR:        restingHR,
			Activity:         domain.ActivityLevel(yp.Person.ActivityLevel),
			Conditions:       conditions,
		},
		Financial: domain.FinancialProfile{
			AnnualIncome:   yp.Financial.AnnualIncome,
			LiquidAssets:   yp.Financial.LiquidAssets,
			IlliquidAssets: yp.Financial.IlliquidAssets,
			Liabilities:    yp.Financial.Liabilities,
			Housing:        domain.HousingStatus(yp.Financial.HousingStatus),
		},
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlprofile.map",
		Kind: domain.KindInvalidProfile,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidProfile),
	}
}
