package domain

// ActivityLevel describes habitual physical activity. Values are matched
// case-insensitively after trimming; unrecognized values contribute no
// adjustment.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityMildlyActive     ActivityLevel = "mildly active"
	ActivityModeratelyActive ActivityLevel = "moderately active"
	ActivityAthlete          ActivityLevel = "athlete"
)

// ActivityLevels lists the recognized levels in ascending order of intensity.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityMildlyActive,
		ActivityModeratelyActive,
		ActivityAthlete,
	}
}

// HousingStatus describes the housing situation. Only "own" gets the
// ownership boost; any other value is treated as renting.
type HousingStatus string

const (
	HousingRent HousingStatus = "rent"
	HousingOwn  HousingStatus = "own"
)

// PersonProfile holds the physiologic inputs for the biological age estimate.
// Conditions are free-form tags matched case-insensitively against a fixed
// penalty table; duplicates count once per occurrence.
type PersonProfile struct {
	ChronologicalAge float64
	HeightCM         float64
	WeightKG         float64
	RestingHR        float64
	Activity         ActivityLevel
	Conditions       []string
}

// FinancialProfile holds the wealth inputs for the financial age estimate.
// AnnualIncome is collected for context but does not enter the scoring.
type FinancialProfile struct {
	AnnualIncome   float64
	LiquidAssets   float64
	IlliquidAssets float64
	Liabilities    float64
	Housing        HousingStatus
}

// NetWorth derives net worth from the asset and liability inputs.
// It may be negative.
func (f FinancialProfile) NetWorth() float64 {
	return f.LiquidAssets + f.IlliquidAssets - f.Liabilities
}

// Profile is the full input document: one person, one balance sheet.
type Profile struct {
	Name      string
	Person    PersonProfile
	Financial FinancialProfile
}
