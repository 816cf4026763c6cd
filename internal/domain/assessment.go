package domain

// Assessment is the result of scoring one profile: the two synthetic ages,
// their ratio, the deltas the presentation layer turns into trend arrows, and
// the narrative interpretation.
//
// Lower biological age is favorable; higher financial age is favorable;
// a ratio above 1 indicates favorable standing.
type Assessment struct {
	ChronologicalAge float64 `json:"chronological_age"`
	BiologicalAge    float64 `json:"biological_age"`
	FinancialAge     float64 `json:"financial_age"`
	Ratio            float64 `json:"ratio"`

	NetWorth float64 `json:"net_worth"`

	// BioDelta is biological minus chronological age (negative is favorable).
	BioDelta float64 `json:"bio_delta"`
	// FinDelta is financial minus biological age (positive is favorable).
	FinDelta float64 `json:"fin_delta"`

	Narrative string `json:"narrative"`
}
