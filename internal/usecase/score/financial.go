package score

import "github.com/nvidales/agelens/internal/domain"

// curvePoint is one control point of the reference curve: the median net
// worth observed at a given age.
type curvePoint struct {
	Age      float64
	NetWorth float64
}

// referenceCurve is the blended US/Canada median net-worth-by-age curve.
// Points are strictly increasing in both dimensions; the estimator
// interpolates between them and saturates at the endpoints.
var referenceCurve = []curvePoint{
	{25, 20000},
	{30, 60000},
	{35, 120000},
	{40, 200000},
	{45, 300000},
	{50, 450000},
	{55, 650000},
	{60, 850000},
	{65, 1000000},
	{70, 1100000},
}

// Housing adjustment in years: ownership boosts financial maturity,
// anything else delays it.
const (
	ownAdjustment  = -3
	rentAdjustment = 3
)

// FinancialAge estimates a wealth-maturity age from net worth and housing
// status. Higher is favorable. The result is clamped to [18,95].
func FinancialAge(netWorth float64, housing domain.HousingStatus) float64 {
	age := impliedAge(netWorth)

	if domain.HousingStatus(normalize(string(housing))) == domain.HousingOwn {
		age += ownAdjustment
	} else {
		age += rentAdjustment
	}

	return clamp(age, finAgeMin, finAgeMax)
}

// impliedAge maps net worth to an age by piecewise-linear interpolation over
// the reference curve. Net worth outside the curve's range clamps to the
// nearest endpoint's age.
func impliedAge(netWorth float64) float64 {
	first := referenceCurve[0]
	last := referenceCurve[len(referenceCurve)-1]

	if netWorth <= first.NetWorth {
		return first.Age
	}
	if netWorth >= last.NetWorth {
		return last.Age
	}

	for i := 1; i < len(referenceCurve); i++ {
		lo, hi := referenceCurve[i-1], referenceCurve[i]
		if netWorth > hi.NetWorth {
			continue
		}
		frac := (netWorth - lo.NetWorth) / (hi.NetWorth - lo.NetWorth)
		return lo.Age + frac*(hi.Age-lo.Age)
	}

	return last.Age
}
