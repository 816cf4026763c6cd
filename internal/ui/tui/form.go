package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// Form steps, in the order the wizard walks them.
const (
	stepChronAge = iota
	stepHeight
	stepWeight
	stepRestingHR
	stepActivity
	stepConditions
	stepIncome
	stepLiquid
	stepIlliquid
	stepLiabilities
	stepHousing
	stepCount
)

type numericSpec struct {
	label   string
	unit    string
	initial float64
}

// numericSpecs defines the text-input steps. Initial values match the form
// defaults users see before editing.
var numericSpecs = map[int]numericSpec{
	stepChronAge:    {label: "Chronological age", unit: "years", initial: 40},
	stepHeight:      {label: "Height", unit: "cm", initial: 175},
	stepWeight:      {label: "Weight", unit: "kg", initial: 75},
	stepRestingHR:   {label: "Resting heart rate", unit: "bpm", initial: 65},
	stepIncome:      {label: "Annual income", unit: "$", initial: 75000},
	stepLiquid:      {label: "Liquid assets", unit: "$", initial: 20000},
	stepIlliquid:    {label: "Illiquid assets", unit: "$", initial: 130000},
	stepLiabilities: {label: "Liabilities", unit: "$", initial: 0},
}

// Selection options. Labels go into the domain as-is; the estimators
// normalize case and whitespace themselves.
var (
	activityOptions  = []string{"Sedentary", "Mildly Active", "Moderately Active", "Athlete"}
	housingOptions   = []string{"Rent", "Own"}
	conditionOptions = []string{"Hypertension", "Diabetes", "Smoker", "Obesity", "Heart-Disease", "Anxiety-Depression"}
)

func newInputs() map[int]textinput.Model {
	inputs := make(map[int]textinput.Model, len(numericSpecs))
	for step, spec := range numericSpecs {
		ti := textinput.New()
		ti.Placeholder = strconv.FormatFloat(spec.initial, 'f', -1, 64)
		ti.CharLimit = 12
		ti.Width = 20
		inputs[step] = ti
	}
	return inputs
}

func isNumericStep(step int) bool {
	_, ok := numericSpecs[step]
	return ok
}

// parseNumeric reads the step's input; an empty field falls back to the
// placeholder default.
func parseNumeric(step int, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return numericSpecs[step].initial, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

func stepTitle(step int) string {
	if spec, ok := numericSpecs[step]; ok {
		return fmt.Sprintf("%s (%s)", spec.label, spec.unit)
	}
	switch step {
	case stepActivity:
		return "Activity level"
	case stepConditions:
		return "Health conditions"
	case stepHousing:
		return "Housing status"
	default:
		return ""
	}
}
