package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvidales/agelens/internal/domain"
	"github.com/nvidales/agelens/internal/usecase"
)

type screen int

const (
	screenForm screen = iota
	screenResults
)

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	step int

	inputs map[int]textinput.Model
	vals   map[int]float64

	activityIdx int
	housingIdx  int
	condCursor  int
	condChecked map[int]bool

	result *domain.Assessment
	toast  string
	width  int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		theme:       DefaultTheme(),
		deps:        deps,
		scr:         screenForm,
		inputs:      newInputs(),
		vals:        map[int]float64{},
		condChecked: map[int]bool{},
	}
	m.focusStep()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenResults {
			return m.updateResults(msg)
		}
		return m.updateForm(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.step == 0 {
			return m, tea.Quit
		}
		m.toast = ""
		m.step--
		m.focusStep()
		return m, nil

	case "enter":
		return m.commitStep()

	case "up", "k":
		m.moveCursor(-1)
		if !isNumericStep(m.step) {
			return m, nil
		}

	case "down", "j":
		m.moveCursor(1)
		if !isNumericStep(m.step) {
			return m, nil
		}

	case " ":
		if m.step == stepConditions {
			m.condChecked[m.condCursor] = !m.condChecked[m.condCursor]
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		fresh := newModel(m.deps)
		fresh.width = m.width
		return fresh, nil
	}
	return m, nil
}

// updateFocusedInput forwards remaining messages to the active text input.
func (m model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scr != screenForm || !isNumericStep(m.step) {
		return m, nil
	}
	ti := m.inputs[m.step]
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	m.inputs[m.step] = ti
	return m, cmd
}

func (m *model) moveCursor(delta int) {
	switch m.step {
	case stepActivity:
		m.activityIdx = wrapIndex(m.activityIdx+delta, len(activityOptions))
	case stepHousing:
		m.housingIdx = wrapIndex(m.housingIdx+delta, len(housingOptions))
	case stepConditions:
		m.condCursor = wrapIndex(m.condCursor+delta, len(conditionOptions))
	}
}

func (m model) commitStep() (tea.Model, tea.Cmd) {
	if isNumericStep(m.step) {
		v, err := parseNumeric(m.step, m.inputs[m.step].Value())
		if err != nil {
			m.toast = err.Error()
			return m, nil
		}
		m.vals[m.step] = v
	}
	m.toast = ""

	if m.step < stepCount-1 {
		m.step++
		m.focusStep()
		return m, nil
	}

	a := usecase.Assess(m.personProfile(), m.financialProfile())
	m.result = &a
	m.scr = screenResults

	if m.deps.Logger != nil {
		m.deps.Logger.Info("assessment.computed",
			"bio_age", a.BiologicalAge,
			"fin_age", a.FinancialAge,
			"ratio", a.Ratio,
		)
	}
	return m, nil
}

func (m *model) focusStep() {
	for step, ti := range m.inputs {
		if step == m.step {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[step] = ti
	}
}

func (m model) personProfile() domain.PersonProfile {
	var conditions []string
	for i, opt := range conditionOptions {
		if m.condChecked[i] {
			conditions = append(conditions, opt)
		}
	}
	return domain.PersonProfile{
		ChronologicalAge: m.vals[stepChronAge],
		HeightCM:         m.vals[stepHeight],
		WeightKG:         m.vals[stepWeight],
		RestingHR:        m.vals[stepRestingHR],
		Activity:         domain.ActivityLevel(activityOptions[m.activityIdx]),
		Conditions:       conditions,
	}
}

func (m model) financialProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		AnnualIncome:   m.vals[stepIncome],
		LiquidAssets:   m.vals[stepLiquid],
		IlliquidAssets: m.vals[stepIlliquid],
		Liabilities:    m.vals[stepLiabilities],
		Housing:        domain.HousingStatus(housingOptions[m.housingIdx]),
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("agelens") + "\n" +
		m.theme.Subtitle.Render("Lower biological age = good. Higher financial age = good. The ratio tells you where you stand.") + "\n"

	switch m.scr {
	case screenForm:
		return wrap.Render(header + "\n" + m.viewForm())
	case screenResults:
		return wrap.Render(header + "\n" + renderResults(m.theme, *m.result, m.width))
	default:
		return wrap.Render(header + "\nunknown state")
	}
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Step %d/%d", m.step+1, stepCount)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Label.Render(stepTitle(m.step)))
	b.WriteString("\n\n")

	switch {
	case isNumericStep(m.step):
		b.WriteString(m.inputs[m.step].View())
	case m.step == stepActivity:
		b.WriteString(m.renderOptions(activityOptions, m.activityIdx, nil))
	case m.step == stepHousing:
		b.WriteString(m.renderOptions(housingOptions, m.housingIdx, nil))
	case m.step == stepConditions:
		b.WriteString(m.renderOptions(conditionOptions, m.condCursor, m.condChecked))
	}

	card := m.theme.Card.Render(b.String())

	help := "enter next • esc back"
	if m.step == stepConditions {
		help = "space toggle • " + help
	}
	if !isNumericStep(m.step) {
		help = "↑/↓ select • " + help
	}

	out := card + "\n" + m.theme.Help.Render(help)
	if m.toast != "" {
		out += "\n" + m.theme.Bad.Render(m.toast)
	}
	return out
}

// renderOptions draws a cursor list; checked is nil for single-choice steps.
func (m model) renderOptions(options []string, cursor int, checked map[int]bool) string {
	var b strings.Builder
	for i, opt := range options {
		prefix := "  "
		if i == cursor {
			prefix = m.theme.Cursor.Render("> ")
		}
		line := opt
		if checked != nil {
			mark := "[ ]"
			if checked[i] {
				mark = "[x]"
			}
			line = mark + " " + opt
		}
		b.WriteString(prefix + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
