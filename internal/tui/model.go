package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/DougieWougie/TaxCalculator/internal/calculation"
	"github.com/DougieWougie/TaxCalculator/internal/domain"
	"github.com/DougieWougie/TaxCalculator/internal/tui/components"
)

// Field indices in focus order. The region selector sits between the
// amount fields and the tax codes.
const (
	fieldSalary = iota
	fieldSacrifice
	fieldPension
	fieldSecondIncome
	fieldRegion
	fieldTaxCode
	fieldSecondTaxCode
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Gross Salary",
	"Salary Sacrifice",
	"Pension Contribution",
	"Pension Income",
	"Region",
	"Tax Code",
	"Pension Tax Code",
}

// Model is the interactive calculator: a form on the left, the live
// result on the right, recalculated on every keystroke.
type Model struct {
	engine *calculation.Engine

	inputs    [fieldCount]textinput.Model
	regionIdx int
	focus     int

	salarySlider *components.Slider

	result  domain.CalculationResult
	inputOK bool

	width  int
	height int
}

// NewModel creates the TUI model around a calculation engine.
func NewModel(engine *calculation.Engine) Model {
	m := Model{
		engine:       engine,
		salarySlider: components.NewSlider(0, 200000),
	}
	for i := range m.inputs {
		if i == fieldRegion {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 14
		m.inputs[i] = ti
	}
	m.inputs[fieldSalary].SetValue("30000")
	m.inputs[fieldSalary].Focus()
	m.recalculate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentInput builds a CalculationInput from the form fields. Blank
// or malformed amounts read as zero; the engine treats malformed tax
// codes as absent on its own.
func (m *Model) currentInput() domain.CalculationInput {
	m.inputOK = true
	return domain.CalculationInput{
		GrossSalary:         m.amountAt(fieldSalary),
		SalarySacrifice:     m.amountAt(fieldSacrifice),
		PensionContribution: m.amountAt(fieldPension),
		SecondIncome:        m.amountAt(fieldSecondIncome),
		Region:              domain.AllRegions[m.regionIdx],
		TaxCode:             m.inputs[fieldTaxCode].Value(),
		SecondTaxCode:       m.inputs[fieldSecondTaxCode].Value(),
	}
}

func (m *Model) amountAt(field int) decimal.Decimal {
	raw := m.inputs[field].Value()
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		m.inputOK = false
		return decimal.Zero
	}
	return value
}

func (m *Model) recalculate() {
	input := m.currentInput()
	m.result = m.engine.Calculate(input)
	salary, _ := input.GrossSalary.Float64()
	m.salarySlider.SetValue(salary)
}
