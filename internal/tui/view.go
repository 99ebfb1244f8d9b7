package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DougieWougie/TaxCalculator/internal/output"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("UK Take-Home Pay Calculator"))
	b.WriteString("\n")

	form := m.renderForm()
	results := m.renderResults()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, " ", results))

	b.WriteString(helpStyle.Render("\ntab/↑↓ move · ←→ change region · esc quit"))
	return b.String()
}

func (m Model) renderForm() string {
	var rows []string
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		var value string
		if i == fieldRegion {
			region := m.result.Region.DisplayName()
			if m.focus == fieldRegion {
				value = accentStyle.Render("◀ " + region + " ▶")
			} else {
				value = valueStyle.Render(region)
			}
		} else {
			value = m.inputs[i].View()
		}
		rows = append(rows, label+value)
	}

	rows = append(rows, "", labelStyle.Render("Salary")+m.salarySlider.Render())
	if !m.inputOK {
		rows = append(rows, errorStyle.Render("amounts must be non-negative numbers"))
	}

	return focusedPanelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderResults() string {
	r := m.result
	line := func(label string, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	rows := []string{
		line("Net Annual", output.FormatCurrency(r.NetIncome)),
		line("Net Monthly", output.FormatCurrency(r.MonthlyNet)),
		"",
		line("Income Tax", output.FormatCurrency(r.TotalTax)),
		line("National Insurance", output.FormatCurrency(r.NationalInsurance)),
		line("Personal Allowance", output.FormatCurrency(r.PersonalAllowance)),
		line("Effective Rate", output.FormatPercentage(r.EffectiveTaxRate)),
		line("Marginal Rate", output.FormatPercentage(r.MarginalTaxRate)),
	}

	if len(r.CombinedTaxBands) > 0 {
		rows = append(rows, "", accentStyle.Render("Tax Bands"))
		for _, band := range r.CombinedTaxBands {
			rows = append(rows, bandStyle.Render(
				band.Band+"  "+output.FormatCurrency(band.Taxable)+" @ "+output.FormatPercentage(band.Rate)))
		}
	}

	if r.TaxCodeUsed.Raw != "" && !r.TaxCodeUsed.IsValid {
		rows = append(rows, "", errorStyle.Render("tax code invalid, standard rules applied"))
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}
