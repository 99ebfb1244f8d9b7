package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DougieWougie/TaxCalculator/internal/calculation"
	"github.com/DougieWougie/TaxCalculator/internal/config"
	"github.com/DougieWougie/TaxCalculator/internal/domain"
	"github.com/DougieWougie/TaxCalculator/internal/tui"
)

func main() {
	rules := domain.DefaultTaxYearRules()
	if len(os.Args) > 1 {
		parser := config.NewInputParser()
		loaded, err := parser.LoadRules(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading rules file: %v\n", err)
			os.Exit(1)
		}
		rules = loaded
	}

	model := tui.NewModel(calculation.NewEngineWithRules(rules))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
