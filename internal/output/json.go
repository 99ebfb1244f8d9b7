package output

import (
	"encoding/json"

	"github.com/DougieWougie/TaxCalculator/internal/domain"
)

// JSONFormatter renders the result as indented JSON, suitable for
// piping into other tooling.
type JSONFormatter struct{}

// Name returns the formatter name.
func (jf *JSONFormatter) Name() string { return "json" }

// Format marshals the full result.
func (jf *JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
