package output

import (
	"encoding/json"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// JSONFormatter serializes the report envelope as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	data, err := json.MarshalIndent(NewReport(results), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
