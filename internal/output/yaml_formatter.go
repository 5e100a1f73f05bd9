package output

import (
	"bytes"

	"github.com/rpgo/compound-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report envelope as YAML, in the same shape scenario files use.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(results)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
