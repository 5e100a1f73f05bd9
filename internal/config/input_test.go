package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeTemp(t, "scenarios:\n"+
		"  - name: \"Reserva\"\n"+
		"    principal: 1000\n"+
		"    monthly_contribution: 100\n"+
		"    annual_rate_percent: 5\n"+
		"    years: 10\n"+
		"    compounding_frequency: monthly\n"+
		"  - name: \"CDB\"\n"+
		"    principal: 5000\n"+
		"    annual_rate_percent: 12\n"+
		"    years: 1\n"+
		"    compounding_frequency: 12\n"+
		"    granularity: monthly\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "Reserva", config.Scenarios[0].Name)
	assert.Equal(t, domain.Monthly, config.Scenarios[0].CompoundingFrequency)
	assert.Equal(t, domain.GranularityMonthly, config.Scenarios[1].Granularity)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "scenarios:\n\t- name: broken\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidScenario(t *testing.T) {
	path := writeTemp(t, "scenarios:\n"+
		"  - name: \"Zero\"\n"+
		"    principal: 0\n"+
		"    annual_rate_percent: 5\n"+
		"    years: 10\n"+
		"    compounding_frequency: 3\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "scenario 0 validation failed")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.Fields()
	assert.Contains(t, fields, FieldPrincipal)
	assert.Contains(t, fields, FieldCompoundingFrequency)
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidateConfiguration(&domain.Configuration{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_MissingName(t *testing.T) {
	parser := NewInputParser()
	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{InvestmentParameters: domain.DefaultParameters()},
	}}
	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scenario name is required")
}

func TestValidateConfiguration_DuplicateNames(t *testing.T) {
	parser := NewInputParser()
	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "A", InvestmentParameters: domain.DefaultParameters()},
		{Name: "A", InvestmentParameters: domain.DefaultParameters()},
	}}
	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `name "A" already used by scenario 0`)
}

func TestValidateConfiguration_BadGranularity(t *testing.T) {
	parser := NewInputParser()
	config := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "A", InvestmentParameters: domain.DefaultParameters(), Granularity: "weekly"},
	}}
	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schedule granularity")
}

func TestCreateExampleConfiguration_IsValidAndRoundTrips(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, SaveConfiguration(example, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example, loaded)
}
