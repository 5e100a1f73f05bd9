package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file (YAML) and validates every scenario in it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if prev, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[scenario.Name] = i
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if _, err := domain.ParseGranularity(string(scenario.Granularity)); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	if err := ValidateParameters(scenario.InvestmentParameters); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:                 "Aporte mensal",
				InvestmentParameters: domain.DefaultParameters(),
			},
			{
				Name: "Longo prazo",
				InvestmentParameters: domain.InvestmentParameters{
					Principal:            1000,
					MonthlyContribution:  1000,
					AnnualRatePercent:    8,
					Years:                20,
					CompoundingFrequency: domain.Monthly,
				},
			},
			{
				Name: "Sem aportes",
				InvestmentParameters: domain.InvestmentParameters{
					Principal:            5000,
					AnnualRatePercent:    12,
					Years:                5,
					CompoundingFrequency: domain.Monthly,
				},
				Granularity: domain.GranularityMonthly,
			},
		},
	}
}

// SaveConfiguration writes a scenario file as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
