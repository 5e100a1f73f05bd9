package domain

// Scenario is a named parameter set from a scenario file.
type Scenario struct {
	Name                 string      `yaml:"name" json:"name"`
	InvestmentParameters `yaml:",inline"`
	Granularity          Granularity `yaml:"granularity,omitempty" json:"granularity,omitempty"`
}

// Configuration is the shape of a scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
