package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/compound-calculator/internal/domain"
)

// Settings holds the user's preferences.
type Settings struct {
	Output   OutputSettings   `toml:"output"`
	Defaults DefaultsSettings `toml:"defaults"`
}

// OutputSettings picks the default report format and schedule resolution.
type OutputSettings struct {
	Format   string `toml:"format"`
	Schedule string `toml:"schedule"`
}

// DefaultsSettings pre-fills the calculator inputs.
type DefaultsSettings struct {
	Principal            float64 `toml:"principal"`
	MonthlyContribution  float64 `toml:"monthly_contribution"`
	AnnualRatePercent    float64 `toml:"annual_rate_percent"`
	Years                int     `toml:"years"`
	CompoundingFrequency int     `toml:"compounding_frequency"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	p := domain.DefaultParameters()
	return Settings{
		Output: OutputSettings{
			Format:   "console",
			Schedule: string(domain.GranularityAnnual),
		},
		Defaults: DefaultsSettings{
			Principal:            p.Principal,
			MonthlyContribution:  p.MonthlyContribution,
			AnnualRatePercent:    p.AnnualRatePercent,
			Years:                p.Years,
			CompoundingFrequency: int(p.CompoundingFrequency),
		},
	}
}

// Parameters converts the stored defaults into calculator input.
func (s Settings) Parameters() domain.InvestmentParameters {
	return domain.InvestmentParameters{
		Principal:            s.Defaults.Principal,
		MonthlyContribution:  s.Defaults.MonthlyContribution,
		AnnualRatePercent:    s.Defaults.AnnualRatePercent,
		Years:                s.Defaults.Years,
		CompoundingFrequency: domain.CompoundingFrequency(s.Defaults.CompoundingFrequency),
	}
}

// Validate rejects settings that would make the calculator start from bad defaults.
func (s Settings) Validate() error {
	if _, err := domain.ParseGranularity(s.Output.Schedule); err != nil {
		return fmt.Errorf("output.schedule: %w", err)
	}
	if err := ValidateParameters(s.Parameters()); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "compound")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "compound")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path. Keys missing from the file keep their defaults.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return s, nil
}

// SaveSettings writes the settings to the default location.
func SaveSettings(s Settings) error {
	return SaveSettingsTo(SettingsPath(), s)
}

// SaveSettingsTo writes the settings to path, creating its directory.
func SaveSettingsTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing settings file: %w", err)
	}
	return nil
}
