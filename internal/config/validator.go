package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
	money "github.com/rpgo/compound-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is matched (via errors.Is) by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Validation error codes.
const (
	CodeRequired    = "VALIDATION_REQUIRED"
	CodeType        = "VALIDATION_TYPE"
	CodeRange       = "VALIDATION_RANGE"
	CodeUnsupported = "VALIDATION_UNSUPPORTED"
)

// Field names used in validation errors; they match the scenario file keys.
const (
	FieldPrincipal            = "principal"
	FieldMonthlyContribution  = "monthly_contribution"
	FieldAnnualRate           = "annual_rate_percent"
	FieldYears                = "years"
	FieldCompoundingFrequency = "compounding_frequency"
)

// MaxYears bounds the investment horizon.
const MaxYears = 100

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Is makes errors.Is(err, ErrInvalidInput) hold for any field error.
func (e FieldError) Is(target error) bool { return target == ErrInvalidInput }

// ValidationErrors collects every failing field of one input set.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool { return target == ErrInvalidInput }

// Fields returns the field -> message mapping shown next to form inputs.
func (ve ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Field returns the first error recorded for name.
func (ve ValidationErrors) Field(name string) (FieldError, bool) {
	for _, fe := range ve {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

func (ve *ValidationErrors) add(fe *FieldError) {
	if fe != nil {
		*ve = append(*ve, *fe)
	}
}

func (ve ValidationErrors) orNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}

// RawParameters holds the calculator inputs exactly as the user typed them.
type RawParameters struct {
	Principal            string
	MonthlyContribution  string
	AnnualRatePercent    string
	Years                string
	CompoundingFrequency string
}

// RawFromParameters renders typed parameters back into form text.
func RawFromParameters(p domain.InvestmentParameters) RawParameters {
	return RawParameters{
		Principal:            strconv.FormatFloat(p.Principal, 'f', -1, 64),
		MonthlyContribution:  strconv.FormatFloat(p.MonthlyContribution, 'f', -1, 64),
		AnnualRatePercent:    strconv.FormatFloat(p.AnnualRatePercent, 'f', -1, 64),
		Years:                strconv.Itoa(p.Years),
		CompoundingFrequency: strconv.Itoa(int(p.CompoundingFrequency)),
	}
}

// ParseParameters coerces raw input to numbers and range-checks it.
// On failure the returned error is a ValidationErrors listing every bad field.
func ParseParameters(raw RawParameters) (domain.InvestmentParameters, error) {
	var (
		p    domain.InvestmentParameters
		errs ValidationErrors
		fe   *FieldError
	)

	p.Principal, fe = coercePrincipal(raw.Principal)
	errs.add(fe)
	p.MonthlyContribution, fe = coerceContribution(raw.MonthlyContribution)
	errs.add(fe)
	p.AnnualRatePercent, fe = coerceRate(raw.AnnualRatePercent)
	errs.add(fe)
	p.Years, fe = coerceYears(raw.Years)
	errs.add(fe)
	p.CompoundingFrequency, fe = coerceFrequency(raw.CompoundingFrequency)
	errs.add(fe)

	if err := errs.orNil(); err != nil {
		return domain.InvestmentParameters{}, err
	}
	return p, nil
}

// ValidateParameters range-checks already-typed parameters (scenario files, flags).
func ValidateParameters(p domain.InvestmentParameters) error {
	var errs ValidationErrors
	errs.add(checkPrincipal(p.Principal))
	errs.add(checkContribution(p.MonthlyContribution))
	errs.add(checkRate(p.AnnualRatePercent))
	errs.add(checkYears(p.Years))
	errs.add(checkFrequency(p.CompoundingFrequency))
	return errs.orNil()
}

// Per-field validators for interactive forms. Each returns nil or a FieldError.

func ValidatePrincipal(s string) error {
	_, fe := coercePrincipal(s)
	return fieldErr(fe)
}

func ValidateContribution(s string) error {
	_, fe := coerceContribution(s)
	return fieldErr(fe)
}

func ValidateRate(s string) error {
	_, fe := coerceRate(s)
	return fieldErr(fe)
}

func ValidateYears(s string) error {
	_, fe := coerceYears(s)
	return fieldErr(fe)
}

func ValidateFrequency(f domain.CompoundingFrequency) error {
	return fieldErr(checkFrequency(f))
}

func fieldErr(fe *FieldError) error {
	if fe == nil {
		return nil
	}
	return *fe
}

func coercePrincipal(s string) (float64, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return 0, &FieldError{FieldPrincipal, CodeRequired, "principal is required"}
	}
	v, err := parseAmount(s)
	if err != nil {
		return 0, &FieldError{FieldPrincipal, CodeType, fmt.Sprintf("principal %q is not a number", s)}
	}
	return v, checkPrincipal(v)
}

func coerceContribution(s string) (float64, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := parseAmount(s)
	if err != nil {
		return 0, &FieldError{FieldMonthlyContribution, CodeType, fmt.Sprintf("monthly contribution %q is not a number", s)}
	}
	return v, checkContribution(v)
}

func coerceRate(s string) (float64, *FieldError) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if strings.TrimSpace(trimmed) == "" {
		return 0, &FieldError{FieldAnnualRate, CodeRequired, "annual rate is required"}
	}
	v, err := parseAmount(trimmed)
	if err != nil {
		return 0, &FieldError{FieldAnnualRate, CodeType, fmt.Sprintf("annual rate %q is not a number", s)}
	}
	return v, checkRate(v)
}

func coerceYears(s string) (int, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return 0, &FieldError{FieldYears, CodeRequired, "years is required"}
	}
	m, err := money.ParseMoney(s)
	if err != nil {
		return 0, &FieldError{FieldYears, CodeType, fmt.Sprintf("years %q is not a number", s)}
	}
	d := m.Decimal
	if !d.Equal(d.Truncate(0)) {
		return 0, &FieldError{FieldYears, CodeType, "years must be a whole number"}
	}
	if d.GreaterThan(decimal.NewFromInt(MaxYears)) {
		return 0, &FieldError{FieldYears, CodeRange, fmt.Sprintf("years must be between 1 and %d", MaxYears)}
	}
	years := int(d.IntPart())
	return years, checkYears(years)
}

func coerceFrequency(s string) (domain.CompoundingFrequency, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return 0, &FieldError{FieldCompoundingFrequency, CodeRequired, "compounding frequency must be selected"}
	}
	f, err := domain.ParseCompoundingFrequency(s)
	if err != nil {
		return 0, &FieldError{FieldCompoundingFrequency, CodeType, err.Error()}
	}
	return f, checkFrequency(f)
}

func checkPrincipal(v float64) *FieldError {
	if !isFinite(v) {
		return &FieldError{FieldPrincipal, CodeType, "principal must be a finite number"}
	}
	if v <= 0 {
		return &FieldError{FieldPrincipal, CodeRange, "principal must be positive"}
	}
	return nil
}

func checkContribution(v float64) *FieldError {
	if !isFinite(v) {
		return &FieldError{FieldMonthlyContribution, CodeType, "monthly contribution must be a finite number"}
	}
	if v < 0 {
		return &FieldError{FieldMonthlyContribution, CodeRange, "monthly contribution cannot be negative"}
	}
	return nil
}

func checkRate(v float64) *FieldError {
	if !isFinite(v) {
		return &FieldError{FieldAnnualRate, CodeType, "annual rate must be a finite number"}
	}
	if v < 0 {
		return &FieldError{FieldAnnualRate, CodeRange, "annual rate cannot be negative"}
	}
	return nil
}

func checkYears(v int) *FieldError {
	if v < 1 || v > MaxYears {
		return &FieldError{FieldYears, CodeRange, fmt.Sprintf("years must be between 1 and %d", MaxYears)}
	}
	return nil
}

func checkFrequency(f domain.CompoundingFrequency) *FieldError {
	if !f.IsSupported() {
		return &FieldError{FieldCompoundingFrequency, CodeUnsupported,
			fmt.Sprintf("compounding frequency %d is not supported (use 1, 2, 4, 12 or 365)", int(f))}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// parseAmount reads a decimal amount in either plain ("1234.56") or pt-BR ("R$ 1.234,56") notation.
func parseAmount(s string) (float64, error) {
	m, err := money.ParseMoney(s)
	if err != nil {
		return 0, err
	}
	return m.Float64(), nil
}
