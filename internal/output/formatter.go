package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// Formatter renders a scenario comparison. Implementations must not write
// anywhere themselves; callers decide where the bytes go.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name is the canonical format name used on the command line.
	Name() string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// registry maps canonical names and aliases to formatters.
type registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	aliases    map[string]string
}

var formats = newRegistry()

func newRegistry() *registry {
	r := &registry{
		formatters: make(map[string]Formatter),
		aliases:    make(map[string]string),
	}
	r.mustRegister(ConsoleFormatter{}, "text", "txt", "table")
	r.mustRegister(CSVSummarizer{}, "csv-summary")
	r.mustRegister(CSVScheduleExporter{}, "csv-detailed", "schedule")
	r.mustRegister(HTMLFormatter{}, "html-report")
	r.mustRegister(JSONFormatter{}, "json-pretty")
	r.mustRegister(YAMLFormatter{}, "yml")
	return r
}

func (r *registry) register(f Formatter, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := normalize(f.Name())
	if name == "" {
		return fmt.Errorf("formatter has an empty name")
	}
	if r.taken(name) {
		return fmt.Errorf("format %q is already registered", name)
	}
	for _, a := range aliases {
		if a = normalize(a); r.taken(a) || a == name {
			return fmt.Errorf("format alias %q is already registered", a)
		}
	}

	r.formatters[name] = f
	for _, a := range aliases {
		r.aliases[normalize(a)] = name
	}
	return nil
}

func (r *registry) mustRegister(f Formatter, aliases ...string) {
	if err := r.register(f, aliases...); err != nil {
		panic(err)
	}
}

// taken must be called with r.mu held.
func (r *registry) taken(name string) bool {
	_, isFormat := r.formatters[name]
	_, isAlias := r.aliases[name]
	return isFormat || isAlias
}

func (r *registry) resolve(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := normalize(name)
	if canonical, ok := r.aliases[n]; ok {
		return canonical
	}
	return n
}

func (r *registry) lookup(name string) Formatter {
	canonical := r.resolve(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.formatters[canonical]
}

func (r *registry) names(aliases bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	if aliases {
		for k := range r.aliases {
			out = append(out, k)
		}
	} else {
		for k := range r.formatters {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// RegisterFormatter adds f under its Name and the given aliases. Names and
// aliases are case-insensitive and must not collide with existing ones.
func RegisterFormatter(f Formatter, aliases ...string) error {
	return formats.register(f, aliases...)
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter { return formats.lookup(name) }

// NormalizeFormatName lowers name and resolves aliases to the canonical name.
func NormalizeFormatName(name string) string { return formats.resolve(name) }

// AvailableFormatterNames returns the canonical names, sorted.
func AvailableFormatterNames() []string { return formats.names(false) }

// AvailableFormatAliases returns the alias keys, sorted.
func AvailableFormatAliases() []string { return formats.names(true) }

// FileExtension returns the extension used when a format is written to disk.
func FileExtension(format string) string {
	switch n := NormalizeFormatName(format); {
	case n == "console":
		return "txt"
	case strings.Contains(n, "csv"):
		return "csv"
	default:
		return n
	}
}

// WriteFormatted runs f and writes the result to compound_report_<timestamp>.<ext> inside dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := nowFunc().Format("20060102_150405")
	filename := filepath.Join(dir, "compound_report_"+stamp+"."+FileExtension(f.Name()))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
