package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the report in the named format to a timestamped file
// in dir and returns the file names written. "all" writes every built-in format.
func GenerateReport(report *domain.SimulationReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range builtInFormatters {
			name, err := WriteFormattedTo(dir, f, report, Extension(f))
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	name, err := WriteFormattedTo(dir, f, report, Extension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.SimulationConfig, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
