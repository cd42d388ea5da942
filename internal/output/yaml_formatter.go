package output

import (
	"bytes"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report in the same format configurations are written in.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
