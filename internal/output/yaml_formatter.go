package output

import (
	"bytes"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML with two-space indentation.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return marshalYAML(report)
}

// FormatAll emits a YAML sequence.
func (y YAMLFormatter) FormatAll(reports []*domain.Report) ([]byte, error) {
	if reports == nil {
		reports = []*domain.Report{}
	}
	return marshalYAML(reports)
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
