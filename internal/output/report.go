package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"gopkg.in/yaml.v3"
)

// reportSeparator divides concatenated text reports.
const reportSeparator = "\n"

// Render formats one report with the named formatter and writes it to w.
func Render(w io.Writer, name string, report *domain.Report) error {
	f, err := LookupFormatter(name)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// RenderAll formats a series of reports as one document and writes it to w.
func RenderAll(w io.Writer, name string, reports []*domain.Report) error {
	f, err := LookupFormatter(name)
	if err != nil {
		return err
	}
	data, err := FormatAll(f, reports)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// FormatAll uses the formatter's batch form when it has one and otherwise
// concatenates the single-report output.
func FormatAll(f Formatter, reports []*domain.Report) ([]byte, error) {
	if bf, ok := f.(BatchFormatter); ok {
		return bf.FormatAll(reports)
	}
	var buf bytes.Buffer
	for i, r := range reports {
		if i > 0 {
			buf.WriteString(reportSeparator)
		}
		data, err := f.Format(r)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// GenerateReport writes the reports to a timestamped file in dir and returns its path.
func GenerateReport(reports []*domain.Report, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, reports, dir, Extension(f))
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
