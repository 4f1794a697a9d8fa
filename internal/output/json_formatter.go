package output

import (
	"encoding/json"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// FormatAll emits a JSON array.
func (j JSONFormatter) FormatAll(reports []*domain.Report) ([]byte, error) {
	if reports == nil {
		reports = []*domain.Report{}
	}
	return json.MarshalIndent(reports, "", "  ")
}
