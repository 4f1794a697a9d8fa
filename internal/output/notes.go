package output

import (
	"fmt"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// DefaultNotes lists the calculation conventions rendered in detailed outputs.
var DefaultNotes = []string{
	"Solar longitude: low-accuracy solar series with ΔT, about 0.01° over 1900-2100",
	"Lunar months begin on the civil day of the new moon; the leap month is the first without a major term",
	"Yang dun from the winter solstice (270°) to the summer solstice (90°)",
	"The hour stem advances at 23:00 with the next day's stem",
	"Taiyi accumulated years counted from 1864, eight years per palace in a 72-year cycle",
}

// GenerateNotes adds the report's own time zone and frame to the defaults.
func GenerateNotes(report *domain.Report) []string {
	notes := append([]string(nil), DefaultNotes...)
	if report == nil {
		return notes
	}
	notes = append(notes, fmt.Sprintf("Civil days reckoned in %s", report.Instant.Location()))
	if report.QiMen != nil {
		notes = append(notes, fmt.Sprintf("Qi Men chart driven by the %s pillar (%s)", report.QiMen.TimeFrame.English(), report.QiMen.TimeFrame))
	}
	return notes
}
