package output

import (
	"testing"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeReportSelectsHighestScore(t *testing.T) {
	rec := AnalyzeReport(buildTestReport(t, scenarioInstant))
	assert.Equal(t, 3, rec.Palace)
	assert.Equal(t, domain.East, rec.Direction)
	require.NotNil(t, rec.Gate)
	assert.Equal(t, domain.RestGate, *rec.Gate)
	assert.Equal(t, 2, rec.Score)
	assert.Equal(t, "0.44", rec.AuspiciousShare.String())
	assert.Equal(t, domain.Earth, rec.DominantElement)
}

func TestAnalyzeReportTieBreaks(t *testing.T) {
	rest, open := domain.RestGate, domain.OpenGate
	chart := &domain.QiMenChart{
		DutyChiefPalace: 6,
		Configurations: map[int]domain.QiMenConfiguration{
			2: {PalaceNumber: 2, Gate: &rest, Score: 1},
			5: {PalaceNumber: 5, Score: 3},
			6: {PalaceNumber: 6, Gate: &open, Score: 1},
			9: {PalaceNumber: 9, Score: -1},
		},
	}
	rec := AnalyzeReport(&domain.Report{QiMen: chart})
	assert.Equal(t, 6, rec.Palace, "duty chief wins ties and the center is never chosen")

	chart.DutyChiefPalace = 9
	rec = AnalyzeReport(&domain.Report{QiMen: chart})
	assert.Equal(t, 2, rec.Palace, "lowest number wins remaining ties")
}

func TestAnalyzeReportEmpty(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeReport(nil))
	assert.Equal(t, Recommendation{}, AnalyzeReport(&domain.Report{}))
}

func TestGenerateNotes(t *testing.T) {
	notes := GenerateNotes(buildTestReport(t, scenarioInstant))
	assert.Len(t, notes, len(DefaultNotes)+2)
	assert.Contains(t, notes, "Civil days reckoned in UTC")
	assert.Contains(t, notes, "Qi Men chart driven by the hour pillar (時家)")
	assert.Equal(t, DefaultNotes, GenerateNotes(nil))
}
