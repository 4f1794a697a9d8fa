package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := buildLogger
	buildLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { buildLogger = orig })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLunarCommand(t *testing.T) {
	out, err := run(t, "lunar", "2025-07-13T16:26:00Z", "--location", "UTC")
	require.NoError(t, err)
	assert.Contains(t, out, "乙巳年 六月十九 (2025-06-19)")
	assert.Contains(t, out, "年 乙巳  月 癸未  日 癸未  時 庚申")
	assert.Contains(t, out, "Cycle 3, year 42 of 60")
}

func TestLunarCommandUsesConfiguredLocation(t *testing.T) {
	// 00:26 on the 14th in Shanghai
	out, err := run(t, "lunar", "2025-07-13T16:26:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "(2025-06-20)")

	out, err = run(t, "lunar", "2025-07-14T00:26", "--format", "json")
	require.NoError(t, err)
	var view map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, float64(20), view["lunar_date"]["day"])
}

func TestLocationAppliesToExplicitOffsets(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "including times with an explicit offset")
	assert.Contains(t, out, "Pass --location UTC")

	shanghai, err := run(t, "qimen", "2025-07-13T16:26:00Z", "-f", "json")
	require.NoError(t, err)
	utc, err := run(t, "qimen", "2025-07-13T16:26:00Z", "-f", "json", "-l", "UTC")
	require.NoError(t, err)

	day := func(out string) float64 {
		var report map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		return report["lunar_date"].(map[string]any)["day"].(float64)
	}
	assert.Equal(t, float64(20), day(shanghai))
	assert.Equal(t, float64(19), day(utc))
}

func TestQiMenCommand(t *testing.T) {
	out, err := run(t, "qimen", "2025-07-13T16:26:00Z", "-l", "UTC", "-f", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[4], ",4,Southeast,開門,天芮,天禽,騰蛇,")
}

func TestQiMenCommandFrame(t *testing.T) {
	out, err := run(t, "qimen", "2025-07-13T16:26:00Z", "-l", "UTC", "-f", "json", "--frame", "day")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	qimen := report["qi_men"].(map[string]any)
	assert.Equal(t, float64(6), qimen["duty_chief_palace"])
	assert.Equal(t, "日家", qimen["time_frame"])
	assert.Nil(t, report["taiyi"])
}

func TestTaiyiCommand(t *testing.T) {
	out, err := run(t, "taiyi", "2024-07-13T15:30:00Z", "-l", "UTC")
	require.NoError(t, err)
	assert.Contains(t, out, "TAIYI SHENSHU")
	assert.Contains(t, out, "Accumulated years: 160 (cycle 2, remainder 16), palace 3")
	assert.Contains(t, out, "Master star: 太乙")
	assert.NotContains(t, out, "QI MEN DUN JIA (")
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, "chart", "2025-07-13T16:26:00Z", "-l", "UTC")
	require.NoError(t, err)
	assert.Contains(t, out, "Yin dun, duty chief in palace 3")
	assert.Contains(t, out, "TAIYI SHENSHU")
}

func TestRangeCommand(t *testing.T) {
	out, err := run(t, "range", "-l", "UTC", "-f", "detailed-csv",
		"--from", "2025-07-13T00:00", "--to", "2025-07-13T22:00", "--step", "2h")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[1], "2025-07-13T00:00:00Z,"))
	assert.True(t, strings.HasPrefix(lines[12], "2025-07-13T22:00:00Z,"))
}

func TestRangeCommandErrors(t *testing.T) {
	_, err := run(t, "range", "--from", "2025-07-13T00:00")
	assert.ErrorContains(t, err, "required flag")

	_, err = run(t, "range", "--from", "2025-07-14", "--to", "2025-07-13")
	assert.ErrorContains(t, err, "before start")

	_, err = run(t, "range", "--from", "soon", "--to", "2025-07-13")
	assert.ErrorContains(t, err, "--from")
}

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "chart", "2025-07-13T16:26:00Z", "-f", "yaml", "-o", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".yaml", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "duty_chief_palace:")
}

func TestConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("location: UTC\nformat: summary\n"), 0644))

	out, err := run(t, "chart", "2025-07-13T16:26:00Z", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2025-07-13T16:26Z  2025-06-19"), out)

	out, err = run(t, "chart", "2025-07-13T16:26:00Z", "--config", path, "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Instant,Palace"))
}

func TestInvalidSettings(t *testing.T) {
	_, err := run(t, "chart", "--format", "pdf")
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	_, err = run(t, "chart", "--location", "Nowhere/Atlantis")
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	_, err = run(t, "chart", "1850-01-01T00:00:00Z")
	assert.ErrorContains(t, err, "invalid instant")

	_, err = run(t, "chart", "not-a-time")
	assert.ErrorContains(t, err, "cannot parse")
}

func TestConfigInitAndFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	loaded, err := config.NewConfigLoader().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hour", loaded.TimeFrame)

	out, err = run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-lite\n")
	assert.Contains(t, out, "yml -> yaml\n")
}
