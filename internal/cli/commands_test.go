package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/greenvest/internal/models"
)

const testConfig = `
[analytics]
seed = 42

[sources]
prices = "sample"

[cache]
refresh_schedule = ""
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greenvest.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFundsCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := runCLI(t, "--format", "json", "funds")
		require.NoError(t, err)

		var funds []models.Fund
		require.NoError(t, json.Unmarshal([]byte(out), &funds))
		assert.Len(t, funds, 6)
		assert.Equal(t, "wind-energy", funds[0].ID)
	})

	t.Run("table", func(t *testing.T) {
		out, err := runCLI(t, "funds")
		require.NoError(t, err)
		assert.Contains(t, out, "wind-energy")
		assert.Contains(t, out, "$24,050.75")
		assert.Contains(t, out, "Symbol")
	})
}

func TestInsightsCommand(t *testing.T) {
	out, err := runCLI(t, "insights", "solar-power")
	require.NoError(t, err)
	assert.Contains(t, out, "Insights: solar-power")
	assert.Contains(t, out, "Trend")
	assert.Contains(t, out, "Peer ranking")

	out, err = runCLI(t, "--format", "json", "insights", "solar-power")
	require.NoError(t, err)
	var in models.FundInsights
	require.NoError(t, json.Unmarshal([]byte(out), &in))
	assert.Equal(t, "solar-power", in.FundID)
}

func TestPredictCommand(t *testing.T) {
	out, err := runCLI(t, "--format", "json", "predict", "water-tech")
	require.NoError(t, err)

	var p models.FundPrediction
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "water-tech", p.FundID)
	assert.Contains(t, []models.Action{models.ActionBuy, models.ActionHold, models.ActionSell}, p.Output.RecommendedAction)

	out, err = runCLI(t, "predict", "water-tech")
	require.NoError(t, err)
	assert.Contains(t, out, "Prediction: water-tech")
	assert.Contains(t, out, "Confidence")
}

func TestImpactCommand(t *testing.T) {
	out, err := runCLI(t, "--format", "json", "impact", "recycling")
	require.NoError(t, err)

	var i models.EnvironmentalImpact
	require.NoError(t, json.Unmarshal([]byte(out), &i))
	assert.Equal(t, "recycling", i.FundID)
	assert.LessOrEqual(t, i.RecommendedAllocation, 0.3)
}

func TestRecommendCommand(t *testing.T) {
	out, err := runCLI(t, "--format", "json", "recommend", "wind-energy", "solar-power", "--amount", "1000")
	require.NoError(t, err)

	var rec models.PortfolioRecommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Len(t, rec.OptimalAllocation, 2)
	require.NotNil(t, rec.TotalAmount)
	assert.True(t, rec.TotalAmount.Equal(decimal.NewFromInt(1000)), "total %s", rec.TotalAmount)

	sum := 0.0
	for _, a := range rec.OptimalAllocation {
		sum += a.Allocation
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	out, err = runCLI(t, "recommend", "wind-energy", "solar-power", "--amount", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Portfolio Recommendation")
	assert.Contains(t, out, "$1000.00")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "--format", "json", "version")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown fund", []string{"predict", "coal-power"}},
		{"missing argument", []string{"insights"}},
		{"bad amount", []string{"recommend", "wind-energy", "--amount", "lots"}},
		{"unknown format", []string{"--format", "yaml", "funds"}},
		{"duplicate fund", []string{"recommend", "wind-energy", "wind-energy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
