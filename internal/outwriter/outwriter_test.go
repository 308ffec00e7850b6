package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/gitroast/core/algo"
	"github.com/huangsam/gitroast/internal/contract"
	"github.com/huangsam/gitroast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sampleResult(explain bool) schema.RoastResult {
	breakdown := algo.RateWithBreakdown("fix bug!!!")
	verdict := algo.Describe(breakdown.Rating)
	result := schema.RoastResult{
		Ref:     "HEAD",
		Message: "fix bug!!!",
		Rating:  breakdown.Rating,
		Band:    verdict.Band,
		Verdict: verdict.Text,
	}
	if explain {
		result.Breakdown = &breakdown
	}
	return result
}

func sampleCommits() []schema.RatedCommit {
	return []schema.RatedCommit{
		{Hash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Subject: "WOW!!! best feature ever", Rating: 9},
		{Hash: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Subject: "fix bug!!!", Rating: 4},
	}
}

func TestWriteRoastText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(false), cfg))

	expected := strings.Join([]string{
		"Commit HEAD:",
		frameLine,
		"fix bug!!!",
		frameLine,
		"Git Roast Rating: 4/10",
		algo.Describe(4).Text,
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWriteRoastTextExplain(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(true), cfg))

	out := buf.String()
	assert.Contains(t, out, "Git Roast Rating: 4/10")
	assert.Contains(t, strings.ToUpper(out), "SIGNAL")
	assert.Contains(t, out, "exclaim")
	assert.Contains(t, out, "+4.50")
	assert.Contains(t, out, "keyword")
	assert.Contains(t, out, "+4.25")
	assert.NotContains(t, out, "emoji", "zero signals are omitted")
}

func TestWriteRoastJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.JSONOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(false), cfg))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "HEAD", got["ref"])
	assert.Equal(t, "fix bug!!!", got["message"])
	assert.Equal(t, float64(4), got["rating"])
	assert.Equal(t, "meh", got["band"])
	assert.NotContains(t, got, "breakdown")
}

func TestWriteRoastJSONExplain(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.JSONOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(true), cfg))

	var got schema.RoastResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotNil(t, got.Breakdown)
	assert.InDelta(t, 4.25, got.Breakdown.Raw, 1e-9)
	assert.InDelta(t, 1.5, got.Breakdown.Signals[schema.SignalKeyword], 1e-9)
}

func TestWriteRoastYAML(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.YAMLOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(false), cfg))

	var got schema.RoastResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "HEAD", got.Ref)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, schema.MehBand, got.Band)
	assert.Contains(t, buf.String(), "rating: 4")
}

func TestWriteRoastCSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.CSVOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(false), cfg))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ref", "rating", "band", "verdict", "message"}, records[0])
	assert.Equal(t, "HEAD", records[1][0])
	assert.Equal(t, "4", records[1][1])
	assert.Equal(t, "fix bug!!!", records[1][4])
}

func TestWriteRoastCSVExplain(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.CSVOut}
	require.NoError(t, WriteRoastResult(&buf, sampleResult(true), cfg))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[0], 6+len(schema.AllSignalKeys))
	assert.Equal(t, "raw", records[0][5])
	assert.Equal(t, "4.25", records[1][5])
}

func TestWriteTopBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTopBanner(&buf, &contract.Config{Output: schema.TextOut}))
	assert.Equal(t, "Roasting top commits...\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTopBanner(&buf, &contract.Config{Output: schema.JSONOut}))
	assert.Empty(t, buf.String())
}

func TestWriteTopTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Limit: 10, Width: 120}
	require.NoError(t, WriteTopCommits(&buf, sampleCommits(), cfg))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\nTop 10 Roast Commits:\n"))
	assert.Contains(t, out, "bbbbbbb")
	assert.NotContains(t, out, "bbbbbbbb", "hashes are abbreviated")
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "WOW!!! best feature ever")
	assert.Contains(t, out, "rollercoaster")
	assert.Less(t, strings.Index(out, "bbbbbbb"), strings.Index(out, "aaaaaaa"))
}

func TestWriteTopTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Limit: 10}
	require.NoError(t, WriteTopCommits(&buf, nil, cfg))
	assert.Equal(t, "\nTop 10 Roast Commits:\nNo commits to roast.\n", buf.String())
}

func TestWriteTopJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.JSONOut, Limit: 10}
	require.NoError(t, WriteTopCommits(&buf, sampleCommits(), cfg))

	var got []schema.RankedCommit
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, schema.RollercoasterBand, got[0].Band)
	assert.Equal(t, 2, got[1].Rank)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", got[1].Hash)
}

func TestWriteTopYAML(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.YAMLOut, Limit: 10}
	require.NoError(t, WriteTopCommits(&buf, sampleCommits(), cfg))

	var got []schema.RankedCommit
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].Rating)
	assert.Equal(t, "fix bug!!!", got[1].Subject)
}

func TestWriteTopCSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.CSVOut, Limit: 10}
	require.NoError(t, WriteTopCommits(&buf, sampleCommits(), cfg))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"rank", "rating", "hash", "subject", "band"}, records[0])
	assert.Equal(t, []string{"1", "9", sampleCommits()[0].Hash, "WOW!!! best feature ever", "rollercoaster"}, records[1])
}

func TestGetMaxSubjectWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow terminal", 40, 15},
		{"regular terminal", 100, 55},
		{"wide terminal", 300, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxSubjectWidth(&contract.Config{Width: tt.width}))
		})
	}
}
