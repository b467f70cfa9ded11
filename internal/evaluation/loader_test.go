package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGoldenCases_ValidFile(t *testing.T) {
	path := writeTempFile(t, `[
		{"id": "c1", "input": {"Age": 30}, "expected_premium": 13500, "expected_group": "rest"},
		{"id": "c2", "input": {"Age": "22"}, "expected_premium": 7414, "tolerance": 5}
	]`)

	cases, err := LoadGoldenCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "c1", cases[0].ID)
	assert.Equal(t, entities.ModelGroupRest, cases[0].ExpectedGroup)
	assert.Equal(t, 30.0, cases[0].Input["Age"])
	assert.Equal(t, 5.0, cases[1].Tolerance)
	assert.NoError(t, ValidateGoldenCases(cases))
}

func TestLoadGoldenCases_Errors(t *testing.T) {
	_, err := LoadGoldenCases("/nonexistent/path.json")
	assert.Error(t, err)

	_, err = LoadGoldenCases(writeTempFile(t, `not valid json`))
	assert.Error(t, err)
}

func TestLoadGoldenCases_ShippedFile(t *testing.T) {
	cases, err := LoadGoldenCases("../../config/golden_cases.json")
	require.NoError(t, err)
	assert.NotEmpty(t, cases)
	assert.NoError(t, ValidateGoldenCases(cases))
}

func TestValidateGoldenCases(t *testing.T) {
	input := entities.RawRecord{"Age": 30}

	tests := []struct {
		name    string
		cases   []GoldenCase
		wantErr string
	}{
		{"missing id", []GoldenCase{{Input: input}}, "missing id"},
		{"duplicate id", []GoldenCase{{ID: "a", Input: input}, {ID: "a", Input: input}}, "duplicate id"},
		{"missing input", []GoldenCase{{ID: "a"}}, "missing input"},
		{"negative premium", []GoldenCase{{ID: "a", Input: input, ExpectedPremium: -1}}, "must not be negative"},
		{"negative tolerance", []GoldenCase{{ID: "a", Input: input, Tolerance: -1}}, "tolerance"},
		{"bad group", []GoldenCase{{ID: "a", Input: input, ExpectedGroup: "senior"}}, "invalid expected_group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoldenCases(tt.cases)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
