package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/healthpremium/internal/domain/entities"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

func testdataPaths() Paths {
	return Paths{
		ModelYoung:  filepath.Join("testdata", "model_young.json"),
		ModelRest:   filepath.Join("testdata", "model_rest.json"),
		ScalerYoung: filepath.Join("testdata", "scaler_with_cols_young.json"),
		ScalerRest:  filepath.Join("testdata", "scaler_with_cols_rest.json"),
	}
}

func TestLoadBundleSet_Testdata(t *testing.T) {
	set, err := LoadBundleSet(testdataPaths())
	require.NoError(t, err)

	young, err := set.Bundle(entities.ModelGroupYoung)
	require.NoError(t, err)
	assert.Equal(t, ModelLinear, young.Info().ModelKind)
	assert.Equal(t, ScalerMinMax, young.Info().ScalerKind)

	rest, err := set.Bundle(entities.ModelGroupRest)
	require.NoError(t, err)
	assert.Equal(t, ModelGBTree, rest.Info().ModelKind)
	assert.Equal(t, ScalerStandard, rest.Info().ScalerKind)

	assert.Empty(t, set.CheckSchema(entities.FeatureColumns[:]))
}

func TestLoadBundleSet_MissingFileNamesArtifact(t *testing.T) {
	paths := testdataPaths()
	paths.ScalerRest = filepath.Join(t.TempDir(), "scalar_with_cols_rest.json")

	_, err := LoadBundleSet(paths)
	require.Error(t, err)

	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeArtifact))
	assert.Contains(t, err.Error(), "rest scaler")
	assert.Contains(t, err.Error(), paths.ScalerRest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBundleSet_CorruptModel(t *testing.T) {
	paths := testdataPaths()
	paths.ModelYoung = writeTempFile(t, "model_young.json", `{"kind": "linear", "feature_names": [`)

	_, err := LoadBundleSet(paths)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeArtifact))
	assert.Contains(t, err.Error(), "young model")
}

func TestLoadBundleSet_InvalidModelContent(t *testing.T) {
	paths := testdataPaths()
	paths.ModelRest = writeTempFile(t, "model_rest.json", `{"kind": "linear", "feature_names": ["age"], "coefficients": []}`)

	_, err := LoadBundleSet(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rest model")
	assert.Contains(t, err.Error(), "0 coefficients for 1 features")
}

func TestLoadScaler_DefaultsToMinMax(t *testing.T) {
	path := writeTempFile(t, "scaler.json", `{"cols_to_scale": ["age"], "data_min": [18], "data_max": [68]}`)

	s, err := LoadScaler(path)
	require.NoError(t, err)
	assert.Equal(t, ScalerMinMax, s.Kind())
	assert.Equal(t, []string{"age"}, s.Columns())
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
