package artifacts

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/pkg/config"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

// Paths locates the four artifact files.
type Paths struct {
	ModelYoung  string
	ModelRest   string
	ScalerYoung string
	ScalerRest  string
}

// PathsFromConfig returns the artifact paths from configuration.
func PathsFromConfig(cfg *config.ArtifactsConfig) Paths {
	return Paths{
		ModelYoung:  cfg.ModelYoungPath,
		ModelRest:   cfg.ModelRestPath,
		ScalerYoung: cfg.ScalerYoungPath,
		ScalerRest:  cfg.ScalerRestPath,
	}
}

// LoadBundleSet reads and validates all four artifacts. The first failure is
// returned as an ARTIFACT error naming the artifact and its path.
func LoadBundleSet(paths Paths) (*BundleSet, error) {
	young, err := loadBundle(entities.ModelGroupYoung, paths.ModelYoung, paths.ScalerYoung)
	if err != nil {
		return nil, err
	}
	rest, err := loadBundle(entities.ModelGroupRest, paths.ModelRest, paths.ScalerRest)
	if err != nil {
		return nil, err
	}
	return NewBundleSet(young, rest), nil
}

func loadBundle(group entities.ModelGroup, modelPath, scalerPath string) (*Bundle, error) {
	model, err := LoadRegressor(modelPath)
	if err != nil {
		return nil, apperrors.NewArtifactError(fmt.Sprintf("%s model (%s)", group, modelPath), err)
	}
	scaler, err := LoadScaler(scalerPath)
	if err != nil {
		return nil, apperrors.NewArtifactError(fmt.Sprintf("%s scaler (%s)", group, scalerPath), err)
	}
	return NewBundle(group, scaler, model), nil
}

// LoadScaler reads a scaler artifact.
func LoadScaler(path string) (*Scaler, error) {
	var f scalerFile
	if err := readJSON(path, &f); err != nil {
		return nil, err
	}
	return newScalerFromFile(f)
}

// LoadRegressor reads a model artifact.
func LoadRegressor(path string) (Regressor, error) {
	var f modelFile
	if err := readJSON(path, &f); err != nil {
		return nil, err
	}
	return newRegressorFromFile(f)
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact file: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse artifact file: %w", err)
	}
	return nil
}
