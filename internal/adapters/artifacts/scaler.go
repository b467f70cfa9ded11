package artifacts

import (
	"fmt"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

const (
	ScalerMinMax   = "minmax"
	ScalerStandard = "standard"
)

// scalerFile is the on-disk form of a fitted scaler and the columns it applies to.
type scalerFile struct {
	Kind         string    `json:"kind"`
	ColsToScale  []string  `json:"cols_to_scale"`
	DataMin      []float64 `json:"data_min"`
	DataMax      []float64 `json:"data_max"`
	FeatureRange []float64 `json:"feature_range"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// Scaler applies an affine per-column transform y = x*mul + add to a fixed
// subset of columns. Every other column passes through untouched.
type Scaler struct {
	kind    string
	columns []string
	mul     []float64
	add     []float64
}

// NewMinMaxScaler builds a scaler mapping [dataMin, dataMax] onto [lo, hi].
// A zero data range is treated as 1.
func NewMinMaxScaler(columns []string, dataMin, dataMax []float64, lo, hi float64) (*Scaler, error) {
	if err := checkLengths(columns, dataMin, dataMax); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, fmt.Errorf("invalid feature range [%g, %g]", lo, hi)
	}

	s := &Scaler{kind: ScalerMinMax, columns: append([]string(nil), columns...)}
	for i := range columns {
		span := dataMax[i] - dataMin[i]
		if span == 0 {
			span = 1
		}
		scale := (hi - lo) / span
		s.mul = append(s.mul, scale)
		s.add = append(s.add, lo-dataMin[i]*scale)
	}
	return s, nil
}

// NewStandardScaler builds a scaler computing (x - mean) / scale.
// A zero scale is treated as 1.
func NewStandardScaler(columns []string, mean, scale []float64) (*Scaler, error) {
	if err := checkLengths(columns, mean, scale); err != nil {
		return nil, err
	}

	s := &Scaler{kind: ScalerStandard, columns: append([]string(nil), columns...)}
	for i := range columns {
		sd := scale[i]
		if sd == 0 {
			sd = 1
		}
		s.mul = append(s.mul, 1/sd)
		s.add = append(s.add, -mean[i]/sd)
	}
	return s, nil
}

func newScalerFromFile(f scalerFile) (*Scaler, error) {
	switch f.Kind {
	case ScalerMinMax, "":
		lo, hi := 0.0, 1.0
		if len(f.FeatureRange) != 0 {
			if len(f.FeatureRange) != 2 {
				return nil, fmt.Errorf("feature_range must have 2 values, got %d", len(f.FeatureRange))
			}
			lo, hi = f.FeatureRange[0], f.FeatureRange[1]
		}
		return NewMinMaxScaler(f.ColsToScale, f.DataMin, f.DataMax, lo, hi)
	case ScalerStandard:
		return NewStandardScaler(f.ColsToScale, f.Mean, f.Scale)
	default:
		return nil, fmt.Errorf("unknown scaler kind %q", f.Kind)
	}
}

func checkLengths(columns []string, a, b []float64) error {
	if len(columns) == 0 {
		return fmt.Errorf("scaler declares no columns")
	}
	if len(a) != len(columns) || len(b) != len(columns) {
		return fmt.Errorf("scaler parameters cover %d/%d values for %d columns", len(a), len(b), len(columns))
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate scaler column %q", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Kind returns "minmax" or "standard".
func (s *Scaler) Kind() string { return s.kind }

// Columns returns the columns this scaler rescales.
func (s *Scaler) Columns() []string { return append([]string(nil), s.columns...) }

// Transform returns a copy of v with the scaler's columns rescaled. A declared
// column missing from v is an error.
func (s *Scaler) Transform(v entities.FeatureVector) (entities.FeatureVector, error) {
	if len(v.Columns) != len(v.Values) {
		return entities.FeatureVector{}, fmt.Errorf("feature vector has %d columns but %d values", len(v.Columns), len(v.Values))
	}

	out := v.Clone()
	for i, col := range s.columns {
		idx := out.Index(col)
		if idx < 0 {
			return entities.FeatureVector{}, fmt.Errorf("column %q expected by scaler is not in the feature vector", col)
		}
		out.Values[idx] = out.Values[idx]*s.mul[i] + s.add[i]
	}
	return out, nil
}
