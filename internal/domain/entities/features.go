package entities

// Column positions of the feature row the trained scalers and models expect.
// FeatureColumns is keyed by these constants, so adding a column without a
// name (or naming a column that has no position) fails to compile.
const (
	ColAge = iota
	ColNumberOfDependants
	ColIncomeLakhs
	ColInsurancePlan
	ColGeneticalRisk
	ColNormalizedRiskScore
	ColGenderMale
	ColRegionNorthwest
	ColRegionSoutheast
	ColRegionSouthwest
	ColMaritalStatusUnmarried
	ColBMIObesity
	ColBMIOverweight
	ColBMIUnderweight
	ColSmokingOccasional
	ColSmokingRegular
	ColEmploymentSalaried
	ColEmploymentSelfEmployed

	NumFeatures
)

// FeatureColumns is the training-time column order.
var FeatureColumns = [NumFeatures]string{
	ColAge:                    "age",
	ColNumberOfDependants:     "number_of_dependants",
	ColIncomeLakhs:            "income_lakhs",
	ColInsurancePlan:          "insurance_plan",
	ColGeneticalRisk:          "genetical_risk",
	ColNormalizedRiskScore:    "normalized_risk_score",
	ColGenderMale:             "gender_Male",
	ColRegionNorthwest:        "region_Northwest",
	ColRegionSoutheast:        "region_Southeast",
	ColRegionSouthwest:        "region_Southwest",
	ColMaritalStatusUnmarried: "marital_status_Unmarried",
	ColBMIObesity:             "bmi_category_Obesity",
	ColBMIOverweight:          "bmi_category_Overweight",
	ColBMIUnderweight:         "bmi_category_Underweight",
	ColSmokingOccasional:      "smoking_status_Occasional",
	ColSmokingRegular:         "smoking_status_Regular",
	ColEmploymentSalaried:     "employment_status_Salaried",
	ColEmploymentSelfEmployed: "employment_status_Self-Employed",
}

// IndicatorColumns are the one-hot columns; everything before ColGenderMale is numeric.
func IndicatorColumns() []string {
	return append([]string(nil), FeatureColumns[ColGenderMale:]...)
}

// FeatureVector is a single named row of model inputs.
type FeatureVector struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

// NewFeatureVector returns an all-zero row in the canonical column order.
func NewFeatureVector() FeatureVector {
	return FeatureVector{
		Columns: append([]string(nil), FeatureColumns[:]...),
		Values:  make([]float64, NumFeatures),
	}
}

// Index returns the position of column, or -1.
func (v FeatureVector) Index(column string) int {
	for i, c := range v.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Get returns the value of column and whether it exists.
func (v FeatureVector) Get(column string) (float64, bool) {
	i := v.Index(column)
	if i < 0 || i >= len(v.Values) {
		return 0, false
	}
	return v.Values[i], true
}

// Clone returns a deep copy.
func (v FeatureVector) Clone() FeatureVector {
	return FeatureVector{
		Columns: append([]string(nil), v.Columns...),
		Values:  append([]float64(nil), v.Values...),
	}
}

// AsMap returns column → value.
func (v FeatureVector) AsMap() map[string]float64 {
	out := make(map[string]float64, len(v.Columns))
	for i, c := range v.Columns {
		if i < len(v.Values) {
			out[c] = v.Values[i]
		}
	}
	return out
}
