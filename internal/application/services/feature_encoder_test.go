package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

func baselineApplicant() entities.Applicant {
	return entities.Applicant{
		Age:              40,
		Dependants:       2,
		IncomeLakhs:      15,
		GeneticalRisk:    1,
		InsurancePlan:    "Gold",
		EmploymentStatus: "Freelancer",
		Gender:           "Female",
		MaritalStatus:    "Married",
		BMICategory:      "Normal",
		SmokingStatus:    "No Smoking",
		Region:           "Northeast",
		MedicalHistory:   "No Disease",
	}
}

func TestFeatureEncoder_ColumnOrder(t *testing.T) {
	v := NewFeatureEncoder(NewRiskScorer()).Encode(baselineApplicant())

	require.Len(t, v.Values, entities.NumFeatures)
	assert.Equal(t, entities.FeatureColumns[:], v.Columns)
}

func TestFeatureEncoder_BaselineHasNoIndicators(t *testing.T) {
	v := NewFeatureEncoder(NewRiskScorer()).Encode(baselineApplicant())

	for _, col := range entities.IndicatorColumns() {
		got, ok := v.Get(col)
		require.True(t, ok)
		assert.Zero(t, got, col)
	}
	assert.Equal(t, []float64{40, 2, 15, 3, 1, 0}, v.Values[:entities.ColGenderMale])
}

func TestFeatureEncoder_ExampleRecord(t *testing.T) {
	a := baselineApplicant()
	a.Age = 30
	a.Dependants = 0
	a.IncomeLakhs = 10
	a.GeneticalRisk = 0
	a.InsurancePlan = "Bronze"
	a.EmploymentStatus = "Salaried"
	a.Gender = "Male"
	a.MaritalStatus = "Unmarried"
	a.Region = "Northwest"

	v := NewFeatureEncoder(NewRiskScorer()).Encode(a)

	want := map[string]float64{
		"age":                             30,
		"number_of_dependants":            0,
		"income_lakhs":                    10,
		"insurance_plan":                  1,
		"genetical_risk":                  0,
		"normalized_risk_score":           0,
		"gender_Male":                     1,
		"region_Northwest":                1,
		"region_Southeast":                0,
		"region_Southwest":                0,
		"marital_status_Unmarried":        1,
		"bmi_category_Obesity":            0,
		"bmi_category_Overweight":         0,
		"bmi_category_Underweight":        0,
		"smoking_status_Occasional":       0,
		"smoking_status_Regular":          0,
		"employment_status_Salaried":      1,
		"employment_status_Self-Employed": 0,
	}
	assert.Equal(t, want, v.AsMap())
}

func TestFeatureEncoder_AtMostOneIndicatorPerField(t *testing.T) {
	enc := NewFeatureEncoder(NewRiskScorer())

	a := baselineApplicant()
	a.Region = "Southwest"
	a.BMICategory = "obesity"
	a.SmokingStatus = " Regular "
	a.EmploymentStatus = "SELF-EMPLOYED"
	v := enc.Encode(a)

	sum := func(cols ...int) float64 {
		total := 0.0
		for _, c := range cols {
			total += v.Values[c]
		}
		return total
	}
	assert.Equal(t, 1.0, sum(entities.ColRegionNorthwest, entities.ColRegionSoutheast, entities.ColRegionSouthwest))
	assert.Equal(t, 1.0, sum(entities.ColBMIObesity, entities.ColBMIOverweight, entities.ColBMIUnderweight))
	assert.Equal(t, 1.0, sum(entities.ColSmokingOccasional, entities.ColSmokingRegular))
	assert.Equal(t, 1.0, sum(entities.ColEmploymentSalaried, entities.ColEmploymentSelfEmployed))
	assert.Equal(t, 1.0, v.Values[entities.ColRegionSouthwest])
}

func TestFeatureEncoder_LabelsIgnoreCaseAndSpacing(t *testing.T) {
	enc := NewFeatureEncoder(NewRiskScorer())

	a := baselineApplicant()
	a.Gender = "male"
	a.Region = "  SOUTHEAST "
	a.SmokingStatus = "regular"
	v := enc.Encode(a)

	assert.Equal(t, 1.0, v.Values[entities.ColGenderMale])
	assert.Equal(t, 1.0, v.Values[entities.ColRegionSoutheast])
	assert.Equal(t, 1.0, v.Values[entities.ColSmokingRegular])
}

func TestFeatureEncoder_UnknownCategoriesEncodeAsBaseline(t *testing.T) {
	enc := NewFeatureEncoder(NewRiskScorer())

	a := baselineApplicant()
	a.Region = "Atlantis"
	a.InsurancePlan = "Platinum"
	a.MedicalHistory = "Asthma"
	v := enc.Encode(a)

	assert.Equal(t, 1.0, v.Values[entities.ColInsurancePlan])
	assert.Zero(t, v.Values[entities.ColNormalizedRiskScore])
	for _, col := range entities.IndicatorColumns() {
		got, _ := v.Get(col)
		assert.Zero(t, got, col)
	}
}

func TestFeatureEncoder_PlanCodes(t *testing.T) {
	enc := NewFeatureEncoder(NewRiskScorer())

	for plan, code := range map[string]float64{"Bronze": 1, "Silver": 2, "Gold": 3, "gold": 3} {
		a := baselineApplicant()
		a.InsurancePlan = plan
		assert.Equal(t, code, enc.Encode(a).Values[entities.ColInsurancePlan], plan)
	}
}

func TestFeatureEncoder_Deterministic(t *testing.T) {
	enc := NewFeatureEncoder(NewRiskScorer())
	a := baselineApplicant()
	a.MedicalHistory = "Diabetes & Thyroid"

	first := enc.Encode(a)
	second := enc.Encode(a)
	assert.Equal(t, first, second)
	assert.InDelta(t, 11.0/14.0, first.Values[entities.ColNormalizedRiskScore], 1e-12)
}
