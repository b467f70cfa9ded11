package services

import (
	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/pkg/utils"
)

// indicatorColumns maps a normalized category label to its one-hot column.
// The baseline category of each field has no entry and encodes as all zeros.
type indicatorColumns map[string]int

var (
	genderIndicators = indicatorColumns{
		"male": entities.ColGenderMale,
	}
	regionIndicators = indicatorColumns{
		"northwest": entities.ColRegionNorthwest,
		"southeast": entities.ColRegionSoutheast,
		"southwest": entities.ColRegionSouthwest,
	}
	maritalIndicators = indicatorColumns{
		"unmarried": entities.ColMaritalStatusUnmarried,
	}
	bmiIndicators = indicatorColumns{
		"obesity":     entities.ColBMIObesity,
		"overweight":  entities.ColBMIOverweight,
		"underweight": entities.ColBMIUnderweight,
	}
	smokingIndicators = indicatorColumns{
		"occasional": entities.ColSmokingOccasional,
		"regular":    entities.ColSmokingRegular,
	}
	employmentIndicators = indicatorColumns{
		"salaried":      entities.ColEmploymentSalaried,
		"self-employed": entities.ColEmploymentSelfEmployed,
	}
)

// insurancePlanCodes is the ordinal plan encoding. Unknown plans encode as Bronze.
var insurancePlanCodes = map[string]float64{
	"bronze": 1,
	"silver": 2,
	"gold":   3,
}

const defaultInsurancePlanCode = 1

// FeatureEncoder builds the model input row from an applicant.
type FeatureEncoder struct {
	scorer *RiskScorer
}

// NewFeatureEncoder creates a feature encoder.
func NewFeatureEncoder(scorer *RiskScorer) *FeatureEncoder {
	return &FeatureEncoder{scorer: scorer}
}

// Encode returns the unscaled feature row. It is deterministic and never fails;
// unrecognized categories leave their indicator columns at zero.
func (e *FeatureEncoder) Encode(a entities.Applicant) entities.FeatureVector {
	v := entities.NewFeatureVector()

	v.Values[entities.ColAge] = float64(a.Age)
	v.Values[entities.ColNumberOfDependants] = float64(a.Dependants)
	v.Values[entities.ColIncomeLakhs] = a.IncomeLakhs
	v.Values[entities.ColGeneticalRisk] = a.GeneticalRisk
	v.Values[entities.ColInsurancePlan] = insurancePlanCode(a.InsurancePlan)
	v.Values[entities.ColNormalizedRiskScore] = e.scorer.Score(a.MedicalHistory)

	setIndicator(v, genderIndicators, a.Gender)
	setIndicator(v, regionIndicators, a.Region)
	setIndicator(v, maritalIndicators, a.MaritalStatus)
	setIndicator(v, bmiIndicators, a.BMICategory)
	setIndicator(v, smokingIndicators, a.SmokingStatus)
	setIndicator(v, employmentIndicators, a.EmploymentStatus)

	return v
}

func setIndicator(v entities.FeatureVector, table indicatorColumns, label string) {
	if col, ok := table[utils.NormalizeLabel(label)]; ok {
		v.Values[col] = 1
	}
}

func insurancePlanCode(plan string) float64 {
	if code, ok := insurancePlanCodes[utils.NormalizeLabel(plan)]; ok {
		return code
	}
	return defaultInsurancePlanCode
}
