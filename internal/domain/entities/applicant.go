package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

// RawRecord is the loosely-typed form submission: field label → value.
type RawRecord map[string]any

// Form field labels.
const (
	FieldAge                = "Age"
	FieldNumberOfDependants = "Number of Dependants"
	FieldDependents         = "Dependents"
	FieldIncomeLakhs        = "Income in Lakhs"
	FieldIncome             = "Income"
	FieldGeneticalRisk      = "Genetical Risk"
	FieldInsurancePlan      = "Insurance Plan"
	FieldEmploymentStatus   = "Employment Status"
	FieldGender             = "Gender"
	FieldMaritalStatus      = "Marital Status"
	FieldBMICategory        = "BMI Category"
	FieldSmokingStatus      = "Smoking Status"
	FieldRegion             = "Region"
	FieldMedicalHistory     = "Medical History"
)

// Applicant is a typed RawRecord.
type Applicant struct {
	Age              int     `json:"age"`
	Dependants       int     `json:"number_of_dependants"`
	IncomeLakhs      float64 `json:"income_lakhs"`
	GeneticalRisk    float64 `json:"genetical_risk"`
	InsurancePlan    string  `json:"insurance_plan"`
	EmploymentStatus string  `json:"employment_status"`
	Gender           string  `json:"gender"`
	MaritalStatus    string  `json:"marital_status"`
	BMICategory      string  `json:"bmi_category"`
	SmokingStatus    string  `json:"smoking_status"`
	Region           string  `json:"region"`
	MedicalHistory   string  `json:"medical_history"`
}

// ParseApplicant converts a RawRecord into an Applicant. Numeric fields accept
// JSON numbers or numeric strings; Age and dependants must be whole numbers.
// Genetical Risk is optional. Categorical values are kept verbatim.
func ParseApplicant(raw RawRecord) (Applicant, error) {
	var a Applicant
	var err error

	if a.Age, err = intField(raw, FieldAge); err != nil {
		return Applicant{}, err
	}
	if a.Dependants, err = intField(raw, FieldNumberOfDependants, FieldDependents); err != nil {
		return Applicant{}, err
	}
	if a.IncomeLakhs, err = floatField(raw, FieldIncomeLakhs, FieldIncome); err != nil {
		return Applicant{}, err
	}
	if _, ok := lookup(raw, FieldGeneticalRisk); ok {
		if a.GeneticalRisk, err = floatField(raw, FieldGeneticalRisk); err != nil {
			return Applicant{}, err
		}
	}

	strs := []struct {
		dst   *string
		field string
	}{
		{&a.InsurancePlan, FieldInsurancePlan},
		{&a.EmploymentStatus, FieldEmploymentStatus},
		{&a.Gender, FieldGender},
		{&a.MaritalStatus, FieldMaritalStatus},
		{&a.BMICategory, FieldBMICategory},
		{&a.SmokingStatus, FieldSmokingStatus},
		{&a.Region, FieldRegion},
		{&a.MedicalHistory, FieldMedicalHistory},
	}
	for _, s := range strs {
		if *s.dst, err = stringField(raw, s.field); err != nil {
			return Applicant{}, err
		}
	}

	return a, nil
}

// lookup returns the value of the first present name.
func lookup(raw RawRecord, names ...string) (any, bool) {
	for _, n := range names {
		if v, ok := raw[n]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func floatField(raw RawRecord, names ...string) (float64, error) {
	v, ok := lookup(raw, names...)
	if !ok {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is required", names[0]))
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", names[0]))
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", names[0]))
		}
		f = parsed
	default:
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", names[0]))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a finite number", names[0]))
	}
	return f, nil
}

func intField(raw RawRecord, names ...string) (int, error) {
	f, err := floatField(raw, names...)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a whole number", names[0]))
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is out of range", names[0]))
	}
	return int(f), nil
}

func stringField(raw RawRecord, name string) (string, error) {
	v, ok := lookup(raw, name)
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s must be a string", name))
	}
	return s, nil
}
