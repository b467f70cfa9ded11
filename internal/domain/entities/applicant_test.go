package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/zatekoja/healthpremium/pkg/errors"
)

func sampleRecord() RawRecord {
	return RawRecord{
		FieldAge:                30,
		FieldNumberOfDependants: 0,
		FieldIncomeLakhs:        10,
		FieldGeneticalRisk:      0,
		FieldInsurancePlan:      "Bronze",
		FieldEmploymentStatus:   "Salaried",
		FieldGender:             "Male",
		FieldMaritalStatus:      "Unmarried",
		FieldBMICategory:        "Normal",
		FieldSmokingStatus:      "No Smoking",
		FieldRegion:             "Northwest",
		FieldMedicalHistory:     "No Disease",
	}
}

func TestParseApplicant_Valid(t *testing.T) {
	a, err := ParseApplicant(sampleRecord())
	require.NoError(t, err)

	assert.Equal(t, 30, a.Age)
	assert.Equal(t, 0, a.Dependants)
	assert.Equal(t, 10.0, a.IncomeLakhs)
	assert.Equal(t, "Bronze", a.InsurancePlan)
	assert.Equal(t, "No Disease", a.MedicalHistory)
}

func TestParseApplicant_FieldAliases(t *testing.T) {
	raw := sampleRecord()
	delete(raw, FieldNumberOfDependants)
	delete(raw, FieldIncomeLakhs)
	delete(raw, FieldGeneticalRisk)
	raw[FieldDependents] = 2
	raw[FieldIncome] = 25.5

	a, err := ParseApplicant(raw)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Dependants)
	assert.Equal(t, 25.5, a.IncomeLakhs)
	assert.Equal(t, 0.0, a.GeneticalRisk)
}

func TestParseApplicant_DecodedJSON(t *testing.T) {
	var raw RawRecord
	body := `{"Age": "42", "Number of Dependants": 3, "Income in Lakhs": 18.5, "Genetical Risk": 2,
		"Insurance Plan": "Gold", "Employment Status": "Freelancer", "Gender": "Female",
		"Marital Status": "Married", "BMI Category": "Obesity", "Smoking Status": "Regular",
		"Region": "Southeast", "Medical History": "Diabetes & Thyroid"}`
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	a, err := ParseApplicant(raw)
	require.NoError(t, err)

	assert.Equal(t, 42, a.Age)
	assert.Equal(t, 3, a.Dependants)
	assert.Equal(t, 2.0, a.GeneticalRisk)
	assert.Equal(t, "Diabetes & Thyroid", a.MedicalHistory)
}

func TestParseApplicant_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(RawRecord)
		msg    string
	}{
		{"missing age", func(r RawRecord) { delete(r, FieldAge) }, "Age is required"},
		{"fractional age", func(r RawRecord) { r[FieldAge] = 30.5 }, "Age must be a whole number"},
		{"non numeric income", func(r RawRecord) { r[FieldIncomeLakhs] = "lots" }, "Income in Lakhs must be a number"},
		{"bool dependants", func(r RawRecord) { r[FieldNumberOfDependants] = true }, "Number of Dependants must be a number"},
		{"missing region", func(r RawRecord) { delete(r, FieldRegion) }, "Region is required"},
		{"numeric gender", func(r RawRecord) { r[FieldGender] = 1 }, "Gender must be a string"},
		{"huge age", func(r RawRecord) { r[FieldAge] = 1e19 }, "Age is out of range"},
		{"huge negative dependants", func(r RawRecord) { r[FieldNumberOfDependants] = "-1e12" }, "Number of Dependants is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := sampleRecord()
			tt.mutate(raw)

			_, err := ParseApplicant(raw)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
