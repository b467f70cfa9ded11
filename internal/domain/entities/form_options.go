package entities

// Category labels offered by the input form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	MaritalUnmarried = "Unmarried"
	MaritalMarried   = "Married"

	BMINormal      = "Normal"
	BMIObesity     = "Obesity"
	BMIOverweight  = "Overweight"
	BMIUnderweight = "Underweight"

	SmokingNone       = "No Smoking"
	SmokingRegular    = "Regular"
	SmokingOccasional = "Occasional"

	EmploymentSalaried     = "Salaried"
	EmploymentSelfEmployed = "Self-Employed"
	EmploymentFreelancer   = "Freelancer"

	RegionNorthwest = "Northwest"
	RegionSoutheast = "Southeast"
	RegionNortheast = "Northeast"
	RegionSouthwest = "Southwest"

	PlanBronze = "Bronze"
	PlanSilver = "Silver"
	PlanGold   = "Gold"
)

// NumericRange is the widget range of a numeric form field.
type NumericRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// FormOptions is the vocabulary the presentation layer renders.
type FormOptions struct {
	Categorical map[string][]string     `json:"categorical"`
	Numeric     map[string]NumericRange `json:"numeric"`
}

// DefaultFormOptions returns the form vocabulary the models were trained on.
func DefaultFormOptions() FormOptions {
	return FormOptions{
		Categorical: map[string][]string{
			FieldGender:           {GenderMale, GenderFemale},
			FieldMaritalStatus:    {MaritalUnmarried, MaritalMarried},
			FieldBMICategory:      {BMINormal, BMIObesity, BMIOverweight, BMIUnderweight},
			FieldSmokingStatus:    {SmokingNone, SmokingRegular, SmokingOccasional},
			FieldEmploymentStatus: {EmploymentSalaried, EmploymentSelfEmployed, EmploymentFreelancer},
			FieldRegion:           {RegionNorthwest, RegionSoutheast, RegionNortheast, RegionSouthwest},
			FieldMedicalHistory: {
				"No Disease", "Diabetes", "High blood pressure", "Diabetes & High blood pressure",
				"Thyroid", "Heart disease", "High blood pressure & Heart disease",
				"Diabetes & Thyroid", "Diabetes & Heart disease",
			},
			FieldInsurancePlan: {PlanBronze, PlanSilver, PlanGold},
		},
		Numeric: map[string]NumericRange{
			FieldAge:                {Min: 18, Max: 100, Default: 30},
			FieldNumberOfDependants: {Min: 0, Max: 20, Default: 0},
			FieldIncomeLakhs:        {Min: 0, Max: 200, Default: 10},
			FieldGeneticalRisk:      {Min: 0, Max: 5, Default: 0},
		},
	}
}
