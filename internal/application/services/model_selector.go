package services

import "github.com/zatekoja/healthpremium/internal/domain/entities"

// ModelSelector routes an applicant to the young or rest bundle by age.
type ModelSelector struct {
	threshold int
}

// NewModelSelector creates a selector; ages up to and including threshold are young.
func NewModelSelector(threshold int) *ModelSelector {
	return &ModelSelector{threshold: threshold}
}

// Select returns the model group for age.
func (s *ModelSelector) Select(age int) entities.ModelGroup {
	if age <= s.threshold {
		return entities.ModelGroupYoung
	}
	return entities.ModelGroupRest
}

// Threshold returns the age boundary.
func (s *ModelSelector) Threshold() int {
	return s.threshold
}
