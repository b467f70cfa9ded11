package evaluation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zatekoja/healthpremium/internal/domain/entities"
)

// LoadGoldenCases reads and parses a golden case set from a JSON file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}

	var cases []GoldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}

	return cases, nil
}

// ValidateGoldenCases checks that all golden cases have required fields and valid values.
func ValidateGoldenCases(cases []GoldenCase) error {
	seen := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if len(c.Input) == 0 {
			return fmt.Errorf("case %q: missing input", c.ID)
		}
		if c.ExpectedPremium < 0 {
			return fmt.Errorf("case %q: expected_premium must not be negative", c.ID)
		}
		if c.Tolerance < 0 {
			return fmt.Errorf("case %q: tolerance must not be negative", c.ID)
		}
		switch c.ExpectedGroup {
		case "", entities.ModelGroupYoung, entities.ModelGroupRest:
		default:
			return fmt.Errorf("case %q: invalid expected_group %q (must be young/rest)", c.ID, c.ExpectedGroup)
		}
	}

	return nil
}
