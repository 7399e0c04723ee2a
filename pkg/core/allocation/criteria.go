package allocation

import (
	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// WeightTolerance is how far the active criteria weight sum may deviate
// from 1.00 before the configuration is rejected.
const WeightTolerance = 0.01

// NormalizeCriteria filters the criteria set down to the active entries and
// validates it for a run:
//
//   - every active criterion must use a recognized calculation method
//   - active weights must sum to 1.00 within WeightTolerance
//
// No other component re-validates weights; the scorer trusts the output.
func NormalizeCriteria(criteria []model.AllocationCriterion) ([]model.AllocationCriterion, error) {
	active := make([]model.AllocationCriterion, 0, len(criteria))
	sum := 0.0

	for _, c := range criteria {
		if !c.Active {
			continue
		}
		if !c.Method.IsValid() {
			return nil, &UnknownCriterionError{CriterionName: c.Name, Method: c.Method}
		}
		active = append(active, c)
		sum += c.Weight
	}

	if sum > 1.0+WeightTolerance || sum < 1.0-WeightTolerance {
		return nil, &InvalidWeightConfigurationError{Sum: sum}
	}

	return active, nil
}
