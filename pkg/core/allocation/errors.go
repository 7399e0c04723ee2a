package allocation

import (
	"fmt"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// InvalidWeightConfigurationError is returned when the active criteria
// weights do not sum to 1.00 within tolerance. The run is aborted before
// any scoring happens.
type InvalidWeightConfigurationError struct {
	Sum float64
}

func (e *InvalidWeightConfigurationError) Error() string {
	return fmt.Sprintf("active criteria weights sum to %.2f, expected 1.00 (±%.2f)", e.Sum, WeightTolerance)
}

// UnknownCriterionError is returned when a criterion carries a calculation
// method outside the supported set. Unknown methods are never silently
// skipped: skipping one would make the declared weights lie about what was
// actually computed.
type UnknownCriterionError struct {
	CriterionName string
	Method        model.CalculationMethod
}

func (e *UnknownCriterionError) Error() string {
	return fmt.Sprintf("criterion %q has unknown calculation method %q", e.CriterionName, e.Method)
}

// CapacityExceededError is returned by CapacityTracker.Commit when a commit
// would drive a unit or unit-grade counter below zero. The solver checks
// remaining capacity before committing, so hitting this indicates a bug in
// the caller rather than bad input.
type CapacityExceededError struct {
	UnitID  int64
	GradeID int64
	Grade   bool
}

func (e *CapacityExceededError) Error() string {
	if e.Grade {
		return fmt.Sprintf("capacity exceeded for unit %d, grade %d", e.UnitID, e.GradeID)
	}
	return fmt.Sprintf("capacity exceeded for unit %d", e.UnitID)
}
