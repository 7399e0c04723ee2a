package allocation

import (
	"math"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

type unitGradeKey struct {
	unitID  int64
	gradeID int64
}

// CapacityTracker holds the remaining per-unit and per-unit-per-grade
// capacity during a single allocation run. Units absent from the limit
// tables are unconstrained.
//
// A tracker is private to one run. Concurrent runs must each build their
// own tracker; the type is not safe for concurrent use.
type CapacityTracker struct {
	unitLimits  map[int64]int
	gradeLimits map[unitGradeKey]int

	unitCounts  map[int64]int
	gradeCounts map[unitGradeKey]int
}

// NewCapacityTracker builds a tracker from the capacity limit tables
func NewCapacityTracker(unitLimits []model.UnitCapacityLimit, gradeLimits []model.UnitGradeLimit) *CapacityTracker {
	t := &CapacityTracker{
		unitLimits:  make(map[int64]int, len(unitLimits)),
		gradeLimits: make(map[unitGradeKey]int, len(gradeLimits)),
		unitCounts:  make(map[int64]int),
		gradeCounts: make(map[unitGradeKey]int),
	}
	for _, l := range unitLimits {
		t.unitLimits[l.UnitID] = l.MaxTotal
	}
	for _, l := range gradeLimits {
		t.gradeLimits[unitGradeKey{l.UnitID, l.GradeID}] = l.MaxForGrade
	}
	return t
}

// Remaining returns how many more transfers the unit can absorb.
// Unconstrained units report math.MaxInt.
func (t *CapacityTracker) Remaining(unitID int64) int {
	limit, ok := t.unitLimits[unitID]
	if !ok {
		return math.MaxInt
	}
	remaining := limit - t.unitCounts[unitID]
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingForGrade returns how many more transfers of the given grade the
// unit can absorb. Grades without a limit record report math.MaxInt.
func (t *CapacityTracker) RemainingForGrade(unitID, gradeID int64) int {
	key := unitGradeKey{unitID, gradeID}
	limit, ok := t.gradeLimits[key]
	if !ok {
		return math.MaxInt
	}
	remaining := limit - t.gradeCounts[key]
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HasGradeLimit reports whether the unit carries a limit record for the
// given grade.
func (t *CapacityTracker) HasGradeLimit(unitID, gradeID int64) bool {
	_, ok := t.gradeLimits[unitGradeKey{unitID, gradeID}]
	return ok
}

// GradeLimitsForUnit returns the grade limit records for a unit, keyed by
// grade. The second return is false when the unit has no grade limits at
// all (fully open).
func (t *CapacityTracker) GradeLimitsForUnit(unitID int64) (map[int64]int, bool) {
	limits := make(map[int64]int)
	for key, max := range t.gradeLimits {
		if key.unitID == unitID {
			limits[key.gradeID] = max
		}
	}
	return limits, len(limits) > 0
}

// MaxTotal returns the unit's total ceiling. The second return is false
// when the unit is unconstrained.
func (t *CapacityTracker) MaxTotal(unitID int64) (int, bool) {
	limit, ok := t.unitLimits[unitID]
	return limit, ok
}

// Occupied returns how many transfers have been committed to the unit so
// far in this run.
func (t *CapacityTracker) Occupied(unitID int64) int {
	return t.unitCounts[unitID]
}

// Commit records one transfer into the unit for the given grade. It fails
// with CapacityExceededError if either counter would exceed its ceiling.
// Callers are expected to check Remaining/RemainingForGrade first; the
// error exists to stop negative capacity from corrupting a run, not as
// control flow.
func (t *CapacityTracker) Commit(unitID, gradeID int64) error {
	if t.Remaining(unitID) <= 0 {
		return &CapacityExceededError{UnitID: unitID}
	}
	if t.HasGradeLimit(unitID, gradeID) && t.RemainingForGrade(unitID, gradeID) <= 0 {
		return &CapacityExceededError{UnitID: unitID, GradeID: gradeID, Grade: true}
	}

	t.unitCounts[unitID]++
	t.gradeCounts[unitGradeKey{unitID, gradeID}]++
	return nil
}
