package allocation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

func TestCapacityTracker_UnconstrainedUnit(t *testing.T) {
	tracker := NewCapacityTracker(nil, nil)

	assert.Equal(t, math.MaxInt, tracker.Remaining(7))
	assert.Equal(t, math.MaxInt, tracker.RemainingForGrade(7, 3))
	assert.False(t, tracker.HasGradeLimit(7, 3))

	require.NoError(t, tracker.Commit(7, 3))
	assert.Equal(t, 1, tracker.Occupied(7))
}

func TestCapacityTracker_UnitLimitDecrements(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{{UnitID: 1, MaxTotal: 2}},
		nil,
	)

	assert.Equal(t, 2, tracker.Remaining(1))
	require.NoError(t, tracker.Commit(1, 5))
	assert.Equal(t, 1, tracker.Remaining(1))
	require.NoError(t, tracker.Commit(1, 5))
	assert.Equal(t, 0, tracker.Remaining(1))
}

func TestCapacityTracker_CommitRejectsOverfill(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{{UnitID: 1, MaxTotal: 1}},
		nil,
	)

	require.NoError(t, tracker.Commit(1, 5))

	err := tracker.Commit(1, 5)
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, int64(1), capErr.UnitID)
	assert.False(t, capErr.Grade)

	// The failed commit must not change state
	assert.Equal(t, 1, tracker.Occupied(1))
}

func TestCapacityTracker_GradeLimitEnforced(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{{UnitID: 1, MaxTotal: 10}},
		[]model.UnitGradeLimit{{UnitID: 1, GradeID: 5, MaxForGrade: 1}},
	)

	assert.True(t, tracker.HasGradeLimit(1, 5))
	assert.Equal(t, 1, tracker.RemainingForGrade(1, 5))

	require.NoError(t, tracker.Commit(1, 5))
	assert.Equal(t, 0, tracker.RemainingForGrade(1, 5))

	err := tracker.Commit(1, 5)
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.True(t, capErr.Grade)
	assert.Equal(t, int64(5), capErr.GradeID)

	// A different grade is still fine
	assert.NoError(t, tracker.Commit(1, 6))
}

func TestCapacityTracker_ZeroLimitUnit(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{{UnitID: 1, MaxTotal: 0}},
		nil,
	)

	assert.Equal(t, 0, tracker.Remaining(1))
	assert.Error(t, tracker.Commit(1, 5))
}

func TestCapacityTracker_MaxTotal(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{{UnitID: 1, MaxTotal: 4}},
		nil,
	)

	max, ok := tracker.MaxTotal(1)
	assert.True(t, ok)
	assert.Equal(t, 4, max)

	_, ok = tracker.MaxTotal(2)
	assert.False(t, ok)
}
