package allocation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// singleCriterionScorer builds a scorer whose composite equals one
// sub-score, which keeps sub-score assertions direct
func singleCriterionScorer(method model.CalculationMethod, tracker *CapacityTracker) *Scorer {
	if tracker == nil {
		tracker = NewCapacityTracker(nil, nil)
	}
	criteria := []model.AllocationCriterion{
		{CriteriaID: 1, Name: string(method), Method: method, Weight: 1.0, Active: true},
	}
	return NewScorer(criteria, tracker, nil, nil, DefaultDistanceThresholdKm, DefaultMinTenureYears)
}

func TestPreferenceRankScore(t *testing.T) {
	req := model.TransferRequest{
		PreferredUnits: []model.UnitPreference{
			{UnitID: 10, PreferenceOrder: 1},
			{UnitID: 20, PreferenceOrder: 2},
			{UnitID: 30, PreferenceOrder: 3},
			{UnitID: 40, PreferenceOrder: 7},
		},
	}

	assert.Equal(t, 100.0, preferenceRankScore(req, 10))
	assert.Equal(t, 80.0, preferenceRankScore(req, 20))
	assert.Equal(t, 60.0, preferenceRankScore(req, 30))
	// Rank 7 would be -20, floored at 0
	assert.Equal(t, 0.0, preferenceRankScore(req, 40))
	// Not on the list at all
	assert.Equal(t, 0.0, preferenceRankScore(req, 99))
}

func TestUnitNeedScore(t *testing.T) {
	tracker := NewCapacityTracker(
		[]model.UnitCapacityLimit{
			{UnitID: 1, MaxTotal: 4},
			{UnitID: 2, MaxTotal: 0},
		},
		nil,
	)
	scorer := singleCriterionScorer(model.MethodUnitNeed, tracker)

	// Empty unit scores full need
	assert.Equal(t, 100.0, scorer.unitNeedScore(1))

	// One of four slots taken
	assert.NoError(t, tracker.Commit(1, 5))
	assert.Equal(t, 75.0, scorer.unitNeedScore(1))

	// Zero ceiling and unconstrained units are both neutral
	assert.Equal(t, 50.0, scorer.unitNeedScore(2))
	assert.Equal(t, 50.0, scorer.unitNeedScore(3))
}

func TestPerformanceScore(t *testing.T) {
	assert.Equal(t, 100.0, performanceScore(model.RatingExcellent))
	assert.Equal(t, 85.0, performanceScore(model.RatingGood))
	assert.Equal(t, 70.0, performanceScore(model.RatingSatisfactory))
	assert.Equal(t, 50.0, performanceScore(model.RatingNeedsImprovement))
	// No assessment on record is neutral, not zero
	assert.Equal(t, 50.0, performanceScore(""))
}

func TestJobMatchScore(t *testing.T) {
	tracker := NewCapacityTracker(nil, []model.UnitGradeLimit{
		{UnitID: 1, GradeID: 5, MaxForGrade: 2},
		{UnitID: 2, GradeID: 5, MaxForGrade: 0},
	})
	scorer := singleCriterionScorer(model.MethodJobMatch, tracker)

	// Unit 9 has no grade limits at all: open to every grade
	assert.Equal(t, 100.0, scorer.jobMatchScore(model.TransferRequest{GradeID: 3}, 9))

	// Grade 5 is accepted in unit 1
	assert.Equal(t, 100.0, scorer.jobMatchScore(model.TransferRequest{GradeID: 5}, 1))

	// Grade 3 in unit 1: two grades away from the nearest accepted grade
	assert.Equal(t, 50.0, scorer.jobMatchScore(model.TransferRequest{GradeID: 3}, 1))

	// Far away grades floor at 0
	assert.Equal(t, 0.0, scorer.jobMatchScore(model.TransferRequest{GradeID: 50}, 1))

	// Unit 2 accepts no grade at all (only a zero limit)
	assert.Equal(t, 0.0, scorer.jobMatchScore(model.TransferRequest{GradeID: 5}, 2))
}

func TestSpecialCircumstancesScore_NoAddressIsNeutral(t *testing.T) {
	scorer := singleCriterionScorer(model.MethodSpecialCircumstances, nil)

	// No addresses known: distance term stays at its full neutral 100.
	// Not willing to relocate, no flags: (50 + 100 + 50) / 3
	score := scorer.specialCircumstancesScore(model.TransferRequest{EmployeeID: 1}, 10)
	assert.InDelta(t, 200.0/3.0, score, 0.001)
}

func TestSpecialCircumstancesScore_Bonuses(t *testing.T) {
	scorer := singleCriterionScorer(model.MethodSpecialCircumstances, nil)

	req := model.TransferRequest{
		EmployeeID:        1,
		WillingToRelocate: true,
		HealthCondition:   true,
		FamilyTransfer:    true,
	}
	// (100 + 100 + 100) / 3
	assert.Equal(t, 100.0, scorer.specialCircumstancesScore(req, 10))
}

func TestSpecialCircumstancesScore_DistanceDecay(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	// Place employee and unit ~100 km apart along a meridian
	// (1 degree of latitude is ~111 km)
	employeeAddresses := map[int64]model.Address{
		1: {Latitude: ptr(30.0), Longitude: ptr(31.0)},
	}
	unitAddresses := map[int64]model.Address{
		10: {Latitude: ptr(30.9), Longitude: ptr(31.0)},
	}

	criteria := []model.AllocationCriterion{
		{CriteriaID: 1, Name: "special", Method: model.MethodSpecialCircumstances, Weight: 1.0, Active: true},
	}
	tracker := NewCapacityTracker(nil, nil)
	scorer := NewScorer(criteria, tracker, employeeAddresses, unitAddresses, 50, 3)

	req := model.TransferRequest{EmployeeID: 1}
	score := scorer.specialCircumstancesScore(req, 10)

	// ~100 km against a 50 km threshold: the distance term is halved,
	// so the score sits below the no-address neutral case
	neutral := scorer.specialCircumstancesScore(model.TransferRequest{EmployeeID: 99}, 10)
	assert.Less(t, score, neutral)
	assert.Greater(t, score, 0.0)
}

func TestTenureScore(t *testing.T) {
	assert.Equal(t, 50.0, tenureScore(1.5, 3))
	assert.Equal(t, 100.0, tenureScore(3, 3))
	assert.Equal(t, 100.0, tenureScore(10, 3))
	assert.Equal(t, 0.0, tenureScore(0, 3))
	// Disabled minimum means the ramp never applies
	assert.Equal(t, 100.0, tenureScore(0, 0))
}

func TestScorer_CompositeIsWeightedSum(t *testing.T) {
	criteria := []model.AllocationCriterion{
		{CriteriaID: 1, Name: "Priority Match", Method: model.MethodPreferenceRank, Weight: 0.6, Active: true},
		{CriteriaID: 2, Name: "Tenure", Method: model.MethodTenure, Weight: 0.4, Active: true},
	}
	tracker := NewCapacityTracker(nil, nil)
	scorer := NewScorer(criteria, tracker, nil, nil, 50, 3)

	req := model.TransferRequest{
		TransferID:     1,
		TenureYears:    3,
		PreferredUnits: []model.UnitPreference{{UnitID: 10, PreferenceOrder: 2}},
	}

	score := scorer.Score(req, 10)
	// 0.6*80 + 0.4*100
	assert.InDelta(t, 88.0, score.Total, 0.001)
	assert.True(t, strings.Contains(score.Reason, "Priority Match"))
	assert.True(t, strings.Contains(score.Reason, "Tenure"))
}

func TestScorer_TotalStaysInRange(t *testing.T) {
	criteria := []model.AllocationCriterion{
		{CriteriaID: 1, Name: "pref", Method: model.MethodPreferenceRank, Weight: 0.25, Active: true},
		{CriteriaID: 2, Name: "need", Method: model.MethodUnitNeed, Weight: 0.15, Active: true},
		{CriteriaID: 3, Name: "perf", Method: model.MethodPerformance, Weight: 0.15, Active: true},
		{CriteriaID: 4, Name: "job", Method: model.MethodJobMatch, Weight: 0.15, Active: true},
		{CriteriaID: 5, Name: "special", Method: model.MethodSpecialCircumstances, Weight: 0.15, Active: true},
		{CriteriaID: 6, Name: "tenure", Method: model.MethodTenure, Weight: 0.15, Active: true},
	}
	tracker := NewCapacityTracker(nil, nil)
	scorer := NewScorer(criteria, tracker, nil, nil, 50, 3)

	req := model.TransferRequest{
		TransferID:        1,
		EmployeeID:        1,
		GradeID:           5,
		TenureYears:       10,
		PerformanceRating: model.RatingExcellent,
		WillingToRelocate: true,
		PreferredUnits:    []model.UnitPreference{{UnitID: 10, PreferenceOrder: 1}},
	}

	score := scorer.Score(req, 10)
	assert.GreaterOrEqual(t, score.Total, 0.0)
	assert.LessOrEqual(t, score.Total, 100.0)
}
