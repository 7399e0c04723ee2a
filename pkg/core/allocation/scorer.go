package allocation

import (
	"fmt"
	"strings"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// Neutral sub-score used when the input needed by a criterion is missing
// (no performance rating, no capacity limit to derive need from, custom
// criteria). Missing data never fails a run and never penalizes.
const neutralScore = 50.0

// Scorer computes the composite 0-100 score for one (request, unit) pair.
// It reads the capacity tracker's live occupancy for the unit-need
// criterion but never mutates it.
type Scorer struct {
	criteria            []model.AllocationCriterion
	tracker             *CapacityTracker
	employeeAddresses   map[int64]model.Address
	unitAddresses       map[int64]model.Address
	distanceThresholdKm float64
	minTenureYears      float64
}

// NewScorer builds a scorer over a normalized criteria set. The criteria
// slice must already have passed NormalizeCriteria.
func NewScorer(
	criteria []model.AllocationCriterion,
	tracker *CapacityTracker,
	employeeAddresses map[int64]model.Address,
	unitAddresses map[int64]model.Address,
	distanceThresholdKm float64,
	minTenureYears float64,
) *Scorer {
	return &Scorer{
		criteria:            criteria,
		tracker:             tracker,
		employeeAddresses:   employeeAddresses,
		unitAddresses:       unitAddresses,
		distanceThresholdKm: distanceThresholdKm,
		minTenureYears:      minTenureYears,
	}
}

// Score is a composite score with its per-criterion audit trail
type Score struct {
	// Total is the weighted sum over active criteria, bounded to [0,100]
	// because weights sum to 1 and every sub-score is bounded
	Total float64

	// Reason enumerates each active criterion's weighted contribution,
	// for audit and debugging
	Reason string
}

// Score computes the composite score for allocating the request's employee
// to the given unit.
func (s *Scorer) Score(req model.TransferRequest, unitID int64) Score {
	total := 0.0
	parts := make([]string, 0, len(s.criteria))

	for _, criterion := range s.criteria {
		sub := s.subScore(criterion.Method, req, unitID)
		weighted := sub * criterion.Weight
		total += weighted
		parts = append(parts, fmt.Sprintf("%s: %.1f (%.1f×%.2f)", criterion.Name, weighted, sub, criterion.Weight))
	}

	return Score{
		Total:  total,
		Reason: fmt.Sprintf("score %.2f = %s", total, strings.Join(parts, "; ")),
	}
}

// subScore dispatches to the scoring function for one calculation method.
// The method set is closed and validated up front, so the default arm is
// only reachable for MethodCustom.
func (s *Scorer) subScore(method model.CalculationMethod, req model.TransferRequest, unitID int64) float64 {
	switch method {
	case model.MethodPreferenceRank:
		return preferenceRankScore(req, unitID)
	case model.MethodUnitNeed:
		return s.unitNeedScore(unitID)
	case model.MethodPerformance:
		return performanceScore(req.PerformanceRating)
	case model.MethodJobMatch:
		return s.jobMatchScore(req, unitID)
	case model.MethodSpecialCircumstances:
		return s.specialCircumstancesScore(req, unitID)
	case model.MethodTenure:
		return tenureScore(req.TenureYears, s.minTenureYears)
	default:
		return neutralScore
	}
}

// preferenceRankScore scores how high the unit sits in the employee's
// stated ranking: 100 for first preference, 80 for second, dropping by 20
// per rank and floored at 0. Units not on the list score 0.
func preferenceRankScore(req model.TransferRequest, unitID int64) float64 {
	for _, pref := range req.PreferredUnits {
		if pref.UnitID == unitID {
			score := 100.0 - 20.0*float64(pref.PreferenceOrder-1)
			if score < 0 {
				return 0
			}
			return score
		}
	}
	return 0
}

// unitNeedScore scores how far the unit is from its capacity ceiling using
// the tracker's live occupancy. Unconstrained units (and units with a zero
// ceiling) score neutral to avoid dividing by zero.
func (s *Scorer) unitNeedScore(unitID int64) float64 {
	maxTotal, ok := s.tracker.MaxTotal(unitID)
	if !ok || maxTotal == 0 {
		return neutralScore
	}

	occupancy := float64(s.tracker.Occupied(unitID)) / float64(maxTotal)
	score := 100.0 * (1.0 - occupancy)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// performanceScore rescales the manager rating to [0,100]. Employees
// without an assessment score neutral.
func performanceScore(rating model.PerformanceRating) float64 {
	switch rating {
	case model.RatingExcellent:
		return 100
	case model.RatingGood:
		return 85
	case model.RatingSatisfactory:
		return 70
	case model.RatingNeedsImprovement:
		return 50
	default:
		return neutralScore
	}
}

// jobMatchScore checks the employee's grade against the unit's grade
// limits. A unit with no grade limits is open to every grade (100), as is
// a unit with a positive limit for the employee's grade. Otherwise the
// score falls by 25 points per grade of distance to the nearest accepted
// grade, floored at 0.
func (s *Scorer) jobMatchScore(req model.TransferRequest, unitID int64) float64 {
	limits, hasLimits := s.tracker.GradeLimitsForUnit(unitID)
	if !hasLimits {
		return 100
	}

	if max, ok := limits[req.GradeID]; ok && max > 0 {
		return 100
	}

	nearest := -1
	for gradeID, max := range limits {
		if max <= 0 {
			continue
		}
		dist := int(gradeID - req.GradeID)
		if dist < 0 {
			dist = -dist
		}
		if nearest < 0 || dist < nearest {
			nearest = dist
		}
	}
	if nearest < 0 {
		// No grade is accepted at all
		return 0
	}

	score := 100.0 - 25.0*float64(nearest)
	if score < 0 {
		return 0
	}
	return score
}

// specialCircumstancesScore averages three terms: willingness to relocate,
// commute distance against the configured threshold, and flagged
// health/family circumstances. An unknown distance is neutral (full
// distance term), never a penalty.
func (s *Scorer) specialCircumstancesScore(req model.TransferRequest, unitID int64) float64 {
	relocation := neutralScore
	if req.WillingToRelocate {
		relocation = 100
	}

	distance := 100.0
	empAddr, empOK := s.employeeAddresses[req.EmployeeID]
	unitAddr, unitOK := s.unitAddresses[unitID]
	if empOK && unitOK {
		if d := DistanceKm(&empAddr, &unitAddr); d != nil && *d > s.distanceThresholdKm {
			// Linear decay from 100 at the threshold down to 0 at 3x the
			// threshold
			excess := *d - s.distanceThresholdKm
			distance = 100.0 * (1.0 - excess/(2.0*s.distanceThresholdKm))
			if distance < 0 {
				distance = 0
			}
		}
	}

	circumstances := neutralScore
	if req.HealthCondition {
		circumstances += 25
	}
	if req.FamilyTransfer {
		circumstances += 25
	}
	if circumstances > 100 {
		circumstances = 100
	}

	return (relocation + distance + circumstances) / 3.0
}

// tenureScore ramps linearly up to 100 as the employee's tenure in their
// current unit approaches the configured minimum, and stays at 100 beyond
// it.
func tenureScore(tenureYears, minTenureYears float64) float64 {
	if minTenureYears <= 0 {
		return 100
	}
	ratio := tenureYears / minTenureYears
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return 100.0 * ratio
}
