package allocation

import (
	"fmt"
	"math"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

const (
	// genderBalanceTolerance is the allowed drift, in ratio points, between
	// a unit's pre- and post-allocation gender ratio
	genderBalanceTolerance = 0.15

	// genderImbalancePenalty is subtracted from the fairness score when
	// the gender balance check fails
	genderImbalancePenalty = 10.0
)

// FairnessDetails is the per-dimension breakdown behind the fairness score
type FairnessDetails struct {
	PreferenceSatisfaction  float64 `json:"preference_satisfaction"`
	GenderBalanceMaintained bool    `json:"gender_balance_maintained"`
	ExperienceDistribution  float64 `json:"experience_distribution"`
}

// Audit post-processes the committed allocations into fairness metrics and
// textual recommendations. requests must be the eligible set the solver
// ran over; baselines supply each unit's pre-allocation headcount split.
func Audit(
	allocations []model.MatchedAllocation,
	requests []model.TransferRequest,
	baselines []model.UnitGenderBaseline,
) (FairnessDetails, float64, []string) {
	requestsByID := make(map[int64]model.TransferRequest, len(requests))
	for _, req := range requests {
		requestsByID[req.TransferID] = req
	}

	details := FairnessDetails{
		PreferenceSatisfaction:  preferenceSatisfaction(allocations, requestsByID),
		GenderBalanceMaintained: genderBalanceMaintained(allocations, requestsByID, baselines),
		ExperienceDistribution:  experienceDistribution(allocations, requestsByID),
	}

	score := (details.PreferenceSatisfaction + details.ExperienceDistribution) / 2.0
	if !details.GenderBalanceMaintained {
		score -= genderImbalancePenalty
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	recommendations := buildRecommendations(allocations, requests, details)

	return details, score, recommendations
}

// preferenceSatisfaction averages, over matched allocations, the same step
// function the preference_rank sub-score uses: 100 for a first-preference
// match, 80 for second, and so on.
func preferenceSatisfaction(allocations []model.MatchedAllocation, requestsByID map[int64]model.TransferRequest) float64 {
	if len(allocations) == 0 {
		return 0
	}

	sum := 0.0
	for _, alloc := range allocations {
		req, ok := requestsByID[alloc.TransferID]
		if !ok {
			continue
		}
		sum += preferenceRankScore(req, alloc.AllocatedUnitID)
	}
	return sum / float64(len(allocations))
}

// genderBalanceMaintained checks, for every unit that received at least
// one allocation and has a headcount baseline, that the post-allocation
// gender ratio stays within tolerance of the pre-allocation ratio.
func genderBalanceMaintained(
	allocations []model.MatchedAllocation,
	requestsByID map[int64]model.TransferRequest,
	baselines []model.UnitGenderBaseline,
) bool {
	baselineByUnit := make(map[int64]model.UnitGenderBaseline, len(baselines))
	for _, b := range baselines {
		baselineByUnit[b.UnitID] = b
	}

	type tally struct {
		total  int
		female int
	}
	incoming := make(map[int64]tally)
	for _, alloc := range allocations {
		req, ok := requestsByID[alloc.TransferID]
		if !ok {
			continue
		}
		t := incoming[alloc.AllocatedUnitID]
		t.total++
		if req.Gender == model.GenderFemale {
			t.female++
		}
		incoming[alloc.AllocatedUnitID] = t
	}

	for unitID, t := range incoming {
		baseline, ok := baselineByUnit[unitID]
		if !ok || baseline.Headcount == 0 {
			continue
		}

		before := float64(baseline.FemaleCount) / float64(baseline.Headcount)
		after := float64(baseline.FemaleCount+t.female) / float64(baseline.Headcount+t.total)

		if math.Abs(after-before) > genderBalanceTolerance {
			return false
		}
	}

	return true
}

// experienceDistribution scores how evenly tenure is spread across the
// receiving units, from the coefficient of variation of each unit's mean
// tenure. Lower variation scores higher; zero or one receiving unit scores
// a full 100.
func experienceDistribution(allocations []model.MatchedAllocation, requestsByID map[int64]model.TransferRequest) float64 {
	tenureByUnit := make(map[int64][]float64)
	for _, alloc := range allocations {
		req, ok := requestsByID[alloc.TransferID]
		if !ok {
			continue
		}
		tenureByUnit[alloc.AllocatedUnitID] = append(tenureByUnit[alloc.AllocatedUnitID], req.TenureYears)
	}

	if len(tenureByUnit) <= 1 {
		return 100
	}

	means := make([]float64, 0, len(tenureByUnit))
	for _, tenures := range tenureByUnit {
		sum := 0.0
		for _, t := range tenures {
			sum += t
		}
		means = append(means, sum/float64(len(tenures)))
	}

	grand := 0.0
	for _, m := range means {
		grand += m
	}
	grand /= float64(len(means))
	if grand == 0 {
		return 100
	}

	variance := 0.0
	for _, m := range means {
		variance += (m - grand) * (m - grand)
	}
	variance /= float64(len(means))

	cv := math.Sqrt(variance) / grand
	score := 100.0 * (1.0 - cv)
	if score < 0 {
		return 0
	}
	return score
}

func buildRecommendations(
	allocations []model.MatchedAllocation,
	requests []model.TransferRequest,
	details FairnessDetails,
) []string {
	recommendations := []string{}

	unmatched := len(requests) - len(allocations)
	if unmatched > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d requests could not be allocated - manual review recommended.", unmatched))
	}

	if len(requests) > 0 {
		rate := float64(len(allocations)) / float64(len(requests))
		if rate < 0.8 {
			recommendations = append(recommendations,
				"Allocation rate below 80% - consider adjusting unit capacity limits or criteria weights.")
		}
	}

	if details.PreferenceSatisfaction < 60 {
		recommendations = append(recommendations,
			"Preference satisfaction below 60% - consider revisiting unit capacity limits.")
	}

	if !details.GenderBalanceMaintained {
		recommendations = append(recommendations,
			"Gender balance drifts by more than 15 percentage points in at least one unit - review before approval.")
	}

	return recommendations
}
