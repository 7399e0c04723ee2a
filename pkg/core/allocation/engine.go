// Package allocation implements the fair allocation engine: a weighted,
// multi-criteria, capacity-constrained assignment of employee transfer
// requests to organizational units, with a post-hoc fairness audit.
//
// The engine is a pure, single-threaded batch computation. All inputs are
// supplied up front; the only mutable state is the per-run capacity
// tracker, which is discarded when Run returns. Running the engine only
// previews an allocation - persisting the matched allocations is a
// separate, externally owned approve step.
package allocation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// AlgorithmVersion identifies the allocation heuristic in results
const AlgorithmVersion = "2.0"

// Defaults for the global tunables when the caller leaves them unset
const (
	DefaultDistanceThresholdKm = 50.0
	DefaultMinTenureYears      = 3.0
)

// Input is the read-only bundle of everything one allocation run needs.
// The engine mutates none of it.
type Input struct {
	Requests        []model.TransferRequest
	Units           []model.OrganizationalUnit
	UnitLimits      []model.UnitCapacityLimit
	UnitGradeLimits []model.UnitGradeLimit
	Criteria        []model.AllocationCriterion

	EmployeeAddresses map[int64]model.Address
	UnitAddresses     map[int64]model.Address
	GenderBaselines   []model.UnitGenderBaseline

	// DistanceThresholdKm and MinTenureYears fall back to the package
	// defaults when zero or negative
	DistanceThresholdKm float64
	MinTenureYears      float64
}

// Result is the output contract consumed by the preview/approve UI flow
type Result struct {
	AllocationID   string    `json:"allocation_id"`
	AllocationDate time.Time `json:"allocation_date"`

	TotalRequests     int `json:"total_requests"`
	MatchedRequests   int `json:"matched_requests"`
	UnmatchedRequests int `json:"unmatched_requests"`

	MatchedAllocations   []model.MatchedAllocation `json:"matched_allocations"`
	UnmatchedTransferIDs []int64                   `json:"unmatched_transfer_ids"`

	FairnessScore   float64         `json:"fairness_score"`
	FairnessDetails FairnessDetails `json:"fairness_details"`
	Recommendations []string        `json:"recommendations"`

	Summary          string        `json:"allocation_summary"`
	AlgorithmVersion string        `json:"algorithm_version"`
	ProcessingTime   time.Duration `json:"processing_time"`
}

// Run executes one allocation run: validate the criteria configuration,
// score every (request, preferred unit) pair, assign greedily under the
// capacity limits, and audit the outcome.
//
// Configuration errors (bad weights, unknown criterion methods) abort the
// whole run before any scoring - no partial results. Per-candidate gaps
// (missing address, missing rating) are absorbed as neutral sub-scores.
//
// Only requests in HR_APPROVED status are eligible; everything else in
// Input.Requests is ignored. An empty eligible set is not an error.
func Run(input Input) (*Result, error) {
	start := time.Now()

	criteria, err := NormalizeCriteria(input.Criteria)
	if err != nil {
		return nil, err
	}

	threshold := input.DistanceThresholdKm
	if threshold <= 0 {
		threshold = DefaultDistanceThresholdKm
	}
	minTenure := input.MinTenureYears
	if minTenure <= 0 {
		minTenure = DefaultMinTenureYears
	}

	eligible := make([]model.TransferRequest, 0, len(input.Requests))
	for _, req := range input.Requests {
		if req.Status == model.StatusHRApproved {
			eligible = append(eligible, req)
		}
	}

	result := &Result{
		AllocationID:     uuid.NewString(),
		AllocationDate:   time.Now().UTC(),
		AlgorithmVersion: AlgorithmVersion,
	}

	if len(eligible) == 0 {
		result.MatchedAllocations = []model.MatchedAllocation{}
		result.UnmatchedTransferIDs = []int64{}
		result.FairnessDetails = FairnessDetails{GenderBalanceMaintained: true}
		result.Summary = "no approved requests to allocate"
		result.Recommendations = []string{"No transfer requests are approved for allocation."}
		result.ProcessingTime = time.Since(start)
		return result, nil
	}

	tracker := NewCapacityTracker(input.UnitLimits, input.UnitGradeLimits)
	scorer := NewScorer(criteria, tracker, input.EmployeeAddresses, input.UnitAddresses, threshold, minTenure)

	allocations := Solve(eligible, scorer, tracker)

	details, fairnessScore, recommendations := Audit(allocations, eligible, input.GenderBaselines)

	matchedIDs := make(map[int64]bool, len(allocations))
	for _, alloc := range allocations {
		matchedIDs[alloc.TransferID] = true
	}
	unmatched := make([]int64, 0, len(eligible)-len(allocations))
	for _, req := range eligible {
		if !matchedIDs[req.TransferID] {
			unmatched = append(unmatched, req.TransferID)
		}
	}

	result.TotalRequests = len(eligible)
	result.MatchedRequests = len(allocations)
	result.UnmatchedRequests = len(unmatched)
	result.MatchedAllocations = allocations
	result.UnmatchedTransferIDs = unmatched
	result.FairnessScore = fairnessScore
	result.FairnessDetails = details
	result.Recommendations = recommendations
	result.Summary = fmt.Sprintf("allocated %d of %d approved requests", len(allocations), len(eligible))
	result.ProcessingTime = time.Since(start)

	return result, nil
}
