package allocation

import (
	"sort"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// candidate is one request together with its scored preferred units
type candidate struct {
	request   model.TransferRequest
	scores    map[int64]Score
	bestScore float64
}

// Solve assigns requests to units with a deterministic greedy pass. It is a
// heuristic, not an exact solver: once a request is matched or exhausted it
// is never revisited, and committed capacity is never released to satisfy a
// later request.
//
// Ordering:
//
//  1. Requests are processed in descending order of their best-achievable
//     score across their own preferred units, which favours the candidates
//     the system can satisfy most strongly. Ties break on ascending
//     transfer ID (submission order) so runs are reproducible.
//  2. Within a request, preferred units are tried in the employee's stated
//     ranking (ascending preference order), not by score.
//
// A request whose preferred units are all out of capacity is left
// unmatched. That is ordinary output, not an error.
func Solve(requests []model.TransferRequest, scorer *Scorer, tracker *CapacityTracker) []model.MatchedAllocation {
	candidates := make([]candidate, 0, len(requests))

	for _, req := range requests {
		c := candidate{
			request: req,
			scores:  make(map[int64]Score, len(req.PreferredUnits)),
		}
		for _, pref := range req.PreferredUnits {
			score := scorer.Score(req, pref.UnitID)
			c.scores[pref.UnitID] = score
			if score.Total > c.bestScore {
				c.bestScore = score.Total
			}
		}
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].bestScore != candidates[j].bestScore {
			return candidates[i].bestScore > candidates[j].bestScore
		}
		return candidates[i].request.TransferID < candidates[j].request.TransferID
	})

	allocations := make([]model.MatchedAllocation, 0, len(candidates))

	for _, c := range candidates {
		prefs := make([]model.UnitPreference, len(c.request.PreferredUnits))
		copy(prefs, c.request.PreferredUnits)
		sort.Slice(prefs, func(i, j int) bool {
			if prefs[i].PreferenceOrder != prefs[j].PreferenceOrder {
				return prefs[i].PreferenceOrder < prefs[j].PreferenceOrder
			}
			return prefs[i].UnitID < prefs[j].UnitID
		})

		for _, pref := range prefs {
			if tracker.Remaining(pref.UnitID) <= 0 {
				continue
			}
			if tracker.HasGradeLimit(pref.UnitID, c.request.GradeID) &&
				tracker.RemainingForGrade(pref.UnitID, c.request.GradeID) <= 0 {
				continue
			}

			if err := tracker.Commit(pref.UnitID, c.request.GradeID); err != nil {
				// Unreachable given the checks above; the tracker rejects
				// over-commit rather than going negative
				continue
			}

			score := c.scores[pref.UnitID]
			allocations = append(allocations, model.MatchedAllocation{
				TransferID:      c.request.TransferID,
				AllocatedUnitID: pref.UnitID,
				Score:           score.Total,
				Reason:          score.Reason,
			})
			break
		}
	}

	return allocations
}
