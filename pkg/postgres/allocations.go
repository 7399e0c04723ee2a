package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// CommitAllocations persists an approved allocation in one transaction:
// each matched allocation is recorded and its transfer request is
// transitioned to ALLOCATED with the score and reason the administrator
// reviewed.
func (db *DB) CommitAllocations(ctx context.Context, allocationID string, matched []model.MatchedAllocation) error {
	if len(matched) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, alloc := range matched {
		if _, err := tx.Exec(ctx, `
			INSERT INTO allocations (id, allocation_id, transfer_id, unit_id, job_id, score, reason)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.NewString(), allocationID, alloc.TransferID, alloc.AllocatedUnitID,
			alloc.AllocatedJobID, alloc.Score, alloc.Reason); err != nil {
			return fmt.Errorf("failed to insert allocation for transfer %d: %w", alloc.TransferID, err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE transfer_requests
			SET status = $1,
			    allocated_unit_id = $2,
			    allocated_job_id = $3,
			    allocation_score = $4,
			    allocation_reason = $5
			WHERE transfer_id = $6 AND status = $7
		`, model.StatusAllocated, alloc.AllocatedUnitID, alloc.AllocatedJobID,
			alloc.Score, alloc.Reason, alloc.TransferID, model.StatusHRApproved)
		if err != nil {
			return fmt.Errorf("failed to update transfer request %d: %w", alloc.TransferID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("transfer request %d is not in %s status", alloc.TransferID, model.StatusHRApproved)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit allocations: %w", err)
	}

	return nil
}
