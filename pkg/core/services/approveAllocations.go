package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// ApproveStore defines the write needed to commit a previewed allocation
type ApproveStore interface {
	// CommitAllocations persists the matched allocations and transitions
	// each corresponding transfer request to ALLOCATED, atomically
	CommitAllocations(ctx context.Context, allocationID string, matched []model.MatchedAllocation) error
}

// ApproveAllocations commits a previously previewed allocation. The
// matched list is treated as opaque external input and persisted verbatim;
// it is never re-derived here, so what the administrator reviewed is
// exactly what gets committed.
func ApproveAllocations(
	ctx context.Context,
	store ApproveStore,
	logger *zap.Logger,
	allocationID string,
	matched []model.MatchedAllocation,
) error {
	if allocationID == "" {
		return fmt.Errorf("allocation id is required")
	}
	if len(matched) == 0 {
		return fmt.Errorf("no matched allocations to approve")
	}

	seen := make(map[int64]bool, len(matched))
	for _, alloc := range matched {
		if seen[alloc.TransferID] {
			return fmt.Errorf("transfer %d appears more than once in the allocation", alloc.TransferID)
		}
		seen[alloc.TransferID] = true
	}

	logger.Debug("Committing allocations",
		zap.String("allocation_id", allocationID),
		zap.Int("count", len(matched)))

	if err := store.CommitAllocations(ctx, allocationID, matched); err != nil {
		return fmt.Errorf("failed to commit allocations: %w", err)
	}

	logger.Info("Allocations committed",
		zap.String("allocation_id", allocationID),
		zap.Int("count", len(matched)))

	return nil
}
