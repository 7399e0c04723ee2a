package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// ListStore defines the read needed to list transfer requests
type ListStore interface {
	GetTransferRequests(ctx context.Context, status model.RequestStatus) ([]model.TransferRequest, error)
}

// ListTransferRequests fetches transfer requests, optionally filtered to a
// lifecycle status. An empty status lists everything.
func ListTransferRequests(
	ctx context.Context,
	store ListStore,
	logger *zap.Logger,
	status model.RequestStatus,
) ([]model.TransferRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("unknown request status %q", status)
	}

	requests, err := store.GetTransferRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfer requests: %w", err)
	}

	logger.Debug("Fetched transfer requests",
		zap.String("status", string(status)),
		zap.Int("count", len(requests)))

	return requests, nil
}
