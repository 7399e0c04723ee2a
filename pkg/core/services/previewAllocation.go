package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hady-salama/hr-portal/internal/config"
	"github.com/hady-salama/hr-portal/pkg/core/allocation"
	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// PreviewStore defines the database reads needed to assemble one
// allocation run's input
type PreviewStore interface {
	GetTransferRequests(ctx context.Context, status model.RequestStatus) ([]model.TransferRequest, error)
	GetOrganizationalUnits(ctx context.Context) ([]model.OrganizationalUnit, error)
	GetUnitCapacityLimits(ctx context.Context) ([]model.UnitCapacityLimit, error)
	GetUnitGradeLimits(ctx context.Context) ([]model.UnitGradeLimit, error)
	GetAllocationCriteria(ctx context.Context) ([]model.AllocationCriterion, error)
	GetEmployeeAddresses(ctx context.Context) (map[int64]model.Address, error)
	GetUnitAddresses(ctx context.Context) (map[int64]model.Address, error)
	GetUnitGenderBaselines(ctx context.Context) ([]model.UnitGenderBaseline, error)
}

// PreviewAllocation fetches everything an allocation run needs, runs the
// engine, and returns the preview result. It never writes: committing a
// preview is ApproveAllocations' job, so an administrator can inspect the
// fairness report and re-run with adjusted weights side-effect free.
func PreviewAllocation(
	ctx context.Context,
	store PreviewStore,
	cfg *config.Config,
	logger *zap.Logger,
) (*allocation.Result, error) {
	logger.Debug("Starting allocation preview")

	var (
		requests   []model.TransferRequest
		units      []model.OrganizationalUnit
		unitLimits []model.UnitCapacityLimit
		gradeLims  []model.UnitGradeLimit
		criteria   []model.AllocationCriterion
		empAddrs   map[int64]model.Address
		unitAddrs  map[int64]model.Address
		baselines  []model.UnitGenderBaseline
	)

	// The input collections are independent reads, fetched concurrently
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		requests, err = store.GetTransferRequests(gctx, model.StatusHRApproved)
		return err
	})
	g.Go(func() (err error) {
		units, err = store.GetOrganizationalUnits(gctx)
		return err
	})
	g.Go(func() (err error) {
		unitLimits, err = store.GetUnitCapacityLimits(gctx)
		if err != nil {
			return err
		}
		gradeLims, err = store.GetUnitGradeLimits(gctx)
		return err
	})
	g.Go(func() (err error) {
		criteria, err = store.GetAllocationCriteria(gctx)
		return err
	})
	g.Go(func() (err error) {
		empAddrs, err = store.GetEmployeeAddresses(gctx)
		if err != nil {
			return err
		}
		unitAddrs, err = store.GetUnitAddresses(gctx)
		return err
	})
	g.Go(func() (err error) {
		baselines, err = store.GetUnitGenderBaselines(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch allocation inputs: %w", err)
	}

	logger.Debug("Fetched allocation inputs",
		zap.Int("approved_requests", len(requests)),
		zap.Int("units", len(units)),
		zap.Int("unit_limits", len(unitLimits)),
		zap.Int("grade_limits", len(gradeLims)),
		zap.Int("criteria", len(criteria)))

	result, err := allocation.Run(allocation.Input{
		Requests:            requests,
		Units:               units,
		UnitLimits:          unitLimits,
		UnitGradeLimits:     gradeLims,
		Criteria:            criteria,
		EmployeeAddresses:   empAddrs,
		UnitAddresses:       unitAddrs,
		GenderBaselines:     baselines,
		DistanceThresholdKm: cfg.DistanceThresholdKm,
		MinTenureYears:      cfg.MinTenureYears,
	})
	if err != nil {
		return nil, fmt.Errorf("allocation run failed: %w", err)
	}

	logger.Info("Allocation preview complete",
		zap.String("allocation_id", result.AllocationID),
		zap.Int("total_requests", result.TotalRequests),
		zap.Int("matched_requests", result.MatchedRequests),
		zap.Float64("fairness_score", result.FairnessScore),
		zap.Duration("processing_time", result.ProcessingTime))

	return result, nil
}
