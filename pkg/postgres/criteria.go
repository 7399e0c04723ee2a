package postgres

import (
	"context"
	"fmt"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// GetAllocationCriteria retrieves the configured allocation criteria,
// active and inactive. Weight validation is the engine's job, not the
// store's.
func (db *DB) GetAllocationCriteria(ctx context.Context) ([]model.AllocationCriterion, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT criteria_id, name, calculation_method, weight, is_active
		FROM allocation_criteria
		ORDER BY criteria_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation criteria: %w", err)
	}
	defer rows.Close()

	var criteria []model.AllocationCriterion
	for rows.Next() {
		var c model.AllocationCriterion
		if err := rows.Scan(&c.CriteriaID, &c.Name, &c.Method, &c.Weight, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan allocation criterion: %w", err)
		}
		criteria = append(criteria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allocation criteria: %w", err)
	}

	return criteria, nil
}
