package postgres

import (
	"context"
	"fmt"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// GetTransferRequests retrieves transfer requests with their preferred
// unit rankings. An empty status retrieves every request.
func (db *DB) GetTransferRequests(ctx context.Context, status model.RequestStatus) ([]model.TransferRequest, error) {
	query := `
		SELECT transfer_id, employee_id, employee_name, submission_date,
		       reason_for_transfer, willing_to_relocate, health_condition,
		       family_transfer, current_grade_id, current_unit_tenure_years,
		       performance_rating, gender, status
		FROM transfer_requests
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY transfer_id`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer requests: %w", err)
	}
	defer rows.Close()

	var requests []model.TransferRequest
	byID := make(map[int64]int)
	for rows.Next() {
		var r model.TransferRequest
		var rating *string
		if err := rows.Scan(
			&r.TransferID, &r.EmployeeID, &r.EmployeeName, &r.SubmissionDate,
			&r.Reason, &r.WillingToRelocate, &r.HealthCondition,
			&r.FamilyTransfer, &r.GradeID, &r.TenureYears,
			&rating, &r.Gender, &r.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer request: %w", err)
		}
		if rating != nil {
			r.PerformanceRating = model.PerformanceRating(*rating)
		}
		byID[r.TransferID] = len(requests)
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer requests: %w", err)
	}

	if len(requests) == 0 {
		return requests, nil
	}

	prefRows, err := db.pool.Query(ctx, `
		SELECT transfer_id, unit_id, preference_order
		FROM preferred_units
		ORDER BY transfer_id, preference_order
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferred units: %w", err)
	}
	defer prefRows.Close()

	for prefRows.Next() {
		var transferID int64
		var pref model.UnitPreference
		if err := prefRows.Scan(&transferID, &pref.UnitID, &pref.PreferenceOrder); err != nil {
			return nil, fmt.Errorf("failed to scan preferred unit: %w", err)
		}
		if idx, ok := byID[transferID]; ok {
			requests[idx].PreferredUnits = append(requests[idx].PreferredUnits, pref)
		}
	}
	if err := prefRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preferred units: %w", err)
	}

	return requests, nil
}
