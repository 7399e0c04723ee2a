package postgres

import (
	"context"
	"fmt"

	"github.com/hady-salama/hr-portal/pkg/core/model"
)

// GetOrganizationalUnits retrieves the unit directory
func (db *DB) GetOrganizationalUnits(ctx context.Context) ([]model.OrganizationalUnit, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT unit_id, unit_name
		FROM organizational_units
		ORDER BY unit_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizational units: %w", err)
	}
	defer rows.Close()

	var units []model.OrganizationalUnit
	for rows.Next() {
		var u model.OrganizationalUnit
		if err := rows.Scan(&u.UnitID, &u.UnitName); err != nil {
			return nil, fmt.Errorf("failed to scan organizational unit: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizational units: %w", err)
	}

	return units, nil
}

// GetUnitCapacityLimits retrieves the per-unit transfer ceilings
func (db *DB) GetUnitCapacityLimits(ctx context.Context) ([]model.UnitCapacityLimit, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT unit_id, max_total
		FROM unit_capacity_limits
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit capacity limits: %w", err)
	}
	defer rows.Close()

	var limits []model.UnitCapacityLimit
	for rows.Next() {
		var l model.UnitCapacityLimit
		if err := rows.Scan(&l.UnitID, &l.MaxTotal); err != nil {
			return nil, fmt.Errorf("failed to scan unit capacity limit: %w", err)
		}
		limits = append(limits, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit capacity limits: %w", err)
	}

	return limits, nil
}

// GetUnitGradeLimits retrieves the per-unit per-grade transfer ceilings
func (db *DB) GetUnitGradeLimits(ctx context.Context) ([]model.UnitGradeLimit, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT unit_id, grade_id, max_for_grade
		FROM unit_grade_limits
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit grade limits: %w", err)
	}
	defer rows.Close()

	var limits []model.UnitGradeLimit
	for rows.Next() {
		var l model.UnitGradeLimit
		if err := rows.Scan(&l.UnitID, &l.GradeID, &l.MaxForGrade); err != nil {
			return nil, fmt.Errorf("failed to scan unit grade limit: %w", err)
		}
		limits = append(limits, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit grade limits: %w", err)
	}

	return limits, nil
}

// GetUnitGenderBaselines retrieves each unit's pre-allocation headcount
// split
func (db *DB) GetUnitGenderBaselines(ctx context.Context) ([]model.UnitGenderBaseline, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT unit_id, headcount, female_count
		FROM unit_gender_baselines
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit gender baselines: %w", err)
	}
	defer rows.Close()

	var baselines []model.UnitGenderBaseline
	for rows.Next() {
		var b model.UnitGenderBaseline
		if err := rows.Scan(&b.UnitID, &b.Headcount, &b.FemaleCount); err != nil {
			return nil, fmt.Errorf("failed to scan unit gender baseline: %w", err)
		}
		baselines = append(baselines, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit gender baselines: %w", err)
	}

	return baselines, nil
}

// GetEmployeeAddresses retrieves the employee address book keyed by
// employee id
func (db *DB) GetEmployeeAddresses(ctx context.Context) (map[int64]model.Address, error) {
	return db.getAddresses(ctx, `
		SELECT employee_id, governorate, city, district, street, building,
		       apartment, latitude, longitude
		FROM employee_addresses
	`)
}

// GetUnitAddresses retrieves the unit address book keyed by unit id
func (db *DB) GetUnitAddresses(ctx context.Context) (map[int64]model.Address, error) {
	return db.getAddresses(ctx, `
		SELECT unit_id, governorate, city, district, street, building,
		       apartment, latitude, longitude
		FROM unit_addresses
	`)
}

func (db *DB) getAddresses(ctx context.Context, query string) (map[int64]model.Address, error) {
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	addresses := make(map[int64]model.Address)
	for rows.Next() {
		var id int64
		var a model.Address
		if err := rows.Scan(
			&id, &a.Governorate, &a.City, &a.District, &a.Street,
			&a.Building, &a.Apartment, &a.Latitude, &a.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses[id] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating addresses: %w", err)
	}

	return addresses, nil
}
