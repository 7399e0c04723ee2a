package model

import "time"

// RequestStatus is the lifecycle status of a transfer request
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDING"
	StatusHRApproved RequestStatus = "HR_APPROVED"
	StatusAllocated  RequestStatus = "ALLOCATED"
	StatusRejected   RequestStatus = "REJECTED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusHRApproved, StatusAllocated, StatusRejected:
		return true
	}
	return false
}

// PerformanceRating is the latest manager assessment of an employee.
// The empty string means no assessment is on record.
type PerformanceRating string

const (
	RatingExcellent        PerformanceRating = "EXCELLENT"
	RatingGood             PerformanceRating = "GOOD"
	RatingSatisfactory     PerformanceRating = "SATISFACTORY"
	RatingNeedsImprovement PerformanceRating = "NEEDS_IMPROVEMENT"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// CalculationMethod identifies the scoring function behind an allocation
// criterion. The set is closed: criteria carrying any other method are
// rejected during criteria normalization, before a run starts.
type CalculationMethod string

const (
	MethodPreferenceRank       CalculationMethod = "preference_rank"
	MethodUnitNeed             CalculationMethod = "unit_need"
	MethodPerformance          CalculationMethod = "performance"
	MethodJobMatch             CalculationMethod = "job_match"
	MethodSpecialCircumstances CalculationMethod = "special_circumstances"
	MethodTenure               CalculationMethod = "tenure"
	MethodCustom               CalculationMethod = "custom"
)

func (m CalculationMethod) IsValid() bool {
	switch m {
	case MethodPreferenceRank, MethodUnitNeed, MethodPerformance,
		MethodJobMatch, MethodSpecialCircumstances, MethodTenure, MethodCustom:
		return true
	}
	return false
}

// UnitPreference is one entry of an employee's ranked unit wish list.
// Lower PreferenceOrder means higher priority (1 = first choice).
type UnitPreference struct {
	UnitID          int64 `json:"unit_id"`
	PreferenceOrder int   `json:"preference_order"`
}

// TransferRequest is an employee's request to move to another unit.
// Owned by the request workflow; the allocation engine only reads it.
type TransferRequest struct {
	TransferID     int64            `json:"transfer_id"`
	EmployeeID     int64            `json:"employee_id"`
	EmployeeName   string           `json:"employee_name"`
	SubmissionDate time.Time        `json:"submission_date"`
	Reason         string           `json:"reason_for_transfer"`
	PreferredUnits []UnitPreference `json:"preferred_units"`

	WillingToRelocate bool `json:"willing_to_relocate"`
	HealthCondition   bool `json:"health_condition"`
	FamilyTransfer    bool `json:"family_transfer"`

	GradeID           int64             `json:"current_grade_id"`
	TenureYears       float64           `json:"current_unit_tenure_years"`
	PerformanceRating PerformanceRating `json:"performance_rating,omitempty"`
	Gender            Gender            `json:"gender"`

	Status RequestStatus `json:"status"`
}

// OrganizationalUnit is an entry in the unit directory
type OrganizationalUnit struct {
	UnitID   int64  `json:"unit_id"`
	UnitName string `json:"unit_name"`
}

// Address is a postal address with optional geocoordinates.
// Latitude/Longitude are nil when the address has not been geocoded.
type Address struct {
	Governorate string   `json:"governorate"`
	City        string   `json:"city"`
	District    string   `json:"district,omitempty"`
	Street      string   `json:"street,omitempty"`
	Building    string   `json:"building,omitempty"`
	Apartment   string   `json:"apartment,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the address carries a geocoordinate pair
func (a *Address) HasCoordinates() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}

// UnitCapacityLimit is a hard ceiling on how many transfers a unit can
// absorb in one allocation run. Units without a limit record are
// unconstrained.
type UnitCapacityLimit struct {
	UnitID   int64 `json:"unit_id"`
	MaxTotal int   `json:"max_total"`
}

// UnitGradeLimit is a hard per-grade ceiling within a unit
type UnitGradeLimit struct {
	UnitID      int64 `json:"unit_id"`
	GradeID     int64 `json:"grade_id"`
	MaxForGrade int   `json:"max_for_grade"`
}

// AllocationCriterion is one weighted scoring criterion. Active criteria
// weights must sum to 1.00 (±0.01) for a run to be accepted.
type AllocationCriterion struct {
	CriteriaID int64             `json:"criteria_id"`
	Name       string            `json:"name"`
	Method     CalculationMethod `json:"calculation_method"`
	Weight     float64           `json:"weight"`
	Active     bool              `json:"is_active"`
}

// UnitGenderBaseline is a unit's pre-allocation headcount split, used by
// the fairness audit to detect gender-balance drift.
type UnitGenderBaseline struct {
	UnitID      int64 `json:"unit_id"`
	Headcount   int   `json:"headcount"`
	FemaleCount int   `json:"female_count"`
}

// MatchedAllocation is one committed request→unit assignment produced by
// an allocation run. It only becomes persistent state when an external
// approve step commits it.
type MatchedAllocation struct {
	TransferID      int64   `json:"transfer_id"`
	AllocatedUnitID int64   `json:"allocated_unit_id"`
	AllocatedJobID  *int64  `json:"allocated_job_id,omitempty"`
	Score           float64 `json:"allocation_score"`
	Reason          string  `json:"allocation_reason"`
}
