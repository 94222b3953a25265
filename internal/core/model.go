package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// VesselRecord is one planned vessel call: the cargo to move, the contracted
// daily rate, and the scheduled trip date.
type VesselRecord struct {
	ID         int
	Date       time.Time // calendar date only, no time component
	VesselName string
	Cargo      string
	DailyRate  decimal.Decimal
	Quantity   decimal.Decimal
	ClientName string
	Factory    string
}

// WarehouseRecord is one inventory entry captured alongside a vessel entry.
// It shares a submission with a VesselRecord but carries no stored reference
// to it; the two rows are linked only by the submission event.
type WarehouseRecord struct {
	ID        int
	Client    string
	Factory   string
	Cargo     string
	Quantity2 decimal.Decimal
	Place     string
}

// SubmissionResult is the outcome of one form submission. It lives for a
// single request/response cycle and is never persisted.
type SubmissionResult struct {
	Message   string
	DailyNeed *decimal.Decimal  // nil unless the trip date is in the future
	Errors    map[string]string // field name -> validation message
}

// HasErrors reports whether the submission failed validation.
func (r SubmissionResult) HasErrors() bool {
	return len(r.Errors) > 0
}
