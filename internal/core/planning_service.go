package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	msgFormErrors = "There were errors in the form submission."
	msgDataAdded  = "Data added successfully."
	msgDateInPast = "Trip date must be in the future."
)

// PlanningService orchestrates one planning submission end to end:
// validation, the paired vessel/warehouse insert, and the daily-need
// calculation.
type PlanningService interface {
	// SubmitEntry processes one raw form submission. It never returns an
	// error; every failure mode is reported through SubmissionResult so the
	// page can render it inline.
	//
	// Concurrent submissions are unguarded: two racing calls insert
	// independently with no locking or deduplication. Acceptable for the
	// intended single-operator usage.
	SubmitEntry(ctx context.Context, form map[string]string, now time.Time) SubmissionResult
	// Listings returns the current vessel and warehouse rows for display.
	Listings(ctx context.Context) ([]VesselRecord, []WarehouseRecord, error)
}

type planningService struct {
	store PlanningStore
}

// NewPlanningService returns a PlanningService backed by the given store.
func NewPlanningService(store PlanningStore) PlanningService {
	return &planningService{store: store}
}

func (s *planningService) SubmitEntry(ctx context.Context, form map[string]string, now time.Time) SubmissionResult {
	errs := ValidateEntryForm(form)
	if len(errs) > 0 {
		return SubmissionResult{Message: msgFormErrors, Errors: errs}
	}

	// Validation guarantees the date parses; re-serialize it so alternate
	// spellings of the same day normalize to the canonical form.
	tripDate, _ := ParseDate(form["date"])
	form["date"] = FormatDate(tripDate)

	// Presence is validated above, conversion is not: a non-numeric value
	// fails here, before anything is persisted.
	dailyRate, err := decimal.NewFromString(form["daily_rate"])
	if err != nil {
		return errorResult(fmt.Errorf("invalid daily_rate %q: %w", form["daily_rate"], err))
	}
	quantity, err := decimal.NewFromString(form["quantity"])
	if err != nil {
		return errorResult(fmt.Errorf("invalid quantity %q: %w", form["quantity"], err))
	}
	quantity2, err := decimal.NewFromString(form["quantity2"])
	if err != nil {
		return errorResult(fmt.Errorf("invalid quantity2 %q: %w", form["quantity2"], err))
	}

	vessel := VesselRecord{
		Date:       tripDate,
		VesselName: form["vessel_name"],
		Cargo:      form["cargo"],
		DailyRate:  dailyRate,
		Quantity:   quantity,
		ClientName: form["client_name"],
		Factory:    form["factory"],
	}
	warehouse := WarehouseRecord{
		Client:    form["client"],
		Factory:   form["factory_warehouse"],
		Cargo:     form["cargo_warehouse"],
		Quantity2: quantity2,
		Place:     form["place"],
	}

	if _, _, err := s.store.InsertEntry(ctx, vessel, warehouse); err != nil {
		return errorResult(err)
	}

	// The rows are committed at this point. A trip date that is not in the
	// future overrides the success message but does not undo the insert.
	daysUntilTrip := DaysUntil(tripDate, now)
	if daysUntilTrip <= 0 {
		return SubmissionResult{Message: msgDateInPast, Errors: map[string]string{}}
	}

	dailyNeed := quantity.Sub(quantity2).Div(decimal.NewFromInt(int64(daysUntilTrip)))
	return SubmissionResult{
		Message:   msgDataAdded,
		DailyNeed: &dailyNeed,
		Errors:    map[string]string{},
	}
}

func (s *planningService) Listings(ctx context.Context) ([]VesselRecord, []WarehouseRecord, error) {
	vessels, err := s.store.ListVessels(ctx)
	if err != nil {
		return nil, nil, err
	}
	warehouses, err := s.store.ListWarehouses(ctx)
	if err != nil {
		return nil, nil, err
	}
	return vessels, warehouses, nil
}

func errorResult(err error) SubmissionResult {
	return SubmissionResult{
		Message: fmt.Sprintf("Error: %v", err),
		Errors:  map[string]string{},
	}
}
