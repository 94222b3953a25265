package core_test

import (
	"testing"

	"stevedore-planner/internal/core"
)

// validEntryForm returns a form that passes validation.
func validEntryForm() map[string]string {
	return map[string]string{
		"date":              "2026-09-15",
		"vessel_name":       "MV Aurora",
		"cargo":             "wheat",
		"daily_rate":        "1500.00",
		"quantity":          "100",
		"client_name":       "Acme Grain",
		"factory":           "Mill One",
		"client":            "Acme Grain",
		"factory_warehouse": "Mill One",
		"cargo_warehouse":   "wheat",
		"quantity2":         "40",
		"place":             "Shed 3",
	}
}

func TestValidateEntryForm_Valid(t *testing.T) {
	errs := core.ValidateEntryForm(validEntryForm())
	if len(errs) != 0 {
		t.Errorf("expected no errors for valid form, got %v", errs)
	}
}

func TestValidateEntryForm_EachRequiredField(t *testing.T) {
	for _, field := range core.RequiredFields {
		t.Run(field, func(t *testing.T) {
			form := validEntryForm()
			delete(form, field)

			errs := core.ValidateEntryForm(form)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if errs[field] != "This field is required." {
				t.Errorf("errs[%q] = %q", field, errs[field])
			}
		})
	}
}

func TestValidateEntryForm_AllFieldsMissing(t *testing.T) {
	errs := core.ValidateEntryForm(map[string]string{})
	if len(errs) != len(core.RequiredFields) {
		t.Fatalf("expected %d errors, got %d: %v", len(core.RequiredFields), len(errs), errs)
	}
	for _, field := range core.RequiredFields {
		if errs[field] != "This field is required." {
			t.Errorf("missing required-field error for %q", field)
		}
	}
}

func TestValidateEntryForm_InvalidDate(t *testing.T) {
	for _, bad := range []string{"2026-02-30", "15-09-2026", "soon", "2026/09/15"} {
		form := validEntryForm()
		form["date"] = bad

		errs := core.ValidateEntryForm(form)
		if errs["date"] != "Invalid date format. Use 'YYYY-MM-DD'." {
			t.Errorf("date %q: errs[date] = %q", bad, errs["date"])
		}
		if len(errs) != 1 {
			t.Errorf("date %q: expected only the date error, got %v", bad, errs)
		}
	}
}

func TestValidateEntryForm_ErrorsAccumulate(t *testing.T) {
	// A bad date and a missing field are reported together.
	form := validEntryForm()
	form["date"] = "not-a-date"
	form["place"] = ""

	errs := core.ValidateEntryForm(form)
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	if errs["date"] != "Invalid date format. Use 'YYYY-MM-DD'." {
		t.Errorf("errs[date] = %q", errs["date"])
	}
	if errs["place"] != "This field is required." {
		t.Errorf("errs[place] = %q", errs["place"])
	}
}

func TestValidateEntryForm_NumericPresenceOnly(t *testing.T) {
	// Non-numeric text in a numeric field passes validation; conversion
	// failures are SubmitEntry's concern.
	form := validEntryForm()
	form["quantity"] = "a lot"

	if errs := core.ValidateEntryForm(form); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
