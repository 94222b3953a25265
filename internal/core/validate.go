package core

// RequiredFields lists every field a planning submission must carry, in form
// order. The first seven describe the vessel entry, the rest the warehouse
// entry.
var RequiredFields = []string{
	"date",
	"vessel_name",
	"cargo",
	"daily_rate",
	"quantity",
	"client_name",
	"factory",
	"client",
	"factory_warehouse",
	"cargo_warehouse",
	"quantity2",
	"place",
}

const (
	msgFieldRequired = "This field is required."
	msgInvalidDate   = "Invalid date format. Use 'YYYY-MM-DD'."
)

// ValidateEntryForm checks a raw submission for missing fields and a
// malformed date. Checks accumulate rather than short-circuit: every missing
// field gets its own entry, and a present-but-unparseable date gets the date
// error regardless of what other fields are missing. An empty map means the
// form is safe to persist.
//
// Numeric fields are only checked for presence here; conversion happens in
// SubmitEntry and reports its own error.
func ValidateEntryForm(form map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, field := range RequiredFields {
		if form[field] == "" {
			errs[field] = msgFieldRequired
		}
	}

	if v := form["date"]; v != "" {
		if _, ok := ParseDate(v); !ok {
			errs["date"] = msgInvalidDate
		}
	}

	return errs
}
