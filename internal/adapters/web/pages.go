package web

import (
	"encoding/json"
	"net/http"
	"time"

	"stevedore-planner/internal/core"

	"go.uber.org/zap"
)

// PageData is the typed view-model for the planning page. The service stays
// free of presentation concerns; everything the template needs is assembled
// here.
type PageData struct {
	Message    string
	DailyNeed  string // formatted decimal, empty when unset
	ErrorsJSON string // errors map serialized for display, empty when none
	Errors     map[string]string
	Vessels    []core.VesselRecord
	Warehouses []core.WarehouseRecord
}

// indexPage handles GET / — renders the empty form plus current listings.
func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, core.SubmissionResult{})
}

// indexSubmit handles POST / — runs the submission workflow and re-renders
// the page with its outcome.
func (h *Handler) indexSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderIndex(w, r, core.SubmissionResult{Message: "Error: invalid form submission."})
		return
	}

	form := make(map[string]string, len(core.RequiredFields))
	for _, field := range core.RequiredFields {
		form[field] = r.PostFormValue(field)
	}

	result := h.svc.SubmitEntry(r.Context(), form, time.Now())
	h.renderIndex(w, r, result)
}

// renderIndex fetches fresh listings and renders the page. A listing failure
// degrades to an inline error message rather than a failed response.
func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, result core.SubmissionResult) {
	data := PageData{
		Message: result.Message,
		Errors:  result.Errors,
	}
	if result.DailyNeed != nil {
		data.DailyNeed = result.DailyNeed.String()
	}
	if len(result.Errors) > 0 {
		if b, err := json.Marshal(result.Errors); err == nil {
			data.ErrorsJSON = string(b)
		}
	}

	vessels, warehouses, err := h.svc.Listings(r.Context())
	if err != nil {
		h.log.Error("listing fetch failed",
			zap.Error(err),
			zap.String("request_id", requestIDFromContext(r.Context())),
		)
		if data.Message == "" {
			data.Message = "Error: " + err.Error()
		}
	}
	data.Vessels = vessels
	data.Warehouses = warehouses

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		h.log.Error("template render failed",
			zap.Error(err),
			zap.String("request_id", requestIDFromContext(r.Context())),
		)
	}
}
