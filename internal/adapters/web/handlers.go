package web

import (
	"html/template"
	"net/http"

	"stevedore-planner/internal/core"
	webui "stevedore-planner/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds the PlanningService, the chi router, and the parsed page
// template.
type Handler struct {
	svc    core.PlanningService
	log    *zap.Logger
	router chi.Router
	tmpl   *template.Template
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc core.PlanningService, log *zap.Logger) http.Handler {
	funcs := template.FuncMap{
		"date": core.FormatDate,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(webui.Templates, "templates/*.html")
	if err != nil {
		panic("web/templates embed parse failed: " + err.Error())
	}

	h := &Handler{
		svc:  svc,
		log:  log,
		tmpl: tmpl,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))

	r.Get("/api/health", h.health)

	r.Get("/", h.indexPage)
	r.Post("/", h.indexSubmit)

	h.router = r
	return r
}

// health reports service status and store reachability.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}

	store := "ok"
	if _, _, err := h.svc.Listings(r.Context()); err != nil {
		store = "unreachable"
	}
	writeJSON(w, response{Status: "ok", Store: store})
}
