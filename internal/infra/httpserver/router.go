package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appaudits "github.com/plainweb/plainaudit/internal/application/audits"
	domai "github.com/plainweb/plainaudit/internal/domain/ai"
	domain "github.com/plainweb/plainaudit/internal/domain/audits"
	"github.com/plainweb/plainaudit/internal/middleware"
)

type Router struct {
	auditSvc *appaudits.Service
}

func NewRouter(auditSvc *appaudits.Service) http.Handler {
	r := &Router{auditSvc: auditSvc}
	mux := chi.NewRouter()

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/audit", r.wrap(r.handleAudit))
		rt.Post("/audit/raw", r.wrap(r.handleRaw))
		rt.Post("/audit/filtered", r.wrap(r.handleFiltered))
		rt.Get("/audits/latest", r.wrap(r.handleLatest))
		rt.Get("/audits/{hash}", r.wrap(r.handleGet))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidURL):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, domain.ErrNotFound), errors.Is(err, sql.ErrNoRows):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, domain.ErrAuditRunFailed):
				http.Error(w, err.Error(), http.StatusBadGateway)
			case errors.Is(err, domai.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

type auditRequest struct {
	URL      string `json:"url"`
	Force    bool   `json:"force"`
	Audience string `json:"audience"`
}

// POST /v1/audit
// Body: {"url": "...", "force": false, "audience": "owner|developer|both"}
// Runs the audit synchronously and returns the computed report (or the
// cached one when fresh).
func (r *Router) handleAudit(w http.ResponseWriter, req *http.Request) error {
	var body auditRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if err := middleware.ValidateURL(body.URL); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateAudience(body.Audience); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	middleware.IncrementAudits()
	middleware.IncrementAuditsRunning()
	defer middleware.DecrementAuditsRunning()

	result, err := r.auditSvc.Audit(req.Context(), appaudits.AuditCommand{
		URL:      body.URL,
		Force:    body.Force,
		Audience: body.Audience,
	})
	if err != nil {
		middleware.IncrementAuditsFailed()
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}

// POST /v1/audit/raw → full pruned diagnostic tree
func (r *Router) handleRaw(w http.ResponseWriter, req *http.Request) error {
	var body auditRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if err := middleware.ValidateURL(body.URL); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	tree, err := r.auditSvc.RawTree(req.Context(), body.URL)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(tree)
}

// POST /v1/audit/filtered → evidence-stripped accessibility subset
func (r *Router) handleFiltered(w http.ResponseWriter, req *http.Request) error {
	var body auditRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if err := middleware.ValidateURL(body.URL); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	tree, err := r.auditSvc.FilteredTree(req.Context(), body.URL)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(tree)
}

// GET /v1/audits/latest?limit=20
func (r *Router) handleLatest(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	list, err := r.auditSvc.Latest(req.Context(), limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/audits/{hash}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	hash := chi.URLParam(req, "hash")

	report, err := r.auditSvc.Get(req.Context(), hash)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(report)
}
