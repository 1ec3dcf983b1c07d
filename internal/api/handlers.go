package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eagleinfo/business-api/internal/identifier"
	"github.com/eagleinfo/business-api/internal/lookup"
)

const apiVersion = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	lookups *lookup.Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(lookups *lookup.Service) *Handlers {
	return &Handlers{lookups: lookups}
}

// HandleRoot returns service identity and the available endpoints.
//
//	GET /
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Business Lookup API",
		"version": apiVersion,
		"status":  "running",
		"endpoints": map[string]string{
			"by_domain":         "/business/by-domain?domain=",
			"by_linkedin":       "/business/by-linkedin?linkedin_url=",
			"by_place_id":       "/business/by-place-id?place_id=",
			"by_email":          "/business/by-email?email=",
			"by_email_batch":    "/business/by-email/batch",
			"by_google_id":      "/business/by-google-id?google_id=",
			"enriched_contacts": "/business/contacts/enriched?limit=&offset=",
			"health":            "/health",
			"metrics":           "/metrics",
		},
	})
}

// GetByDomain looks up businesses by website domain.
//
//	GET /business/by-domain?domain=example.com
func (h *Handlers) GetByDomain(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("domain")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "domain query parameter is required")
		return
	}

	result, err := h.lookups.ByDomain(r.Context(), raw)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByLinkedin looks up businesses by LinkedIn URL or slug.
//
//	GET /business/by-linkedin?linkedin_url=https://linkedin.com/company/acme
func (h *Handlers) GetByLinkedin(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("linkedin_url")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "linkedin_url query parameter is required")
		return
	}

	result, err := h.lookups.ByLinkedin(r.Context(), raw)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByPlaceID looks up the business with the given Google place ID.
//
//	GET /business/by-place-id?place_id=ChIJ...
func (h *Handlers) GetByPlaceID(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("place_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "place_id query parameter is required")
		return
	}

	result, err := h.lookups.ByPlaceID(r.Context(), raw)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByEmail looks up the business owning the given email address.
//
//	GET /business/by-email?email=owner@example.com
func (h *Handlers) GetByEmail(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("email")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	result, err := h.lookups.ByEmail(r.Context(), raw)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByGoogleID looks up businesses by google_id, CID or KG MID.
//
//	GET /business/by-google-id?google_id=0x89c25a...
func (h *Handlers) GetByGoogleID(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("google_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "google_id query parameter is required")
		return
	}

	result, err := h.lookups.ByGoogleID(r.Context(), raw)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type emailBatchRequest struct {
	Emails []string `json:"emails"`
}

// PostEmailBatch resolves a set of email addresses in one statement.
//
//	POST /business/by-email/batch  {"emails": ["a@x.com", "b@y.com"]}
func (h *Handlers) PostEmailBatch(w http.ResponseWriter, r *http.Request) {
	var req emailBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be JSON with an emails array")
		return
	}

	result, err := h.lookups.ByEmailBatch(r.Context(), req.Emails)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetEnrichedContacts pages through businesses with a primary email.
//
//	GET /business/contacts/enriched?limit=100&offset=0
func (h *Handlers) GetEnrichedContacts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)

	result, err := h.lookups.EnrichedContacts(r.Context(), limit, offset)
	if err != nil {
		respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// respondLookupError maps service errors onto HTTP status codes.
// Validation problems carry their message through; store failures are
// sanitized.
func respondLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identifier.ErrInvalid), errors.Is(err, lookup.ErrBatchTooLarge):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lookup.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondSafeError(w, http.StatusInternalServerError, err,
			safeErrorMessage(http.StatusInternalServerError, err))
	}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
