// Package port exposes the lookup application over HTTP. Handlers
// translate requests into app-layer calls and map results (and domain
// errors, via errmap) back onto the wire.
package port

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/errmap"
	"github.com/numera-labs/phone-lookup-platform/internal/lookup/app"
)

const maxParseBodyBytes = 4 << 10

// lookupService is a narrow, consumer-defined interface for the lookup
// operations the handler requires. The *app.LookupService satisfies this.
type lookupService interface {
	Parse(ctx context.Context, input, defaultISO, clientIP string) (domain.ParsedNumber, error)
	Detect(ctx context.Context, input, clientIP string) (domain.CountryRecord, error)
	Countries(ctx context.Context, lang string) []app.CountryView
	Country(ctx context.Context, isoCode string) (domain.CountryRecord, error)
}

// LookupHandler implements the HTTP surface of the lookup API.
type LookupHandler struct {
	svc    lookupService
	logger *slog.Logger
}

// NewLookupHandler creates a LookupHandler backed by the given LookupService.
func NewLookupHandler(svc *app.LookupService, logger *slog.Logger) *LookupHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupHandler{svc: svc, logger: logger}
}

// Register mounts the API routes on mux.
func (h *LookupHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/countries", h.listCountries)
	mux.HandleFunc("GET /v1/countries/{iso}", h.getCountry)
	mux.HandleFunc("GET /v1/detect", h.detect)
	mux.HandleFunc("POST /v1/parse", h.parse)
}

type countriesResponse struct {
	Countries []app.CountryView `json:"countries"`
}

func (h *LookupHandler) listCountries(w http.ResponseWriter, r *http.Request) {
	views := h.svc.Countries(r.Context(), r.URL.Query().Get("lang"))
	h.writeJSON(w, r, http.StatusOK, countriesResponse{Countries: views})
}

type countryResponse struct {
	ISOCode     string `json:"iso_code"`
	LocalName   string `json:"local_name"`
	EnglishName string `json:"english_name"`
	DialCode    string `json:"dial_code"`
	MinLength   int    `json:"min_length"`
	MaxLength   int    `json:"max_length"`
}

func countryFromRecord(rec domain.CountryRecord) countryResponse {
	minLen, maxLen := domain.NationalNumberLengths(rec.Pattern.String())
	return countryResponse{
		ISOCode:     rec.ISOCode,
		LocalName:   rec.LocalName,
		EnglishName: rec.EnglishName,
		DialCode:    rec.DialCode,
		MinLength:   minLen,
		MaxLength:   maxLen,
	}
}

func (h *LookupHandler) getCountry(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Country(r.Context(), r.PathValue("iso"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, countryFromRecord(rec))
}

func (h *LookupHandler) detect(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		h.writeError(w, r, fmt.Errorf("missing input parameter: %w", domain.ErrEmptyInput))
		return
	}

	rec, err := h.svc.Detect(r.Context(), input, clientIP(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, countryFromRecord(rec))
}

type parseRequest struct {
	Input          string `json:"input"`
	DefaultCountry string `json:"default_country"`
}

type parseResponse struct {
	CountryCode    string `json:"country_code"`
	DialCode       string `json:"dial_code"`
	NationalNumber string `json:"national_number"`
	MinLength      int    `json:"min_length"`
	MaxLength      int    `json:"max_length"`
	Valid          bool   `json:"valid"`
	E164           string `json:"e164,omitempty"`
	National       string `json:"national,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (h *LookupHandler) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	body := io.LimitReader(r.Body, maxParseBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	parsed, err := h.svc.Parse(r.Context(), req.Input, req.DefaultCountry, clientIP(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := parseResponse{
		CountryCode:    parsed.CountryCode,
		DialCode:       parsed.DialCode,
		NationalNumber: parsed.NationalNumber,
		MinLength:      parsed.MinLength,
		MaxLength:      parsed.MaxLength,
		Valid:          parsed.IsValid(),
		E164:           parsed.FormatE164(),
		National:       parsed.FormatNational(),
	}
	if parsed.Err != nil {
		resp.Error = parsed.Err.Error()
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *LookupHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.WarnContext(r.Context(), "write response failed", "error", err)
	}
}

func (h *LookupHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := errmap.ToHTTPError(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"error", err, "path", r.URL.Path, "status", httpErr.StatusCode)
	}
	h.writeJSON(w, r, httpErr.StatusCode, httpErr)
}
