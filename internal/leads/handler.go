package leads

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mareksuchodolski12-hash/marek-it-website/internal/observability/metrics"
	"github.com/mareksuchodolski12-hash/marek-it-website/pkg/logging"
)

// User-facing messages returned by the lead endpoint. These are part of the
// client contract; the form controller renders them verbatim.
const (
	MsgMissingFields = "Uzupełnij: branża, problem, opis, kontakt."
	MsgServerError   = "Błąd serwera. Spróbuj później."
)

// DefaultMaxBodyBytes caps the lead request body at 200 KB.
const DefaultMaxBodyBytes = 200 * 1024

// Notifier is told about stored leads. Implementations must tolerate a nil
// receiver so an unconfigured notifier stays a no-op.
type Notifier interface {
	LeadStored(ctx context.Context, lead *Lead)
}

// Response is the stable JSON envelope for every lead endpoint reply.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HandlerConfig holds the dependencies of the lead endpoint.
type HandlerConfig struct {
	Store        Store
	Logger       *logging.Logger
	Metrics      *metrics.LeadMetrics
	Notifier     Notifier
	MaxBodyBytes int64
}

// Handler handles HTTP requests for lead submissions
type Handler struct {
	store        Store
	logger       *logging.Logger
	metrics      *metrics.LeadMetrics
	notifier     Notifier
	maxBodyBytes int64
}

// NewHandler creates a new lead handler
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		store:        cfg.Store,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		notifier:     cfg.Notifier,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// SubmitLead handles POST /api/lead requests
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	// Lenient parse: a malformed body is treated as an empty submission and
	// falls through to the required-field check below.
	var req SubmitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("lead body parse failed", "error", err)
		req = SubmitLeadRequest{}
	}

	if err := req.Validate(); err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		h.logger.Info("lead rejected", "reason", "missing_fields")
		WriteJSON(w, http.StatusBadRequest, Response{OK: false, Error: MsgMissingFields})
		return
	}

	lead := NewLead(&req)

	if err := h.store.Append(r.Context(), lead); err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeStoreError)
		h.logger.Error("lead append failed", "error", err, "lead_id", lead.ID)
		WriteJSON(w, http.StatusInternalServerError, Response{OK: false, Error: MsgServerError})
		return
	}

	h.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	h.logger.Info("lead stored", "lead_id", lead.ID, "industry", lead.Industry)

	if h.notifier != nil {
		// The send outlives the request; detach it from request cancellation.
		go h.notifier.LeadStored(context.WithoutCancel(r.Context()), lead)
	}

	WriteJSON(w, http.StatusOK, Response{OK: true})
}

// WriteJSON writes the envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
