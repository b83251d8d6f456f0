package leads

import (
	"strings"
	"time"
)

// Field length limits enforced before persistence. Anything longer is
// truncated, not rejected.
const (
	MaxIndustryLen = 80
	MaxProblemLen  = 120
	MaxToolsLen    = 200
	MaxMessageLen  = 2000
	MaxContactLen  = 120
	MaxWebsiteLen  = 200
)

// Lead is one stored lead-form submission. Records are written once to the
// append-only log and never updated.
type Lead struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Industry        string    `json:"industry"`
	Problem         string    `json:"problem"`
	Tools           string    `json:"tools"`
	Message         string    `json:"message"`
	Contact         string    `json:"contact"`
	Website         string    `json:"website"`
	WantsMvp        bool      `json:"wantsMvp"`
	WantsAutomation bool      `json:"wantsAutomation"`
}

// SubmitLeadRequest is the body of POST /api/lead.
type SubmitLeadRequest struct {
	Industry        string `json:"industry"`
	Problem         string `json:"problem"`
	Tools           string `json:"tools"`
	Message         string `json:"message"`
	Contact         string `json:"contact"`
	Website         string `json:"website"`
	WantsMvp        bool   `json:"wantsMvp"`
	WantsAutomation bool   `json:"wantsAutomation"`
}

// Validate checks that every required field is non-empty after trimming.
func (r *SubmitLeadRequest) Validate() error {
	if strings.TrimSpace(r.Industry) == "" ||
		strings.TrimSpace(r.Problem) == "" ||
		strings.TrimSpace(r.Message) == "" ||
		strings.TrimSpace(r.Contact) == "" {
		return ErrMissingFields
	}
	return nil
}

// NewLead builds a persistable record from a validated request: fresh ID,
// UTC timestamp, every string field sanitized to its limit.
func NewLead(r *SubmitLeadRequest) *Lead {
	return &Lead{
		ID:              NewLeadID(),
		CreatedAt:       time.Now().UTC(),
		Industry:        Sanitize(r.Industry, MaxIndustryLen),
		Problem:         Sanitize(r.Problem, MaxProblemLen),
		Tools:           Sanitize(r.Tools, MaxToolsLen),
		Message:         Sanitize(r.Message, MaxMessageLen),
		Contact:         Sanitize(r.Contact, MaxContactLen),
		Website:         Sanitize(r.Website, MaxWebsiteLen),
		WantsMvp:        r.WantsMvp,
		WantsAutomation: r.WantsAutomation,
	}
}
