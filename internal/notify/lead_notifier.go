package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mareksuchodolski12-hash/marek-it-website/internal/leads"
	"github.com/mareksuchodolski12-hash/marek-it-website/pkg/logging"
)

// LeadNotifier emails the site owner about each stored lead. A nil notifier
// is safe to call and does nothing, so callers never have to branch on
// whether notifications are configured.
type LeadNotifier struct {
	sender EmailSender
	to     string
	logger *logging.Logger
}

// NewLeadNotifier creates a notifier delivering to the given address.
// Returns nil when no recipient is configured.
func NewLeadNotifier(sender EmailSender, to string, logger *logging.Logger) *LeadNotifier {
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadNotifier{sender: sender, to: to, logger: logger}
}

// LeadStored sends the notification email for one stored lead. Errors are
// logged, never returned; notification failure must not affect the
// submission response.
func (n *LeadNotifier) LeadStored(ctx context.Context, lead *leads.Lead) {
	if n == nil {
		return
	}

	msg := EmailMessage{
		To:      n.to,
		Subject: fmt.Sprintf("Nowy lead: %s", lead.Industry),
		Body:    formatLeadBody(lead),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Error("lead notification failed", "error", err, "lead_id", lead.ID)
	}
}

func formatLeadBody(lead *leads.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", lead.ID)
	fmt.Fprintf(&b, "Data: %s\n", lead.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Branża: %s\n", lead.Industry)
	fmt.Fprintf(&b, "Problem: %s\n", lead.Problem)
	if lead.Tools != "" {
		fmt.Fprintf(&b, "Narzędzia: %s\n", lead.Tools)
	}
	fmt.Fprintf(&b, "Opis: %s\n", lead.Message)
	fmt.Fprintf(&b, "Kontakt: %s\n", lead.Contact)
	if lead.Website != "" {
		fmt.Fprintf(&b, "Strona: %s\n", lead.Website)
	}
	fmt.Fprintf(&b, "MVP: %t\nAutomatyzacja: %t\n", lead.WantsMvp, lead.WantsAutomation)
	return b.String()
}
