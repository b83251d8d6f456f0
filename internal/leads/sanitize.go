package leads

import "strings"

// Sanitize normalizes untrusted form input: runs of whitespace collapse to a
// single space, the result is trimmed and hard-truncated to max runes. Total
// and idempotent; never fails.
func Sanitize(value string, max int) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	if max >= 0 {
		if runes := []rune(collapsed); len(runes) > max {
			collapsed = string(runes[:max])
		}
	}
	// A hard cut can land inside the gap after a word; trim again so the
	// function stays idempotent.
	return strings.TrimSpace(collapsed)
}
