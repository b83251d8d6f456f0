package leads

import (
	"fmt"
	"math/rand"
	"time"
)

// NewLeadID returns an opaque identifier of the form
// lead_<16 hex chars of randomness><epoch millis in hex>. Not cryptographic;
// unique enough for a low-volume append-only log.
func NewLeadID() string {
	return fmt.Sprintf("lead_%016x%x", rand.Uint64(), time.Now().UnixMilli())
}
