package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const referencePrefix = "BK-"

// NewBookingReference generates a collision-resistant booking reference,
// e.g. "BK-3F2A9C10D4E1". Uniqueness is ultimately enforced by the unique
// index on bookings.reference.
func NewBookingReference() string {
	id := uuid.New()
	return referencePrefix + strings.ToUpper(hex.EncodeToString(id[:])[:12])
}
