package entity

import (
	"time"

	"github.com/google/uuid"
)

// CashSession is the backend's view of the register session for a terminal.
// Checkout is gated on Open; everything else about the session lives server-side.
type CashSession struct {
	ID       uuid.UUID `json:"id"`
	Open     bool      `json:"open"`
	OpenedAt time.Time `json:"opened_at"`
}
