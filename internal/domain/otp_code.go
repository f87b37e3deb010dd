package domain

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is one issued reset code. Several unexpired codes may coexist for
// the same email; verification consumes the most recent match by deleting
// the row, so there is no "used" flag.
type OTPCode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Code      string    `db:"code" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
