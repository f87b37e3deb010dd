package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type OTPCodeRepository interface {
	Create(ctx context.Context, email, code string, expiresAt time.Time) (*domain.OTPCode, error)
	// FindMatch returns the most recent unexpired row for email+code, or an
	// error when nothing matches. Expired and wrong-code misses are not
	// distinguished.
	FindMatch(ctx context.Context, email, code string, now time.Time) (*domain.OTPCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
