package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

type OTPCodeRepository struct {
	db *sqlx.DB
}

func NewOTPCodeRepo(db *sqlx.DB) *OTPCodeRepository {
	return &OTPCodeRepository{db: db}
}

func (r *OTPCodeRepository) Create(ctx context.Context, email, code string, expiresAt time.Time) (*domain.OTPCode, error) {
	const query = `
        INSERT INTO otp_codes (email, code, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, email, code, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, code, expiresAt)
	var otp domain.OTPCode
	if err := row.StructScan(&otp); err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPCodeRepository) FindMatch(ctx context.Context, email, code string, now time.Time) (*domain.OTPCode, error) {
	const query = `
        SELECT id, email, code, expires_at, created_at
        FROM otp_codes
        WHERE email = $1 AND code = $2 AND expires_at > $3
        ORDER BY created_at DESC
        LIMIT 1
    `
	var otp domain.OTPCode
	if err := r.db.GetContext(ctx, &otp, query, email, code, now); err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *OTPCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM otp_codes WHERE id = $1`, id)
	return err
}

var _ ports.OTPCodeRepository = (*OTPCodeRepository)(nil)
