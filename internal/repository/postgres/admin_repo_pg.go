package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepo(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*domain.Admin, error) {
	const query = `
        INSERT INTO admins (name, email, password, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, password, role, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, name, email, passwordHash, role)
	var admin domain.Admin
	if err := row.StructScan(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `
        SELECT id, name, email, password, role, created_at
        FROM admins
        WHERE email = $1
    `
	var admin domain.Admin
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	const query = `
        SELECT id, name, email, password, role, created_at
        FROM admins
        WHERE id = $1
    `
	var admin domain.Admin
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	const query = `
        UPDATE admins
        SET password = $2
        WHERE email = $1
    `
	_, err := r.db.ExecContext(ctx, query, email, passwordHash)
	return err
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
        UPDATE admins
        SET password = $2
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, passwordHash)
	return err
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	const query = `
        SELECT id, name, email, password, role, created_at
        FROM admins
        ORDER BY created_at ASC
    `
	admins := make([]domain.Admin, 0)
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id)
	return err
}

var _ ports.AdminRepository = (*AdminRepository)(nil)
