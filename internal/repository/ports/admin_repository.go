package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	List(ctx context.Context) ([]domain.Admin, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
