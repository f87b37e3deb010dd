package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type PropertyRepository interface {
	// Create inserts the property row plus its gallery, amenity and feature
	// child rows inside a single transaction.
	Create(ctx context.Context, fields domain.PropertyFields) (*domain.Property, error)
	// Update rewrites the parent row and replaces all child rows inside a
	// single transaction.
	Update(ctx context.Context, id uuid.UUID, fields domain.PropertyFields) (*domain.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyListFilter) ([]domain.Property, error)
	CountByAvailability(ctx context.Context) (total int, available int, err error)
}
