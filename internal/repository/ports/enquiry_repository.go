package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error)
	List(ctx context.Context, filter domain.EnquiryListFilter) ([]domain.Enquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EnquiryStatus) (*domain.Enquiry, error)
	CountByStatus(ctx context.Context) (map[domain.EnquiryStatus]int, error)
	// CountPerMonth covers a window of exactly `months` calendar months,
	// counting the current month as the last bucket.
	CountPerMonth(ctx context.Context, months int) ([]domain.MonthlyEnquiryCount, error)
}
