package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

type EnquiryRepository struct {
	db *sqlx.DB
}

func NewEnquiryRepo(db *sqlx.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	const query = `
        INSERT INTO enquiries (property_id, name, email, phone, message, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, property_id, name, email, phone, message, status, created_at
    `
	row := r.db.QueryRowxContext(ctx, query,
		enquiry.PropertyID, enquiry.Name, enquiry.Email, enquiry.Phone,
		enquiry.Message, enquiry.Status,
	)
	var stored domain.Enquiry
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *EnquiryRepository) List(ctx context.Context, filter domain.EnquiryListFilter) ([]domain.Enquiry, error) {
	var builder strings.Builder
	builder.WriteString(`
        SELECT id, property_id, name, email, phone, message, status, created_at
        FROM enquiries
        WHERE 1 = 1
    `)

	params := make([]any, 0, 3)

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			if status.Valid() {
				statuses = append(statuses, string(status))
			}
		}
		if len(statuses) > 0 {
			placeholder := fmt.Sprintf("$%d", len(params)+1)
			builder.WriteString("\n\tAND status = ANY(" + placeholder + ")")
			params = append(params, pq.StringArray(statuses))
		}
	}

	builder.WriteString("\n\tORDER BY created_at DESC")

	limitPlaceholder := fmt.Sprintf("$%d", len(params)+1)
	offsetPlaceholder := fmt.Sprintf("$%d", len(params)+2)
	builder.WriteString("\n\tLIMIT " + limitPlaceholder + " OFFSET " + offsetPlaceholder)
	params = append(params, filter.Limit, filter.Offset)

	enquiries := make([]domain.Enquiry, 0)
	if err := r.db.SelectContext(ctx, &enquiries, builder.String(), params...); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	const query = `
        UPDATE enquiries
        SET status = $2
        WHERE id = $1
        RETURNING id, property_id, name, email, phone, message, status, created_at
    `
	var enquiry domain.Enquiry
	if err := r.db.GetContext(ctx, &enquiry, query, id, status); err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepository) CountByStatus(ctx context.Context) (map[domain.EnquiryStatus]int, error) {
	const query = `
        SELECT status, COUNT(*)::int AS count
        FROM enquiries
        GROUP BY status
    `
	rows := make([]struct {
		Status domain.EnquiryStatus `db:"status"`
		Count  int                  `db:"count"`
	}, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	counts := make(map[domain.EnquiryStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountPerMonth returns at most `months` calendar buckets, the current
// month included.
func (r *EnquiryRepository) CountPerMonth(ctx context.Context, months int) ([]domain.MonthlyEnquiryCount, error) {
	const query = `
        SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
               COUNT(*)::int AS count
        FROM enquiries
        WHERE created_at >= date_trunc('month', NOW()) - make_interval(months => $1 - 1)
        GROUP BY 1
        ORDER BY 1 ASC
    `
	counts := make([]domain.MonthlyEnquiryCount, 0)
	if err := r.db.SelectContext(ctx, &counts, query, months); err != nil {
		return nil, err
	}
	return counts, nil
}

var _ ports.EnquiryRepository = (*EnquiryRepository)(nil)
