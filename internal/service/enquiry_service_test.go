package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type fakeEnquiryRepo struct {
	created   []*domain.Enquiry
	createErr error

	listInputs []domain.EnquiryListFilter
	listResult []domain.Enquiry
	listErr    error

	statusInput struct {
		id     uuid.UUID
		status domain.EnquiryStatus
	}
	statusErr error

	countsByStatus map[domain.EnquiryStatus]int
	monthly        []domain.MonthlyEnquiryCount
	monthsInput    int
}

func (f *fakeEnquiryRepo) Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *enquiry
	stored.ID = uuid.New()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeEnquiryRepo) List(ctx context.Context, filter domain.EnquiryListFilter) ([]domain.Enquiry, error) {
	f.listInputs = append(f.listInputs, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Enquiry(nil), f.listResult...), nil
}

func (f *fakeEnquiryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	f.statusInput = struct {
		id     uuid.UUID
		status domain.EnquiryStatus
	}{id: id, status: status}
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &domain.Enquiry{ID: id, Status: status}, nil
}

func (f *fakeEnquiryRepo) CountByStatus(ctx context.Context) (map[domain.EnquiryStatus]int, error) {
	return f.countsByStatus, nil
}

func (f *fakeEnquiryRepo) CountPerMonth(ctx context.Context, months int) ([]domain.MonthlyEnquiryCount, error) {
	f.monthsInput = months
	return append([]domain.MonthlyEnquiryCount(nil), f.monthly...), nil
}

func TestEnquiryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes fields and starts pending", func(t *testing.T) {
		repo := &fakeEnquiryRepo{}
		svc := NewEnquiryService(repo)

		phone := "  +351 900 000 000 "
		enquiry, err := svc.Create(ctx, EnquiryCreateInput{
			Name:    "  Alex  ",
			Email:   " Alex@Example.COM ",
			Phone:   &phone,
			Message: " Is the villa still available? ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if enquiry.Name != "Alex" || enquiry.Email != "alex@example.com" {
			t.Fatalf("fields not normalized: %+v", enquiry)
		}
		if enquiry.Phone == nil || *enquiry.Phone != "+351 900 000 000" {
			t.Fatalf("phone not trimmed: %v", enquiry.Phone)
		}
		if enquiry.Status != domain.EnquiryStatusPending {
			t.Fatalf("new enquiries must start pending, got %q", enquiry.Status)
		}
	})

	t.Run("blank phone becomes nil", func(t *testing.T) {
		repo := &fakeEnquiryRepo{}
		svc := NewEnquiryService(repo)

		blank := "   "
		enquiry, err := svc.Create(ctx, EnquiryCreateInput{Name: "Alex", Email: "alex@example.com", Phone: &blank, Message: "Hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if enquiry.Phone != nil {
			t.Fatalf("expected nil phone, got %q", *enquiry.Phone)
		}
	})

	cases := []struct {
		name  string
		input EnquiryCreateInput
	}{
		{"missing name", EnquiryCreateInput{Email: "a@b.com", Message: "Hi"}},
		{"missing email", EnquiryCreateInput{Name: "Alex", Message: "Hi"}},
		{"email without at sign", EnquiryCreateInput{Name: "Alex", Email: "not-an-email", Message: "Hi"}},
		{"missing message", EnquiryCreateInput{Name: "Alex", Email: "a@b.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewEnquiryService(&fakeEnquiryRepo{})
			if _, err := svc.Create(ctx, tc.input); !errors.Is(err, ErrEnquiryValidation) {
				t.Fatalf("expected ErrEnquiryValidation, got %v", err)
			}
		})
	}
}

func TestEnquiryUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := NewEnquiryService(&fakeEnquiryRepo{})
		if _, err := svc.UpdateStatus(ctx, uuid.New(), "archived"); !errors.Is(err, ErrEnquiryValidation) {
			t.Fatalf("expected ErrEnquiryValidation, got %v", err)
		}
	})

	t.Run("missing enquiry", func(t *testing.T) {
		svc := NewEnquiryService(&fakeEnquiryRepo{statusErr: sql.ErrNoRows})
		if _, err := svc.UpdateStatus(ctx, uuid.New(), domain.EnquiryStatusClosed); !errors.Is(err, ErrEnquiryNotFound) {
			t.Fatalf("expected ErrEnquiryNotFound, got %v", err)
		}
	})

	t.Run("passes through valid transitions", func(t *testing.T) {
		repo := &fakeEnquiryRepo{}
		svc := NewEnquiryService(repo)

		id := uuid.New()
		enquiry, err := svc.UpdateStatus(ctx, id, domain.EnquiryStatusResponded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if enquiry.Status != domain.EnquiryStatusResponded || repo.statusInput.id != id {
			t.Fatalf("unexpected update: %+v / %+v", enquiry, repo.statusInput)
		}
	})
}

func TestStatsDashboard(t *testing.T) {
	propertyRepo := &fakePropertyRepo{total: 12, available: 9}
	enquiryRepo := &fakeEnquiryRepo{
		countsByStatus: map[domain.EnquiryStatus]int{
			domain.EnquiryStatusPending:   4,
			domain.EnquiryStatusResponded: 2,
			domain.EnquiryStatusClosed:    1,
		},
		monthly: []domain.MonthlyEnquiryCount{{Month: "2026-07", Count: 3}, {Month: "2026-08", Count: 4}},
	}
	svc := NewStatsService(propertyRepo, enquiryRepo)

	stats, monthly, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalProperties != 12 || stats.AvailableProperties != 9 {
		t.Fatalf("unexpected property counts: %+v", stats)
	}
	if stats.TotalEnquiries != 7 || stats.PendingEnquiries != 4 {
		t.Fatalf("unexpected enquiry counts: %+v", stats)
	}
	if len(monthly) != 2 || monthly[1].Count != 4 {
		t.Fatalf("unexpected monthly series: %+v", monthly)
	}
	// The chart window is six buckets, current month included.
	if enquiryRepo.monthsInput != dashboardChartMonths {
		t.Fatalf("expected a %d month window, got %d", dashboardChartMonths, enquiryRepo.monthsInput)
	}
}
