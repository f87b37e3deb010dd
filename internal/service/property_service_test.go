package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
)

type fakePropertyRepo struct {
	createInput  domain.PropertyFields
	createResult *domain.Property
	createErr    error

	updateInput struct {
		id     uuid.UUID
		fields domain.PropertyFields
	}
	updateResult *domain.Property
	updateErr    error

	deleteInput uuid.UUID
	deleteErr   error

	findResult *domain.Property
	findErr    error

	listInputs []domain.PropertyListFilter
	listResult []domain.Property
	listErr    error

	total, available int
	countErr         error
}

func (f *fakePropertyRepo) Create(ctx context.Context, fields domain.PropertyFields) (*domain.Property, error) {
	f.createInput = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &domain.Property{ID: uuid.New(), Title: fields.Title}, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, id uuid.UUID, fields domain.PropertyFields) (*domain.Property, error) {
	f.updateInput = struct {
		id     uuid.UUID
		fields domain.PropertyFields
	}{id: id, fields: fields}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return &domain.Property{ID: id, Title: fields.Title}, nil
}

func (f *fakePropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleteInput = id
	return f.deleteErr
}

func (f *fakePropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findResult != nil {
		clone := *f.findResult
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakePropertyRepo) List(ctx context.Context, filter domain.PropertyListFilter) ([]domain.Property, error) {
	f.listInputs = append(f.listInputs, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Property(nil), f.listResult...), nil
}

func (f *fakePropertyRepo) CountByAvailability(ctx context.Context) (int, int, error) {
	return f.total, f.available, f.countErr
}

func validFields() domain.PropertyFields {
	return domain.PropertyFields{
		Title:       "Seafront Villa",
		Description: "Four bedrooms over two floors.",
		Price:       "1250000",
		Location:    "Algarve",
		Beds:        4,
		Baths:       3,
		Size:        "320 sqm",
		MainImage:   "https://cdn/villa.webp",
	}
}

func TestPropertyCreateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and accepts valid fields", func(t *testing.T) {
		repo := &fakePropertyRepo{}
		svc := NewPropertyService(repo)

		fields := validFields()
		fields.Title = "  Seafront Villa  "
		if _, err := svc.Create(ctx, fields); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createInput.Title != "Seafront Villa" {
			t.Fatalf("title should be trimmed, got %q", repo.createInput.Title)
		}
	})

	cases := []struct {
		name   string
		mutate func(*domain.PropertyFields)
	}{
		{"missing title", func(f *domain.PropertyFields) { f.Title = "  " }},
		{"missing description", func(f *domain.PropertyFields) { f.Description = "" }},
		{"missing location", func(f *domain.PropertyFields) { f.Location = "" }},
		{"missing main image", func(f *domain.PropertyFields) { f.MainImage = "" }},
		{"missing price", func(f *domain.PropertyFields) { f.Price = "" }},
		{"non-numeric price", func(f *domain.PropertyFields) { f.Price = "ask agent" }},
		{"negative beds", func(f *domain.PropertyFields) { f.Beds = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakePropertyRepo{}
			svc := NewPropertyService(repo)

			fields := validFields()
			tc.mutate(&fields)
			if _, err := svc.Create(ctx, fields); !errors.Is(err, ErrPropertyValidation) {
				t.Fatalf("expected ErrPropertyValidation, got %v", err)
			}
		})
	}
}

func TestPropertyUpdateNotFound(t *testing.T) {
	repo := &fakePropertyRepo{updateErr: sql.ErrNoRows}
	svc := NewPropertyService(repo)

	if _, err := svc.Update(context.Background(), uuid.New(), validFields()); !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyGetNotFound(t *testing.T) {
	svc := NewPropertyService(&fakePropertyRepo{})
	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyListClampsPaging(t *testing.T) {
	ctx := context.Background()
	repo := &fakePropertyRepo{}
	svc := NewPropertyService(repo)

	if _, err := svc.List(ctx, domain.PropertyListFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(ctx, domain.PropertyListFilter{Limit: 10000, Offset: -5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.listInputs[0].Limit != defaultPropertyListLimit {
		t.Fatalf("zero limit should default to %d, got %d", defaultPropertyListLimit, repo.listInputs[0].Limit)
	}
	if repo.listInputs[1].Limit != maxPropertyListLimit || repo.listInputs[1].Offset != 0 {
		t.Fatalf("out-of-range paging should be clamped, got %+v", repo.listInputs[1])
	}
}
