package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

var (
	ErrPropertyValidation = errors.New("property validation failed")
	ErrPropertyNotFound   = errors.New("property not found")
)

const (
	defaultPropertyListLimit = 50
	maxPropertyListLimit     = 200
)

type PropertyService struct {
	properties ports.PropertyRepository
}

func NewPropertyService(propertyRepo ports.PropertyRepository) *PropertyService {
	return &PropertyService{properties: propertyRepo}
}

func (s *PropertyService) Create(ctx context.Context, fields domain.PropertyFields) (*domain.Property, error) {
	if err := validatePropertyFields(&fields); err != nil {
		return nil, err
	}
	return s.properties.Create(ctx, fields)
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, fields domain.PropertyFields) (*domain.Property, error) {
	if err := validatePropertyFields(&fields); err != nil {
		return nil, err
	}
	prop, err := s.properties.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return prop, nil
}

func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	prop, err := s.properties.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return prop, nil
}

func (s *PropertyService) List(ctx context.Context, filter domain.PropertyListFilter) ([]domain.Property, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPropertyListLimit
	}
	if filter.Limit > maxPropertyListLimit {
		filter.Limit = maxPropertyListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.properties.List(ctx, filter)
}

func validatePropertyFields(fields *domain.PropertyFields) error {
	fields.Title = strings.TrimSpace(fields.Title)
	fields.Description = strings.TrimSpace(fields.Description)
	fields.Price = strings.TrimSpace(fields.Price)
	fields.Location = strings.TrimSpace(fields.Location)
	fields.Size = strings.TrimSpace(fields.Size)
	fields.MainImage = strings.TrimSpace(fields.MainImage)

	if fields.Title == "" {
		return fmt.Errorf("%w: title is required", ErrPropertyValidation)
	}
	if fields.Description == "" {
		return fmt.Errorf("%w: description is required", ErrPropertyValidation)
	}
	if fields.Location == "" {
		return fmt.Errorf("%w: location is required", ErrPropertyValidation)
	}
	if fields.MainImage == "" {
		return fmt.Errorf("%w: main image is required", ErrPropertyValidation)
	}
	if fields.Price == "" {
		return fmt.Errorf("%w: price is required", ErrPropertyValidation)
	}
	if _, err := strconv.ParseFloat(fields.Price, 64); err != nil {
		return fmt.Errorf("%w: price must be numeric", ErrPropertyValidation)
	}
	if fields.Beds < 0 || fields.Baths < 0 {
		return fmt.Errorf("%w: beds and baths cannot be negative", ErrPropertyValidation)
	}
	return nil
}
