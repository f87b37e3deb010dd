package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

var (
	ErrEnquiryValidation = errors.New("enquiry validation failed")
	ErrEnquiryNotFound   = errors.New("enquiry not found")
)

const (
	defaultEnquiryListLimit = 50
	maxEnquiryListLimit     = 200
)

type EnquiryCreateInput struct {
	PropertyID *uuid.UUID
	Name       string
	Email      string
	Phone      *string
	Message    string
}

type EnquiryService struct {
	enquiries ports.EnquiryRepository
}

func NewEnquiryService(enquiryRepo ports.EnquiryRepository) *EnquiryService {
	return &EnquiryService{enquiries: enquiryRepo}
}

func (s *EnquiryService) Create(ctx context.Context, input EnquiryCreateInput) (*domain.Enquiry, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	message := strings.TrimSpace(input.Message)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrEnquiryValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrEnquiryValidation)
	}
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrEnquiryValidation)
	}

	var phone *string
	if input.Phone != nil {
		if trimmed := strings.TrimSpace(*input.Phone); trimmed != "" {
			phone = &trimmed
		}
	}

	return s.enquiries.Create(ctx, &domain.Enquiry{
		PropertyID: input.PropertyID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		Status:     domain.EnquiryStatusPending,
	})
}

func (s *EnquiryService) List(ctx context.Context, filter domain.EnquiryListFilter) ([]domain.Enquiry, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultEnquiryListLimit
	}
	if filter.Limit > maxEnquiryListLimit {
		filter.Limit = maxEnquiryListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.enquiries.List(ctx, filter)
}

func (s *EnquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrEnquiryValidation, status)
	}
	enquiry, err := s.enquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return enquiry, nil
}
