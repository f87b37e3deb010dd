package domain

import (
	"time"

	"github.com/google/uuid"
)

type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusResponded EnquiryStatus = "responded"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusResponded, EnquiryStatusClosed:
		return true
	}
	return false
}

type Enquiry struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	PropertyID *uuid.UUID    `db:"property_id" json:"property_id,omitempty"`
	Name       string        `db:"name" json:"name"`
	Email      string        `db:"email" json:"email"`
	Phone      *string       `db:"phone" json:"phone,omitempty"`
	Message    string        `db:"message" json:"message"`
	Status     EnquiryStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

type EnquiryListFilter struct {
	Statuses []EnquiryStatus
	Limit    int
	Offset   int
}
