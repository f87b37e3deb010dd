package domain

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       string    `db:"price" json:"price"`
	Location    string    `db:"location" json:"location"`
	Beds        int       `db:"beds" json:"beds"`
	Baths       int       `db:"baths" json:"baths"`
	Size        string    `db:"size" json:"size"`
	Tag         *string   `db:"tag" json:"tag,omitempty"`
	TagColor    *string   `db:"tag_color" json:"tag_color,omitempty"`
	MainImage   string    `db:"main_image" json:"main_image"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	Gallery   []PropertyImage   `db:"-" json:"gallery,omitempty"`
	Amenities []string          `db:"-" json:"amenities,omitempty"`
	Features  []PropertyFeature `db:"-" json:"features,omitempty"`
}

type PropertyImage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PropertyID uuid.UUID `db:"property_id" json:"property_id"`
	URL        string    `db:"url" json:"url"`
	Ordering   int       `db:"ordering" json:"ordering"`
}

// PropertyFeature is a label/value pair such as "Year Built" / "1998".
type PropertyFeature struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PropertyID uuid.UUID `db:"property_id" json:"property_id"`
	Label      string    `db:"label" json:"label"`
	Value      string    `db:"value" json:"value"`
}

// PropertyFields carries the writable columns for create and update. Child
// collections replace the stored ones wholesale inside the same transaction.
type PropertyFields struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Location    string            `json:"location"`
	Beds        int               `json:"beds"`
	Baths       int               `json:"baths"`
	Size        string            `json:"size"`
	Tag         *string           `json:"tag,omitempty"`
	TagColor    *string           `json:"tag_color,omitempty"`
	MainImage   string            `json:"main_image"`
	IsAvailable *bool             `json:"is_available,omitempty"`
	Gallery     []string          `json:"gallery,omitempty"`
	Amenities   []string          `json:"amenities,omitempty"`
	Features    []PropertyFeature `json:"features,omitempty"`
}

type PropertyListFilter struct {
	Location      *string
	Tags          []string
	OnlyAvailable bool
	Limit         int
	Offset        int
}
