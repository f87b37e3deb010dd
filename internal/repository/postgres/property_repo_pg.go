package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/ports"
)

type PropertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepo(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = `id, title, description, price, location, beds, baths, size,
	       tag, tag_color, main_image, is_available, created_at, updated_at`

func (r *PropertyRepository) Create(ctx context.Context, fields domain.PropertyFields) (*domain.Property, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO properties (
			title, description, price, location, beds, baths, size,
			tag, tag_color, main_image, is_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + propertyColumns

	available := true
	if fields.IsAvailable != nil {
		available = *fields.IsAvailable
	}

	var prop domain.Property
	row := tx.QueryRowxContext(ctx, query,
		fields.Title, fields.Description, fields.Price, fields.Location,
		fields.Beds, fields.Baths, fields.Size,
		nullString(fields.Tag), nullString(fields.TagColor),
		fields.MainImage, available,
	)
	if err := row.StructScan(&prop); err != nil {
		return nil, err
	}

	if err := insertChildRows(ctx, tx, prop.ID, fields); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, prop.ID)
}

func (r *PropertyRepository) Update(ctx context.Context, id uuid.UUID, fields domain.PropertyFields) (*domain.Property, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const query = `
		UPDATE properties
		SET title = $2,
		    description = $3,
		    price = $4,
		    location = $5,
		    beds = $6,
		    baths = $7,
		    size = $8,
		    tag = $9,
		    tag_color = $10,
		    main_image = $11,
		    is_available = COALESCE($12, is_available),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + propertyColumns

	var prop domain.Property
	row := tx.QueryRowxContext(ctx, query, id,
		fields.Title, fields.Description, fields.Price, fields.Location,
		fields.Beds, fields.Baths, fields.Size,
		nullString(fields.Tag), nullString(fields.TagColor),
		fields.MainImage, nullBool(fields.IsAvailable),
	)
	if err := row.StructScan(&prop); err != nil {
		return nil, err
	}

	// Child rows are replaced wholesale; partial updates are not attempted.
	for _, table := range []string{"property_images", "property_amenities", "property_features"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE property_id = $1`, table), id); err != nil {
			return nil, err
		}
	}
	if err := insertChildRows(ctx, tx, id, fields); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func insertChildRows(ctx context.Context, tx *sqlx.Tx, propertyID uuid.UUID, fields domain.PropertyFields) error {
	for i, url := range fields.Gallery {
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		const query = `INSERT INTO property_images (property_id, url, ordering) VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, query, propertyID, trimmed, i); err != nil {
			return err
		}
	}
	for _, name := range fields.Amenities {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		const query = `INSERT INTO property_amenities (property_id, name) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, query, propertyID, trimmed); err != nil {
			return err
		}
	}
	for _, feature := range fields.Features {
		label := strings.TrimSpace(feature.Label)
		value := strings.TrimSpace(feature.Value)
		if label == "" || value == "" {
			continue
		}
		const query = `INSERT INTO property_features (property_id, label, value) VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, query, propertyID, label, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Gallery, amenity and feature rows go with it via ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	const query = `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1
	`
	var prop domain.Property
	if err := r.db.GetContext(ctx, &prop, query, id); err != nil {
		return nil, err
	}

	const imageQuery = `
		SELECT id, property_id, url, ordering
		FROM property_images
		WHERE property_id = $1
		ORDER BY ordering ASC
	`
	images := make([]domain.PropertyImage, 0)
	if err := r.db.SelectContext(ctx, &images, imageQuery, id); err != nil {
		return nil, err
	}
	prop.Gallery = images

	const amenityQuery = `
		SELECT name
		FROM property_amenities
		WHERE property_id = $1
		ORDER BY name ASC
	`
	amenities := make([]string, 0)
	if err := r.db.SelectContext(ctx, &amenities, amenityQuery, id); err != nil {
		return nil, err
	}
	prop.Amenities = amenities

	const featureQuery = `
		SELECT id, property_id, label, value
		FROM property_features
		WHERE property_id = $1
		ORDER BY label ASC
	`
	features := make([]domain.PropertyFeature, 0)
	if err := r.db.SelectContext(ctx, &features, featureQuery, id); err != nil {
		return nil, err
	}
	prop.Features = features

	return &prop, nil
}

func (r *PropertyRepository) List(ctx context.Context, filter domain.PropertyListFilter) ([]domain.Property, error) {
	var builder strings.Builder
	builder.WriteString(`
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE 1 = 1
	`)

	params := make([]any, 0, 4)

	if filter.OnlyAvailable {
		builder.WriteString("\n\tAND is_available = true")
	}

	if filter.Location != nil {
		if location := strings.TrimSpace(*filter.Location); location != "" {
			placeholder := fmt.Sprintf("$%d", len(params)+1)
			builder.WriteString("\n\tAND location ILIKE " + placeholder)
			params = append(params, "%"+location+"%")
		}
	}

	if len(filter.Tags) > 0 {
		tags := make([]string, 0, len(filter.Tags))
		for _, tag := range filter.Tags {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
		if len(tags) > 0 {
			placeholder := fmt.Sprintf("$%d", len(params)+1)
			builder.WriteString("\n\tAND tag = ANY(" + placeholder + ")")
			params = append(params, pq.StringArray(tags))
		}
	}

	builder.WriteString("\n\tORDER BY created_at DESC")

	limitPlaceholder := fmt.Sprintf("$%d", len(params)+1)
	offsetPlaceholder := fmt.Sprintf("$%d", len(params)+2)
	builder.WriteString("\n\tLIMIT " + limitPlaceholder + " OFFSET " + offsetPlaceholder)
	params = append(params, filter.Limit, filter.Offset)

	properties := make([]domain.Property, 0)
	if err := r.db.SelectContext(ctx, &properties, builder.String(), params...); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) CountByAvailability(ctx context.Context) (int, int, error) {
	const query = `
		SELECT COUNT(*)::int AS total,
		       COUNT(*) FILTER (WHERE is_available)::int AS available
		FROM properties
	`
	var counts struct {
		Total     int `db:"total"`
		Available int `db:"available"`
	}
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return 0, 0, err
	}
	return counts.Total, counts.Available, nil
}

func nullString(ptr *string) sql.NullString {
	if ptr == nil {
		return sql.NullString{Valid: false}
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: v, Valid: true}
}

func nullBool(ptr *bool) sql.NullBool {
	if ptr == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *ptr, Valid: true}
}

var _ ports.PropertyRepository = (*PropertyRepository)(nil)
