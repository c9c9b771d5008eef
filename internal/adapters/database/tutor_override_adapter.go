package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// TutorOverrideAdapter implements the TutorOverrideRepository interface
type TutorOverrideAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTutorOverrideAdapter creates a new tutor override adapter
func NewTutorOverrideAdapter(client *postgres.Client) repositories.TutorOverrideRepository {
	return &TutorOverrideAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Upsert merges the set fields of the override into the stored row. Only
// the columns present in the edit are written, so earlier edits to other
// columns survive.
func (a *TutorOverrideAdapter) Upsert(ctx context.Context, override *entities.TutorOverride) error {
	record := goqu.Record{
		"tutor_id":   override.TutorID,
		"updated_at": override.UpdatedAt,
	}
	if override.Name != nil {
		record["name"] = *override.Name
	}
	if override.Qualification != nil {
		record["qualification"] = *override.Qualification
	}
	if override.Experience != nil {
		record["experience"] = *override.Experience
	}
	if override.City != nil {
		record["city"] = *override.City
	}
	if override.Phone != nil {
		record["phone"] = *override.Phone
	}
	if override.Bio != nil {
		record["bio"] = *override.Bio
	}
	if override.ImageURL != nil {
		record["image_url"] = *override.ImageURL
	}
	if override.Subjects != nil {
		record["subjects"] = strings.Join(override.Subjects, ", ")
	}
	if override.Latitude != nil {
		record["latitude"] = *override.Latitude
	}
	if override.Longitude != nil {
		record["longitude"] = *override.Longitude
	}
	if override.Verified != nil {
		record["verified"] = *override.Verified
	}

	query, args, err := a.db.Insert("tutor_overrides").
		Rows(record).
		OnConflict(goqu.DoUpdate("tutor_id", record)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert tutor override", err)
	}
	return nil
}

// Get retrieves the override for a tutor, nil when absent
func (a *TutorOverrideAdapter) Get(ctx context.Context, tutorID int) (*entities.TutorOverride, error) {
	query, args, err := a.selectQuery().
		Where(goqu.Ex{"tutor_id": tutorID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tutor override", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanOverride(rows)
}

// List retrieves all stored overrides
func (a *TutorOverrideAdapter) List(ctx context.Context) ([]*entities.TutorOverride, error) {
	query, args, err := a.selectQuery().
		Order(goqu.C("tutor_id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list tutor overrides", err)
	}
	defer rows.Close()

	var overrides []*entities.TutorOverride
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate tutor overrides", err)
	}
	return overrides, nil
}

func (a *TutorOverrideAdapter) selectQuery() *goqu.SelectDataset {
	return a.db.Select(
		"tutor_id", "name", "qualification", "experience", "city", "phone",
		"bio", "image_url", "subjects", "latitude", "longitude", "verified",
		"updated_at",
	).From("tutor_overrides")
}

func scanOverride(rows *sql.Rows) (*entities.TutorOverride, error) {
	var (
		override      entities.TutorOverride
		name          sql.NullString
		qualification sql.NullString
		experience    sql.NullString
		city          sql.NullString
		phone         sql.NullString
		bio           sql.NullString
		imageURL      sql.NullString
		subjects      sql.NullString
		latitude      sql.NullFloat64
		longitude     sql.NullFloat64
		verified      sql.NullBool
	)

	if err := rows.Scan(
		&override.TutorID,
		&name,
		&qualification,
		&experience,
		&city,
		&phone,
		&bio,
		&imageURL,
		&subjects,
		&latitude,
		&longitude,
		&verified,
		&override.UpdatedAt,
	); err != nil {
		return nil, apperrors.NewInternalError("failed to scan tutor override", err)
	}

	if name.Valid {
		override.Name = &name.String
	}
	if qualification.Valid {
		override.Qualification = &qualification.String
	}
	if experience.Valid {
		override.Experience = &experience.String
	}
	if city.Valid {
		override.City = &city.String
	}
	if phone.Valid {
		override.Phone = &phone.String
	}
	if bio.Valid {
		override.Bio = &bio.String
	}
	if imageURL.Valid {
		override.ImageURL = &imageURL.String
	}
	if subjects.Valid {
		override.Subjects = splitSubjects(subjects.String)
	}
	if latitude.Valid {
		override.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		override.Longitude = &longitude.Float64
	}
	if verified.Valid {
		override.Verified = &verified.Bool
	}
	return &override, nil
}

func splitSubjects(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
