package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

// RegistrationAdapter implements the RegistrationRepository interface
type RegistrationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewRegistrationAdapter creates a new registration adapter
func NewRegistrationAdapter(client *postgres.Client) repositories.RegistrationRepository {
	return &RegistrationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists the audit copy of a tutor registration
func (a *RegistrationAdapter) Create(ctx context.Context, reg *entities.Registration) error {
	record := goqu.Record{
		"id":             reg.ID,
		"name":           reg.Name,
		"qualification":  reg.Qualification,
		"subject":        reg.Subject,
		"major_subjects": reg.MajorSubjects,
		"experience":     reg.Experience,
		"phone":          reg.Phone,
		"bio":            reg.Bio,
		"exact_location": reg.ExactLocation,
		"latitude":       reg.Location.Latitude,
		"longitude":      reg.Location.Longitude,
		"image_url":      reg.ImageURL,
		"created_at":     reg.CreatedAt,
	}

	query, args, err := a.db.Insert("registrations").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create registration", err)
	}
	return nil
}
