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

// LeadAdapter implements the LeadRepository interface
type LeadAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLeadAdapter creates a new lead adapter
func NewLeadAdapter(client *postgres.Client) repositories.LeadRepository {
	return &LeadAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a hire-request lead
func (a *LeadAdapter) Create(ctx context.Context, lead *entities.Lead) error {
	record := goqu.Record{
		"id":            lead.ID,
		"tutor_id":      lead.TutorID,
		"tutor_name":    lead.TutorName,
		"parent_name":   lead.ParentName,
		"parent_phone":  lead.ParentPhone,
		"student_grade": lead.StudentGrade,
		"message":       lead.Message,
		"client_key":    lead.ClientKey,
		"created_at":    lead.CreatedAt,
	}

	query, args, err := a.db.Insert("leads").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create lead", err)
	}
	return nil
}

// ListByTutor retrieves the most recent leads for a tutor
func (a *LeadAdapter) ListByTutor(ctx context.Context, tutorID int, limit int) ([]*entities.Lead, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := a.db.Select(
		"id", "tutor_id", "tutor_name", "parent_name", "parent_phone",
		"student_grade", "message", "client_key", "created_at",
	).From("leads").
		Where(goqu.Ex{"tutor_id": tutorID}).
		Order(goqu.C("created_at").Desc()).
		Limit(uint(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list leads", err)
	}
	defer rows.Close()

	var leads []*entities.Lead
	for rows.Next() {
		lead := &entities.Lead{}
		if err := rows.Scan(
			&lead.ID,
			&lead.TutorID,
			&lead.TutorName,
			&lead.ParentName,
			&lead.ParentPhone,
			&lead.StudentGrade,
			&lead.Message,
			&lead.ClientKey,
			&lead.CreatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan lead", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate leads", err)
	}
	return leads, nil
}
