package repositories

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// LeadRepository persists hire-request leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	ListByTutor(ctx context.Context, tutorID int, limit int) ([]*entities.Lead, error)
}

// RegistrationRepository persists the audit copy of tutor registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entities.Registration) error
}
