package repositories

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// TutorRepository provides access to the normalized tutor directory.
type TutorRepository interface {
	// List returns the full normalized directory in upstream order.
	List(ctx context.Context) ([]entities.Tutor, error)

	// GetByID returns the tutor at the given batch position.
	GetByID(ctx context.Context, id int) (*entities.Tutor, error)
}

// TutorSearchRepository indexes and searches tutors in an external search
// engine. Implementations are optional; callers fall back to in-memory
// filtering when none is wired.
type TutorSearchRepository interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, tutor *entities.Tutor) error
	IndexBatch(ctx context.Context, tutors []entities.Tutor) error
	Search(ctx context.Context, query string, limit int) ([]entities.Tutor, error)
}

// TutorRegistrar forwards a registration to the upstream directory.
type TutorRegistrar interface {
	Register(ctx context.Context, reg *entities.Registration, image []byte, imageName, recaptchaToken string) error
}
