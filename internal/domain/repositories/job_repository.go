package repositories

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// JobRepository provides access to the normalized job board.
type JobRepository interface {
	// List returns all normalized job postings in upstream order.
	List(ctx context.Context) ([]entities.Job, error)
}
