package repositories

import (
	"context"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// LocationRepository provides the Province/District/Tehsil/Area hierarchy.
type LocationRepository interface {
	Tree(ctx context.Context) (entities.LocationTree, error)
}
