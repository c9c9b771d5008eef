package upstream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/providers"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
	apperrors "github.com/aplusacademy/tutor-directory/backend/pkg/errors"
)

const (
	locationsCacheKey = "directory:locations"
	locationsTTL      = 24 * time.Hour
)

// LocationCatalogAdapter implements LocationRepository against the remote
// directory API. The hierarchy changes rarely, so the tree is cached with
// the store's own TTL.
type LocationCatalogAdapter struct {
	client directoryapi.Client
	cache  providers.CacheProvider
}

// NewLocationCatalogAdapter creates a new location catalog adapter. cache
// may be nil.
func NewLocationCatalogAdapter(client directoryapi.Client, cache providers.CacheProvider) *LocationCatalogAdapter {
	return &LocationCatalogAdapter{client: client, cache: cache}
}

var _ repositories.LocationRepository = (*LocationCatalogAdapter)(nil)

// Tree returns the Province/District/Tehsil/Area hierarchy.
func (a *LocationCatalogAdapter) Tree(ctx context.Context) (entities.LocationTree, error) {
	if a.cache != nil {
		if data, err := a.cache.Get(ctx, locationsCacheKey); err == nil {
			var tree entities.LocationTree
			if err := json.Unmarshal(data, &tree); err == nil {
				return tree, nil
			}
		}
	}

	raw, err := a.client.GetLocations(ctx)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to fetch locations", err)
	}
	tree := entities.LocationTree(raw)

	if a.cache != nil {
		if data, err := json.Marshal(tree); err == nil {
			if err := a.cache.Set(ctx, locationsCacheKey, data, int(locationsTTL.Seconds())); err != nil {
				log.Warn().Err(err).Msg("failed to cache location tree")
			}
		}
	}
	return tree, nil
}
