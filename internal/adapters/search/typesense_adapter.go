package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/repositories"
	tsclient "github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements tutor text search using Typesense. The
// index is rebuilt from the normalized directory by the indexer; document
// IDs are the batch positions, so search hits resolve back to the same
// tutors the directory view shows.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.TutorSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the tutors collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(tsclient.TutorsCollection).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: tsclient.TutorsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "subjects", Type: "string[]"},
			{Name: "qualification", Type: "string", Optional: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "areas", Type: "string[]", Optional: pointer.True()},
			{Name: "location", Type: "geopoint"},
			{Name: "verified", Type: "bool"},
			{Name: "position", Type: "int32"},
		},
		DefaultSortingField: pointer.String("position"),
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts one tutor document
func (a *TypesenseAdapter) Index(ctx context.Context, tutor *entities.Tutor) error {
	_, err := a.client.Client().Collection(tsclient.TutorsCollection).Documents().Upsert(ctx, tutorDocument(tutor))
	if err != nil {
		return fmt.Errorf("failed to index tutor: %w", err)
	}
	return nil
}

// IndexBatch upserts the whole directory.
func (a *TypesenseAdapter) IndexBatch(ctx context.Context, tutors []entities.Tutor) error {
	for i := range tutors {
		if err := a.Index(ctx, &tutors[i]); err != nil {
			return err
		}
	}
	return nil
}

// Search queries tutors by name, subject, city and area.
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]entities.Tutor, error) {
	if limit <= 0 {
		limit = 30
	}
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,subjects,city,areas"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(tsclient.TutorsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search tutors: %w", err)
	}

	tutors := []entities.Tutor{}
	if result.Hits == nil {
		return tutors, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		tutors = append(tutors, tutorFromDocument(*hit.Document))
	}
	return tutors, nil
}

func tutorDocument(tutor *entities.Tutor) map[string]any {
	return map[string]any{
		"id":            strconv.Itoa(tutor.ID),
		"name":          tutor.Name,
		"subjects":      tutor.Subjects,
		"qualification": tutor.Qualification,
		"city":          tutor.City,
		"areas":         tutor.Areas,
		"location":      []float64{tutor.Location.Latitude, tutor.Location.Longitude},
		"verified":      tutor.Verified,
		"position":      tutor.ID,
	}
}

func tutorFromDocument(doc map[string]any) entities.Tutor {
	tutor := entities.Tutor{
		Location: entities.Location{
			Latitude:  entities.FallbackLatitude,
			Longitude: entities.FallbackLongitude,
		},
	}

	if id, ok := doc["id"].(string); ok {
		if n, err := strconv.Atoi(id); err == nil {
			tutor.ID = n
		}
	}
	if name, ok := doc["name"].(string); ok {
		tutor.Name = name
	}
	if city, ok := doc["city"].(string); ok {
		tutor.City = city
	}
	if qualification, ok := doc["qualification"].(string); ok {
		tutor.Qualification = qualification
	}
	if verified, ok := doc["verified"].(bool); ok {
		tutor.Verified = verified
	}
	tutor.Subjects = stringSlice(doc["subjects"])
	tutor.Areas = stringSlice(doc["areas"])

	if loc, ok := doc["location"].([]any); ok && len(loc) == 2 {
		if lat, ok := loc[0].(float64); ok {
			tutor.Location.Latitude = lat
		}
		if lng, ok := loc[1].(float64); ok {
			tutor.Location.Longitude = lng
		}
	}
	return tutor
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
