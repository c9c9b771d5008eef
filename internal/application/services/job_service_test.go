package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/application/services"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

func sampleJobs() []entities.Job {
	return []entities.Job{
		{ID: 0, City: "Lahore", Subjects: "Math, Physics", Gender: "Female", Grade: "9", Fee: 15000, Status: entities.JobStatusOpen},
		{ID: 1, City: "Karachi", Subjects: "English", Gender: "Male", Grade: "5", Fee: 8000, Status: entities.JobStatusOpen},
		{ID: 2, City: "Lahore", Subjects: "Chemistry", Gender: "Both", Grade: "10", Fee: 20000, Status: entities.JobStatusClosed},
	}
}

func TestJobService_List_FiltersByCityAndFee(t *testing.T) {
	service := services.NewJobService(&stubJobRepo{jobs: sampleJobs()})

	page, err := service.List(context.Background(), services.JobQuery{
		Criteria: directory.JobCriteria{City: "Lahore", FeeMin: 10000, FeeMax: 18000},
	})

	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, 0, page.Jobs[0].ID)
	assert.True(t, page.Complete)
}

func TestJobService_List_KeepsClosedPostings(t *testing.T) {
	service := services.NewJobService(&stubJobRepo{jobs: sampleJobs()})

	page, err := service.List(context.Background(), services.JobQuery{})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.Jobs[2].Closed())
}

func TestJobService_List_WindowUsesListPageSize(t *testing.T) {
	jobs := make([]entities.Job, 25)
	for i := range jobs {
		jobs[i] = entities.Job{ID: i, Status: entities.JobStatusOpen}
	}
	service := services.NewJobService(&stubJobRepo{jobs: jobs})

	page, err := service.List(context.Background(), services.JobQuery{})
	require.NoError(t, err)
	assert.Equal(t, directory.ListPageSize, page.Visible)
	assert.False(t, page.Complete)

	page, err = service.List(context.Background(), services.JobQuery{Visible: 30})
	require.NoError(t, err)
	assert.Equal(t, 25, page.Visible)
	assert.True(t, page.Complete)
}

func TestJobService_FeeBounds(t *testing.T) {
	service := services.NewJobService(&stubJobRepo{jobs: sampleJobs()})

	bounds, err := service.FeeBounds(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8000.0, bounds.Min)
	assert.Equal(t, 20000.0, bounds.Max)
}
