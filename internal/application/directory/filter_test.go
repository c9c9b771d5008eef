package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/application/directory"
	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

func tutorsInCities(cities ...string) []entities.Tutor {
	tutors := make([]entities.Tutor, len(cities))
	for i, city := range cities {
		tutors[i] = entities.Tutor{ID: i, City: city, Subjects: []string{"Math"}}
	}
	return tutors
}

func TestFilterTutors_CitySubstringMatch(t *testing.T) {
	tutors := tutorsInCities("Lahore", "Karachi", "Lahore Cantt", "Multan", "lahore")

	got := directory.FilterTutors(tutors, directory.TutorCriteria{City: "lahore"})

	require.Len(t, got, 3)
	assert.Equal(t, []int{0, 2, 4}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestFilterTutors_EmptyCriteriaPassesEverything(t *testing.T) {
	tutors := tutorsInCities("Lahore", "Karachi")

	got := directory.FilterTutors(tutors, directory.TutorCriteria{})

	assert.Equal(t, tutors, got)
}

func TestFilterTutors_EmptyFieldNeverMatchesActiveFilter(t *testing.T) {
	tutors := []entities.Tutor{
		{ID: 0, City: ""},
		{ID: 1, City: "Lahore"},
	}

	got := directory.FilterTutors(tutors, directory.TutorCriteria{City: "lahore"})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterTutors_Idempotent(t *testing.T) {
	tutors := tutorsInCities("Lahore", "Karachi", "Lahore", "Multan")
	criteria := directory.TutorCriteria{City: "lahore", Subject: "math"}

	once := directory.FilterTutors(tutors, criteria)
	twice := directory.FilterTutors(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterTutors_AddingCriterionNeverGrowsResult(t *testing.T) {
	tutors := []entities.Tutor{
		{ID: 0, City: "Lahore", Subjects: []string{"Math"}},
		{ID: 1, City: "Lahore", Subjects: []string{"Physics"}},
		{ID: 2, City: "Karachi", Subjects: []string{"Math"}},
	}

	base := directory.FilterTutors(tutors, directory.TutorCriteria{City: "lahore"})
	narrowed := directory.FilterTutors(tutors, directory.TutorCriteria{City: "lahore", Subject: "math"})

	assert.LessOrEqual(t, len(narrowed), len(base))
}

func TestFilterJobs_GenderBothIsPassThrough(t *testing.T) {
	jobs := []entities.Job{
		{ID: 0, Gender: "Male"},
		{ID: 1, Gender: "Female"},
		{ID: 2, Gender: ""},
	}

	both := directory.FilterJobs(jobs, directory.JobCriteria{Gender: directory.GenderAny})
	assert.Len(t, both, 3)

	female := directory.FilterJobs(jobs, directory.JobCriteria{Gender: "female"})
	require.Len(t, female, 1)
	assert.Equal(t, 1, female[0].ID)
}

func TestFilterJobs_FeeRangeInclusive(t *testing.T) {
	jobs := []entities.Job{
		{ID: 0, Fee: 5000},
		{ID: 1, Fee: 15000},
		{ID: 2, Fee: 25000},
	}

	got := directory.FilterJobs(jobs, directory.JobCriteria{FeeMin: 5000, FeeMax: 15000})

	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestFilterJobs_GradeAndSubjectSubstring(t *testing.T) {
	jobs := []entities.Job{
		{ID: 0, Grade: "Grade 9-10", Subjects: "Math, Physics"},
		{ID: 1, Grade: "O-Levels", Subjects: "Chemistry"},
	}

	got := directory.FilterJobs(jobs, directory.JobCriteria{Grade: "grade 9", Subject: "physics"})

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ID)
}

func TestTutorFacetValues(t *testing.T) {
	tutors := []entities.Tutor{
		{City: "Lahore", Subjects: []string{"Math", "Physics"}},
		{City: "Karachi", Subjects: []string{"Math"}},
		{City: "", Subjects: nil},
	}

	facets := directory.TutorFacetValues(tutors)

	assert.Equal(t, []string{"Karachi", "Lahore"}, facets.Cities)
	assert.Equal(t, []string{"Math", "Physics"}, facets.Subjects)
}

func TestJobFeeBounds(t *testing.T) {
	jobs := []entities.Job{{Fee: 8000}, {Fee: 0}, {Fee: 30000}}

	bounds := directory.JobFeeBounds(jobs)

	assert.Equal(t, 8000.0, bounds.Min)
	assert.Equal(t, 30000.0, bounds.Max)

	empty := directory.JobFeeBounds(nil)
	assert.Equal(t, 0.0, empty.Min)
	assert.Equal(t, 50000.0, empty.Max)
}
