package directory

import (
	"sort"
	"strings"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// GenderAny is the sentinel dropdown value that imposes no gender
// constraint, distinct from an unset criterion.
const GenderAny = "Both"

// TutorCriteria are the directory filters. Empty fields impose no
// constraint; non-empty ones match case-insensitively as substring
// containment against the corresponding canonical field.
type TutorCriteria struct {
	City    string
	Subject string
}

// JobCriteria are the job-board filters. FeeMin/FeeMax bound the posting
// fee inclusively when FeeMax > 0.
type JobCriteria struct {
	City    string
	Subject string
	Gender  string
	Grade   string
	FeeMin  float64
	FeeMax  float64
}

// FilterTutors returns the tutors matching every present criterion,
// preserving input order. A tutor whose targeted field is empty never
// matches an active filter.
func FilterTutors(tutors []entities.Tutor, criteria TutorCriteria) []entities.Tutor {
	out := make([]entities.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if !contains(t.City, criteria.City) {
			continue
		}
		if !contains(strings.Join(t.Subjects, ","), criteria.Subject) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterJobs returns the postings matching every present criterion,
// preserving input order.
func FilterJobs(jobs []entities.Job, criteria JobCriteria) []entities.Job {
	out := make([]entities.Job, 0, len(jobs))
	for _, j := range jobs {
		if !contains(j.City, criteria.City) {
			continue
		}
		if !contains(j.Subjects, criteria.Subject) {
			continue
		}
		if criteria.Gender != "" && criteria.Gender != GenderAny && !contains(j.Gender, criteria.Gender) {
			continue
		}
		if !contains(j.Grade, criteria.Grade) {
			continue
		}
		if criteria.FeeMax > 0 && (j.Fee < criteria.FeeMin || j.Fee > criteria.FeeMax) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// TutorFacetValues derives the distinct cities and subjects present in the
// directory, sorted for stable dropdown rendering.
func TutorFacetValues(tutors []entities.Tutor) entities.TutorFacets {
	citySet := map[string]struct{}{}
	subjectSet := map[string]struct{}{}
	for _, t := range tutors {
		if t.City != "" {
			citySet[t.City] = struct{}{}
		}
		for _, s := range t.Subjects {
			subjectSet[s] = struct{}{}
		}
	}
	return entities.TutorFacets{
		Cities:   sortedKeys(citySet),
		Subjects: sortedKeys(subjectSet),
	}
}

// JobFeeBounds returns the min/max fee across postings with a non-zero fee.
// An empty board yields the default slider range 0..50000.
func JobFeeBounds(jobs []entities.Job) entities.FeeBounds {
	bounds := entities.FeeBounds{Min: 0, Max: 50000}
	seen := false
	for _, j := range jobs {
		if j.Fee == 0 {
			continue
		}
		if !seen {
			bounds.Min, bounds.Max = j.Fee, j.Fee
			seen = true
			continue
		}
		if j.Fee < bounds.Min {
			bounds.Min = j.Fee
		}
		if j.Fee > bounds.Max {
			bounds.Max = j.Fee
		}
	}
	return bounds
}

// contains reports whether field contains needle, case-insensitively. An
// empty needle imposes no constraint; an empty field never contains a
// non-empty needle.
func contains(field, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(needle))
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
