package directory

import (
	"math"
	"sort"

	"github.com/aplusacademy/tutor-directory/backend/internal/domain/entities"
)

// Distance is the planar Euclidean distance between two coordinates in
// degrees. At city scale the error against great-circle distance is
// irrelevant for ranking, and the site has always ordered tutors this way;
// keeping the same metric keeps the ordering identical.
func Distance(a, b entities.Location) float64 {
	return math.Hypot(a.Latitude-b.Latitude, a.Longitude-b.Longitude)
}

// SortByProximity returns a copy of tutors ordered ascending by planar
// distance to ref. The sort is stable: equal distances keep their input
// order. The fallback coordinate participates like any other value.
func SortByProximity(tutors []entities.Tutor, ref entities.Location) []entities.Tutor {
	out := make([]entities.Tutor, len(tutors))
	copy(out, tutors)
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(out[i].Location, ref) < Distance(out[j].Location, ref)
	})
	return out
}
