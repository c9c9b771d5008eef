package entities

// FallbackLatitude and FallbackLongitude are substituted when an upstream
// record carries a missing or non-numeric coordinate. They point at central
// Lahore, the busiest service area.
const (
	FallbackLatitude  = 31.5204
	FallbackLongitude = 74.3587
)

// Tutor is the normalized, default-complete representation of an upstream
// tutor record. The ID is the zero-based position of the record in the
// fetched batch; the upstream /tutors/{id} endpoint addresses tutors by
// that same position.
type Tutor struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Subjects      []string `json:"subjects"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	City          string   `json:"city"`
	Phone         string   `json:"phone"`
	Bio           string   `json:"bio"`
	ImageURL      string   `json:"image_url"`
	Areas         []string `json:"areas"`
	Location      Location `json:"location"`
	Verified      bool     `json:"verified"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TutorPage is a reveal window over a filtered, proximity-sorted directory.
type TutorPage struct {
	Tutors   []Tutor `json:"tutors"`
	Total    int     `json:"total"`
	Visible  int     `json:"visible"`
	Complete bool    `json:"complete"`
}

// TutorFacets are the distinct values that drive the directory filter
// dropdowns.
type TutorFacets struct {
	Cities   []string `json:"cities"`
	Subjects []string `json:"subjects"`
}
