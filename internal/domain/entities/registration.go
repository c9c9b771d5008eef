package entities

import "time"

// Registration is a tutor sign-up submitted through the registration form.
// The upstream directory receives the same payload; the local row is the
// audit copy, mirroring what the sheet used to hold.
type Registration struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Qualification string    `json:"qualification" db:"qualification"`
	Subject       string    `json:"subject" db:"subject"`
	MajorSubjects string    `json:"major_subjects" db:"major_subjects"`
	Experience    int       `json:"experience" db:"experience"`
	Phone         string    `json:"phone" db:"phone"`
	Bio           string    `json:"bio" db:"bio"`
	ExactLocation string    `json:"exact_location" db:"exact_location"`
	Location      Location  `json:"location" db:"-"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
