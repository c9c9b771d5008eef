package entities

import "time"

// Lead is a hire request captured from the "Hire Me" flow and stored for
// follow-up by the academy staff.
type Lead struct {
	ID           string    `json:"id" db:"id"`
	TutorID      int       `json:"tutor_id" db:"tutor_id"`
	TutorName    string    `json:"tutor_name" db:"tutor_name"`
	ParentName   string    `json:"parent_name" db:"parent_name"`
	ParentPhone  string    `json:"parent_phone" db:"parent_phone"`
	StudentGrade string    `json:"student_grade" db:"student_grade"`
	Message      string    `json:"message" db:"message"`
	ClientKey    string    `json:"-" db:"client_key"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
