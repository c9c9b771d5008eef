package entities

// Job statuses as published by the upstream sheet. Anything the board
// treats as not accepting applicants is "closed" or "inactive".
const (
	JobStatusOpen     = "open"
	JobStatusClosed   = "closed"
	JobStatusInactive = "inactive"
	JobStatusFilled   = "filled"
)

// Job is the normalized representation of an upstream job posting.
type Job struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	City            string  `json:"city"`
	Location        string  `json:"location"`
	Grade           string  `json:"grade"`
	School          string  `json:"school"`
	Students        string  `json:"students"`
	Subjects        string  `json:"subjects"`
	Timing          string  `json:"timing"`
	Fee             float64 `json:"fee"`
	Gender          string  `json:"gender"`
	Contact         string  `json:"contact"`
	Status          string  `json:"status"`
	WhatsappMessage string  `json:"whatsapp_message"`
}

// Closed reports whether the posting no longer accepts applicants.
func (j Job) Closed() bool {
	return j.Status == JobStatusClosed || j.Status == JobStatusInactive || j.Status == JobStatusFilled
}

// JobPage is a reveal window over a filtered job board.
type JobPage struct {
	Jobs     []Job `json:"jobs"`
	Total    int   `json:"total"`
	Visible  int   `json:"visible"`
	Complete bool  `json:"complete"`
}

// FeeBounds is the inclusive fee range observed across a job list, used to
// initialize the board's fee slider.
type FeeBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
