package entities

import "time"

// TutorOverride is an admin-authored correction layered over one upstream
// tutor record at read time. The upstream catalog exposes no write
// endpoint, so edits live in local storage, keyed by the record's batch
// position. Nil fields leave the upstream value untouched.
type TutorOverride struct {
	TutorID       int       `json:"tutor_id"`
	Name          *string   `json:"name,omitempty"`
	Qualification *string   `json:"qualification,omitempty"`
	Experience    *string   `json:"experience,omitempty"`
	City          *string   `json:"city,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Subjects      []string  `json:"subjects,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Verified      *bool     `json:"verified,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Empty reports whether the override carries no field edits.
func (o *TutorOverride) Empty() bool {
	return o.Name == nil && o.Qualification == nil && o.Experience == nil &&
		o.City == nil && o.Phone == nil && o.Bio == nil && o.ImageURL == nil &&
		o.Subjects == nil && o.Latitude == nil && o.Longitude == nil &&
		o.Verified == nil
}

// Apply merges the set fields of the override into a tutor.
func (o *TutorOverride) Apply(t *Tutor) {
	if o.Name != nil {
		t.Name = *o.Name
	}
	if o.Qualification != nil {
		t.Qualification = *o.Qualification
	}
	if o.Experience != nil {
		t.Experience = *o.Experience
	}
	if o.City != nil {
		t.City = *o.City
	}
	if o.Phone != nil {
		t.Phone = *o.Phone
	}
	if o.Bio != nil {
		t.Bio = *o.Bio
	}
	if o.ImageURL != nil {
		t.ImageURL = *o.ImageURL
	}
	if o.Subjects != nil {
		t.Subjects = o.Subjects
	}
	if o.Latitude != nil {
		t.Location.Latitude = *o.Latitude
	}
	if o.Longitude != nil {
		t.Location.Longitude = *o.Longitude
	}
	if o.Verified != nil {
		t.Verified = *o.Verified
	}
}

// Merge layers the set fields of other on top of this override.
func (o *TutorOverride) Merge(other *TutorOverride) {
	if other.Name != nil {
		o.Name = other.Name
	}
	if other.Qualification != nil {
		o.Qualification = other.Qualification
	}
	if other.Experience != nil {
		o.Experience = other.Experience
	}
	if other.City != nil {
		o.City = other.City
	}
	if other.Phone != nil {
		o.Phone = other.Phone
	}
	if other.Bio != nil {
		o.Bio = other.Bio
	}
	if other.ImageURL != nil {
		o.ImageURL = other.ImageURL
	}
	if other.Subjects != nil {
		o.Subjects = other.Subjects
	}
	if other.Latitude != nil {
		o.Latitude = other.Latitude
	}
	if other.Longitude != nil {
		o.Longitude = other.Longitude
	}
	if other.Verified != nil {
		o.Verified = other.Verified
	}
	o.UpdatedAt = other.UpdatedAt
}
