// models/user.go
package models

// UserProfile represents a platform user's profile document (users/{uid}).
type UserProfile struct {
	UID            string         `firestore:"-" json:"uid"` // Document ID, backfilled from the snapshot
	Firstname      string         `firestore:"firstname" json:"firstname"`
	Lastname       string         `firestore:"lastname" json:"lastname"`
	Email          string         `firestore:"email" json:"email"`
	Contact        string         `firestore:"contact" json:"contact"`
	Gender         string         `firestore:"gender" json:"gender"`
	DOB            string         `firestore:"dob" json:"dob"` // "YYYY-MM-DD"
	Role           string         `firestore:"role" json:"role"` // "student" or "instructor"
	Availabilities []Availability `firestore:"availabilities" json:"availabilities,omitempty"` // Instructor only
}

// FullName returns the display form of the profile's name.
func (p UserProfile) FullName() string {
	return p.Firstname + " " + p.Lastname
}

// IsInstructor reports whether this profile belongs to an instructor.
func (p UserProfile) IsInstructor() bool {
	return p.Role == "instructor"
}
