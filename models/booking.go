package models

// Booking represents one bookable class instance as stored in the bookings collection.
type Booking struct {
	ID             string    `firestore:"-" json:"id"`                         // Document ID, backfilled from the snapshot
	InstructorID   string    `firestore:"instructorId" json:"instructorId"`    // Owning instructor
	InstructorName string    `firestore:"instructorName" json:"instructorName"`
	ClassType      string    `firestore:"classType" json:"classType"`          // e.g., "Science", "Arts", "Yoga"
	Date           string    `firestore:"date" json:"date"`                    // Calendar date in "YYYY-MM-DD" format
	StartTime      string    `firestore:"startTime" json:"startTime"`          // Time of day, "HH:MM"
	EndTime        string    `firestore:"endTime" json:"endTime"`
	StudentsBooked int       `firestore:"studentsBooked" json:"studentsBooked"`
	MaxStudents    int       `firestore:"maxStudents" json:"maxStudents"`
	Students       []Student `firestore:"students" json:"students"` // Enrolled participants, in enrollment order
}

// Student is one enrolled participant on a booking.
type Student struct {
	ID    string `firestore:"id" json:"id"`
	Name  string `firestore:"name" json:"name"`
	Email string `firestore:"email" json:"email"`
}

// AvailableSeats reports remaining capacity, clamped at zero. Missing numeric
// fields decode to zero, so a malformed record renders as full rather than failing.
func (b Booking) AvailableSeats() int {
	seats := b.MaxStudents - b.StudentsBooked
	if seats < 0 {
		return 0
	}
	return seats
}

// HasStudent reports whether the given user is enrolled on this booking.
func (b Booking) HasStudent(uid string) bool {
	for _, s := range b.Students {
		if s.ID == uid {
			return true
		}
	}
	return false
}
