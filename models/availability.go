package models

import "time"

// Availability is the instructor-facing projection of a bookable slot, read from
// the availabilities field of the instructor's profile document.
type Availability struct {
	ID        string    `firestore:"id" json:"id"`
	Date      string    `firestore:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime string    `firestore:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string    `firestore:"endTime" json:"endTime"`
	ClassType string    `firestore:"classType" json:"classType"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// AvailabilityInput carries the fields an instructor submits when creating a slot.
type AvailabilityInput struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	ClassType string `json:"classType" validate:"required"`
}

// AvailabilityPatch holds only the fields that changed in an edit. Empty strings
// mean "unchanged"; an all-empty patch must never reach the network.
type AvailabilityPatch struct {
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	ClassType string `json:"classType,omitempty"`
}

// IsEmpty reports whether the patch carries no changes.
func (p AvailabilityPatch) IsEmpty() bool {
	return p.Date == "" && p.StartTime == "" && p.EndTime == "" && p.ClassType == ""
}
