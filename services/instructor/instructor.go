// Package instructor derives the availability dashboard and runs the
// add/edit/delete flows for an instructor's bookable slots.
package instructor

import (
	"context"
	"errors"
	"sort"
	"time"

	"pocketclass/api"
	"pocketclass/models"

	"github.com/go-playground/validator/v10"
)

// Validation failures surfaced to the user before any network call.
var (
	ErrFieldsRequired = errors.New("All fields are required!")
	ErrDateInPast     = errors.New("Date cannot be in the past.")
	ErrEndBeforeStart = errors.New("End time must be later than start time.")
)

// SortAvailabilities returns a copy sorted descending by creation time.
// The sort is stable, so entries with equal timestamps keep snapshot order,
// and sorting an already-sorted list is a no-op.
func SortAvailabilities(list []models.Availability) []models.Availability {
	sorted := make([]models.Availability, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// ComputePatch diffs a submitted form against the current record and keeps
// only the fields that actually changed. Empty submissions never count as
// changes.
func ComputePatch(current models.Availability, submitted models.AvailabilityInput) models.AvailabilityPatch {
	var patch models.AvailabilityPatch
	if submitted.Date != "" && submitted.Date != current.Date {
		patch.Date = submitted.Date
	}
	if submitted.StartTime != "" && submitted.StartTime != current.StartTime {
		patch.StartTime = submitted.StartTime
	}
	if submitted.EndTime != "" && submitted.EndTime != current.EndTime {
		patch.EndTime = submitted.EndTime
	}
	if submitted.ClassType != "" && submitted.ClassType != current.ClassType {
		patch.ClassType = submitted.ClassType
	}
	return patch
}

// ValidateInput checks a new slot before it is sent: all fields present,
// date not in the past, start strictly before end. "HH:MM" strings compare
// correctly lexicographically.
func ValidateInput(in models.AvailabilityInput, now time.Time) error {
	if err := validate.Struct(in); err != nil {
		return ErrFieldsRequired
	}
	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return ErrFieldsRequired
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrDateInPast
	}
	if in.StartTime >= in.EndTime {
		return ErrEndBeforeStart
	}
	return nil
}

var validate = validator.New()

// Service runs availability mutations for an instructor. It never patches
// the local list; the profile document subscription reconciles every change.
type Service struct {
	API *api.Client
}

// Add validates and creates a new bookable slot, deriving the instructor's
// name and contact from the profile.
func (s *Service) Add(ctx context.Context, profile *models.UserProfile, in models.AvailabilityInput) error {
	if err := ValidateInput(in, time.Now()); err != nil {
		return err
	}
	return s.API.AddAvailability(ctx, api.AddAvailabilityRequest{
		InstructorID:   profile.UID,
		InstructorName: profile.FullName(),
		Email:          profile.Email,
		Contact:        profile.Contact,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		ClassType:      in.ClassType,
	})
}

// Edit diffs the submission against the current record and sends the changed
// fields. A no-change submission is rejected before any network call.
func (s *Service) Edit(ctx context.Context, current models.Availability, submitted models.AvailabilityInput, instructorID string) error {
	patch := ComputePatch(current, submitted)
	if patch.IsEmpty() {
		return api.ErrNoChanges
	}
	return s.API.EditAvailability(ctx, current.ID, instructorID, patch)
}

// Delete removes a slot the instructor owns.
func (s *Service) Delete(ctx context.Context, availabilityID, instructorID string) error {
	return s.API.DeleteAvailability(ctx, availabilityID, instructorID)
}
