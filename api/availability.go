package api

import (
	"context"
	"errors"
	"net/http"

	"pocketclass/models"
)

const (
	availabilityAddedMessage   = "Availability added successfully"
	availabilityUpdatedMessage = "Availability updated successfully"
)

// ErrNoChanges is returned when an edit carries no changed fields; the call
// is rejected before any network exchange.
var ErrNoChanges = errors.New("no changes made")

// AddAvailabilityRequest is the body of the add-availability mutation. The
// instructor's name and contact are derived from the profile by the caller.
type AddAvailabilityRequest struct {
	InstructorID   string `json:"instructorId"`
	InstructorName string `json:"instructorName"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	ClassType      string `json:"classType"`
}

// AddAvailability creates a new bookable slot for the instructor.
func (c *Client) AddAvailability(ctx context.Context, req AddAvailabilityRequest) error {
	resp, err := c.do(ctx, http.MethodPost, "/instructoravaliability", req, nil, false)
	if err != nil {
		return err
	}
	return expectMessage(resp, availabilityAddedMessage)
}

// EditAvailability updates only the changed fields of an existing slot.
// Idempotent, so transport-level failures are retried.
func (c *Client) EditAvailability(ctx context.Context, availabilityID, instructorID string, patch models.AvailabilityPatch) error {
	if patch.IsEmpty() {
		return ErrNoChanges
	}

	body := map[string]string{"instructorId": instructorID}
	if patch.Date != "" {
		body["date"] = patch.Date
	}
	if patch.StartTime != "" {
		body["startTime"] = patch.StartTime
	}
	if patch.EndTime != "" {
		body["endTime"] = patch.EndTime
	}
	if patch.ClassType != "" {
		body["classType"] = patch.ClassType
	}

	resp, err := c.do(ctx, http.MethodPut, "/editavaliability/"+availabilityID, body, nil, true)
	if err != nil {
		return err
	}
	return expectMessage(resp, availabilityUpdatedMessage)
}

// DeleteAvailability removes a slot owned by the given user. Success is the
// 200 status alone. Idempotent, so transport-level failures are retried.
func (c *Client) DeleteAvailability(ctx context.Context, availabilityID, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/deleteavaliability/"+availabilityID+"/"+userID, nil, nil, true)
	return err
}
