package api

import (
	"context"
	"net/http"
)

// BookClassRequest is the body of the book-class mutation.
type BookClassRequest struct {
	BookingID    string `json:"bookingId"`
	InstructorID string `json:"instructorId"`
	StudentID    string `json:"studentId"`
	StudentEmail string `json:"studentEmail"`
	StudentName  string `json:"studentName"`
	ClassType    string `json:"classType"`
}

// BookClass enrolls the student on a booking. Never retried: a duplicate
// submission would double-book a seat.
func (c *Client) BookClass(ctx context.Context, req BookClassRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/bookclass", req, nil, false)
	return err
}

// CancelBooking removes the student from a booking. Idempotent, so
// transport-level failures are retried.
func (c *Client) CancelBooking(ctx context.Context, bookingID, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/cancelbooking/"+bookingID+"/"+userID, nil, nil, true)
	return err
}
