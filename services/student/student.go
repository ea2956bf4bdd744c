// Package student derives the student dashboard and runs book/cancel flows.
package student

import (
	"context"
	"errors"

	"pocketclass/api"
	"pocketclass/database/live"
	bookingRepo "pocketclass/database/repository/bookings"
	"pocketclass/models"
)

// ErrNotSignedIn gates booking behind an authenticated session.
var ErrNotSignedIn = errors.New("You must be logged in to book a class.")

// ErrClassFull mirrors the disabled Book button: a full class is rejected
// before any network call.
var ErrClassFull = errors.New("Class is full")

// MyBookings filters a snapshot down to the bookings the given user is
// enrolled on, preserving snapshot order.
func MyBookings(bookings []models.Booking, uid string) []models.Booking {
	mine := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.HasStudent(uid) {
			mine = append(mine, b)
		}
	}
	return mine
}

// Service wires the live bookings stream and the mutation client for a student.
type Service struct {
	Repo bookingRepo.BookingRepository
	API  *api.Client
}

// Watch subscribes to the bookings collection and delivers the user's own
// bookings on every snapshot.
func (s *Service) Watch(ctx context.Context, uid string, onBookings func([]models.Booking), onError func(error)) live.Unsubscribe {
	return s.Repo.Watch(ctx, func(bookings []models.Booking) {
		onBookings(MyBookings(bookings, uid))
	}, onError)
}

// Book enrolls the session's user on a booking. The seat check here is
// advisory only; the server owns the capacity invariant.
func (s *Service) Book(ctx context.Context, b models.Booking, sess *models.Session) error {
	if !sess.Valid() {
		return ErrNotSignedIn
	}
	if b.AvailableSeats() <= 0 {
		return ErrClassFull
	}
	return s.API.BookClass(ctx, api.BookClassRequest{
		BookingID:    b.ID,
		InstructorID: b.InstructorID,
		StudentID:    sess.UID,
		StudentEmail: sess.Email,
		StudentName:  sess.DisplayName,
		ClassType:    b.ClassType,
	})
}

// Cancel removes the user's enrollment from a booking.
func (s *Service) Cancel(ctx context.Context, bookingID, uid string) error {
	return s.API.CancelBooking(ctx, bookingID, uid)
}
