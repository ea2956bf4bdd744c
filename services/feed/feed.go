// Package feed derives the home-feed view state from the live bookings stream.
package feed

import (
	"context"
	"time"

	"pocketclass/database/live"
	bookingRepo "pocketclass/database/repository/bookings"
	"pocketclass/models"
	"pocketclass/utils"
)

// Card is the home-feed projection of one booking.
type Card struct {
	models.Booking
	AvailableSeats int
	DaysLeft       string
	CanBook        bool
}

// Derive maps a raw bookings snapshot to feed cards, preserving store order.
func Derive(bookings []models.Booking, now time.Time) []Card {
	cards := make([]Card, 0, len(bookings))
	for _, b := range bookings {
		seats := b.AvailableSeats()
		cards = append(cards, Card{
			Booking:        b,
			AvailableSeats: seats,
			DaysLeft:       daysLeft(b.Date, now),
			CanBook:        seats > 0,
		})
	}
	return cards
}

// daysLeft renders the class date relative to now. An unparseable date
// renders empty rather than dropping the card.
func daysLeft(date string, now time.Time) string {
	t, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return ""
	}
	return utils.RelativeTime(t, now)
}

// Service wires the live bookings stream to derived feed cards.
type Service struct {
	Repo bookingRepo.BookingRepository
}

// Watch subscribes to the bookings collection and delivers a derived card
// list on every snapshot.
func (s *Service) Watch(ctx context.Context, onCards func([]Card), onError func(error)) live.Unsubscribe {
	return s.Repo.Watch(ctx, func(bookings []models.Booking) {
		onCards(Derive(bookings, time.Now()))
	}, onError)
}
