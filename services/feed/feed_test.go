package feed

import (
	"testing"
	"time"

	"pocketclass/models"
)

func TestDeriveComputesAvailableSeats(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: "b1", Date: "2030-05-04", MaxStudents: 5, StudentsBooked: 2},
		{ID: "b2", Date: "2030-05-04", MaxStudents: 5, StudentsBooked: 5},
	}

	cards := Derive(bookings, now)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].AvailableSeats != 3 || !cards[0].CanBook {
		t.Fatalf("expected 3 bookable seats, got %+v", cards[0])
	}
	if cards[1].AvailableSeats != 0 || cards[1].CanBook {
		t.Fatalf("full class must not be bookable: %+v", cards[1])
	}
}

func TestDeriveClampsNegativeSeats(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	cards := Derive([]models.Booking{{ID: "b1", MaxStudents: 3, StudentsBooked: 5}}, now)
	if cards[0].AvailableSeats != 0 {
		t.Fatalf("expected clamped seats, got %d", cards[0].AvailableSeats)
	}
	if cards[0].CanBook {
		t.Fatalf("overbooked class must not be bookable")
	}
}

func TestDeriveMissingNumericFieldsRenderAsFull(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	cards := Derive([]models.Booking{{ID: "b1"}}, now)
	if len(cards) != 1 {
		t.Fatalf("malformed record must still render, got %d cards", len(cards))
	}
	if cards[0].AvailableSeats != 0 || cards[0].CanBook {
		t.Fatalf("missing capacity must read as no seats: %+v", cards[0])
	}
}

func TestDeriveDaysLeft(t *testing.T) {
	now := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"2030-05-04": "in 3 days",
		"2030-04-28": "3 days ago",
		"not-a-date": "",
	}
	for date, want := range cases {
		cards := Derive([]models.Booking{{ID: "b1", Date: date}}, now)
		if cards[0].DaysLeft != want {
			t.Fatalf("date %q: expected %q, got %q", date, want, cards[0].DaysLeft)
		}
	}
}

func TestDerivePreservesSnapshotOrder(t *testing.T) {
	now := time.Now()
	bookings := []models.Booking{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	cards := Derive(bookings, now)
	for i, b := range bookings {
		if cards[i].ID != b.ID {
			t.Fatalf("order not preserved at %d: %s != %s", i, cards[i].ID, b.ID)
		}
	}
}
