package screens

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"text/tabwriter"

	"pocketclass/services/feed"
)

// runHome shows the feed of bookable classes. The screen owns its bookings
// subscription and tears it down on exit; snapshots that arrive between
// renders are picked up by the next refresh.
func (a *App) runHome(ctx context.Context) {
	var mu sync.Mutex
	var cards []feed.Card
	var streamErr error
	ready := make(chan struct{})
	var once sync.Once

	unsub := a.Feed.Watch(ctx, func(next []feed.Card) {
		mu.Lock()
		cards = next
		mu.Unlock()
		once.Do(func() { close(ready) })
	}, func(err error) {
		mu.Lock()
		streamErr = err
		mu.Unlock()
		once.Do(func() { close(ready) })
	})
	defer unsub()

	fmt.Fprintln(a.out, "Loading...")
	<-ready

	for {
		mu.Lock()
		current, failed := cards, streamErr
		mu.Unlock()

		if failed != nil {
			fmt.Fprintln(a.out, "No classes available at the moment.")
			return
		}
		a.renderFeed(current)

		choice, err := a.prompt("home> book <n> | refresh | back: ")
		if err != nil || choice == "back" || choice == "" {
			return
		}
		if choice == "refresh" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(choice, "book %d", &n); err != nil || n < 1 || n > len(current) {
			fmt.Fprintln(a.out, "unknown command")
			continue
		}
		a.bookModal(ctx, current[n-1])
	}
}

func (a *App) renderFeed(cards []feed.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No classes available at the moment.")
		return
	}
	fmt.Fprintln(a.out, "Available Bookings")
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tClass\tInstructor\tDate\tTime\tDays Left\tSeats")
	for i, c := range cards {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s - %s\t%s\t%d\n",
			i+1, c.ClassType, c.InstructorName, c.Date, c.StartTime, c.EndTime, c.DaysLeft, c.AvailableSeats)
	}
	w.Flush()
}

// bookModal is the confirmation step before booking. The Book action is
// unavailable when no seats remain.
func (a *App) bookModal(ctx context.Context, card feed.Card) {
	fmt.Fprintf(a.out, "Book Class: %s with %s on %s, %s - %s (%s seats)\n",
		card.ClassType, card.InstructorName, card.Date, card.StartTime, card.EndTime,
		strconv.Itoa(card.AvailableSeats))

	if !card.CanBook {
		a.Notify.Failure("Class is full")
		return
	}
	choice, err := a.prompt("confirm [book/cancel]: ")
	if err != nil || choice != "book" {
		return
	}

	if err := a.Students.Book(ctx, card.Booking, a.Sessions.Current()); err != nil {
		a.Notify.Failure(err.Error())
		return
	}
	a.Notify.Success("Class booked successfully!")
}
