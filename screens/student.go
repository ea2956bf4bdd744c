package screens

import (
	"context"
	"fmt"
	"sync"
	"text/tabwriter"

	"pocketclass/models"
)

// runStudentDashboard lists the user's booked classes from the live bookings
// stream and offers cancellation. The screen owns its own subscription.
func (a *App) runStudentDashboard(ctx context.Context, uid string) {
	var mu sync.Mutex
	var bookings []models.Booking
	var streamErr error
	ready := make(chan struct{})
	var once sync.Once

	unsub := a.Students.Watch(ctx, uid, func(next []models.Booking) {
		mu.Lock()
		bookings = next
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
		current, failed := bookings, streamErr
		mu.Unlock()

		if failed != nil {
			fmt.Fprintln(a.out, "No bookings found for this user.")
			return
		}
		a.renderMyClasses(current)

		choice, err := a.prompt("my classes> cancel <n> | refresh | back: ")
		if err != nil || choice == "back" || choice == "" {
			return
		}
		if choice == "refresh" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(choice, "cancel %d", &n); err != nil || n < 1 || n > len(current) {
			fmt.Fprintln(a.out, "unknown command")
			continue
		}
		a.cancelModal(ctx, current[n-1], uid)
	}
}

func (a *App) renderMyClasses(bookings []models.Booking) {
	fmt.Fprintln(a.out, "My Booked Classes")
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings found for this user.")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tClass\tInstructor\tDate\tTime")
	for i, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s - %s\n",
			i+1, b.ClassType, b.InstructorName, b.Date, b.StartTime, b.EndTime)
	}
	w.Flush()
}

// cancelModal is the confirmation step before cancelling an enrollment.
func (a *App) cancelModal(ctx context.Context, b models.Booking, uid string) {
	fmt.Fprintf(a.out, "Are you sure you want to cancel the class: %s?\n", b.ClassType)
	choice, err := a.prompt("confirm [yes/no]: ")
	if err != nil || choice != "yes" {
		return
	}

	if err := a.Students.Cancel(ctx, b.ID, uid); err != nil {
		a.Notify.Failure("Failed to cancel booking: " + err.Error())
		return
	}
	a.Notify.Success("Class Canceled")
}
