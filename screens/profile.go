package screens

import (
	"context"
	"fmt"
	"sync"

	"pocketclass/models"
)

// runProfile subscribes to the signed-in user's profile document and routes
// to the role's dashboard. The subscription lives as long as the dashboard.
func (a *App) runProfile(ctx context.Context) {
	sess := a.Sessions.Current()
	if sess == nil {
		a.Notify.Failure("You must be logged in to view your profile.")
		return
	}

	var mu sync.Mutex
	var profile *models.UserProfile
	var streamErr error
	ready := make(chan struct{})
	var once sync.Once

	unsub := a.Profiles.Watch(ctx, sess.UID, func(next *models.UserProfile) {
		mu.Lock()
		profile = next
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

	snapshot := func() (*models.UserProfile, error) {
		mu.Lock()
		defer mu.Unlock()
		return profile, streamErr
	}

	current, failed := snapshot()
	if failed != nil || current == nil {
		fmt.Fprintln(a.out, "No profile data available.")
		return
	}

	a.renderProfile(current)
	if current.IsInstructor() {
		a.runInstructorDashboard(ctx, snapshot)
	} else {
		a.runStudentDashboard(ctx, sess.UID)
	}
}

func (a *App) renderProfile(p *models.UserProfile) {
	fmt.Fprintln(a.out, "Profile")
	fmt.Fprintf(a.out, "  Name: %s\n", p.FullName())
	fmt.Fprintf(a.out, "  Email: %s\n", p.Email)
	fmt.Fprintf(a.out, "  Contact: %s\n", p.Contact)
	fmt.Fprintf(a.out, "  Gender: %s\n", p.Gender)
	fmt.Fprintf(a.out, "  Date of Birth: %s\n", p.DOB)
	fmt.Fprintf(a.out, "  Role: %s\n", p.Role)
}
