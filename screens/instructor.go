package screens

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"pocketclass/models"
	"pocketclass/services/instructor"
	"pocketclass/utils"
)

// runInstructorDashboard manages the instructor's availabilities. The list is
// derived from the live profile snapshot on every render; mutations are
// reconciled by the profile subscription alone, never patched locally.
func (a *App) runInstructorDashboard(ctx context.Context, snapshot func() (*models.UserProfile, error)) {
	for {
		profile, failed := snapshot()
		if failed != nil || profile == nil {
			fmt.Fprintln(a.out, "No profile data available.")
			return
		}
		availabilities := instructor.SortAvailabilities(profile.Availabilities)
		a.renderAvailabilities(availabilities)

		choice, err := a.prompt("dashboard> add | edit <n> | delete <n> | refresh | back: ")
		if err != nil || choice == "back" || choice == "" {
			return
		}
		switch {
		case choice == "refresh":
		case choice == "add":
			a.addAvailability(ctx, profile)
		default:
			var n int
			if _, err := fmt.Sscanf(choice, "edit %d", &n); err == nil && n >= 1 && n <= len(availabilities) {
				a.editAvailability(ctx, availabilities[n-1], profile.UID)
				continue
			}
			if _, err := fmt.Sscanf(choice, "delete %d", &n); err == nil && n >= 1 && n <= len(availabilities) {
				a.deleteAvailability(ctx, availabilities[n-1], profile.UID)
				continue
			}
			fmt.Fprintln(a.out, "unknown command")
		}
	}
}

func (a *App) renderAvailabilities(availabilities []models.Availability) {
	fmt.Fprintln(a.out, "Your Availabilities")
	if len(availabilities) == 0 {
		fmt.Fprintln(a.out, "No availabilities added yet.")
		return
	}
	now := time.Now()
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tClass\tDate\tTime\tStarts")
	for i, av := range availabilities {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s - %s\t%s\n",
			i+1, av.ClassType, av.Date, av.StartTime, av.EndTime, startsIn(av, now))
	}
	w.Flush()
}

func startsIn(av models.Availability, now time.Time) string {
	start, err := time.ParseInLocation("2006-01-02 15:04", av.Date+" "+av.StartTime, now.Location())
	if err != nil {
		return ""
	}
	return utils.TimeRemaining(start, now)
}

func (a *App) addAvailability(ctx context.Context, profile *models.UserProfile) {
	in, ok := a.promptAvailability(models.AvailabilityInput{})
	if !ok {
		return
	}
	if err := a.Tutors.Add(ctx, profile, in); err != nil {
		a.Notify.Failure(err.Error())
		return
	}
	a.Notify.Success("Availability added successfully")
}

func (a *App) editAvailability(ctx context.Context, current models.Availability, uid string) {
	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")
	in, ok := a.promptAvailability(models.AvailabilityInput{
		Date: current.Date, StartTime: current.StartTime, EndTime: current.EndTime, ClassType: current.ClassType,
	})
	if !ok {
		return
	}
	if err := a.Tutors.Edit(ctx, current, in, uid); err != nil {
		a.Notify.Failure(err.Error())
		return
	}
	a.Notify.Success("Availability updated successfully")
}

func (a *App) deleteAvailability(ctx context.Context, av models.Availability, uid string) {
	fmt.Fprintln(a.out, "You are about to delete this availability. This action cannot be undone.")
	choice, err := a.prompt("confirm [yes/no]: ")
	if err != nil || choice != "yes" {
		return
	}
	if err := a.Tutors.Delete(ctx, av.ID, uid); err != nil {
		a.Notify.Failure(err.Error())
		return
	}
	a.Notify.Success("Deleted Successfully")
}

// promptAvailability reads the slot form. Defaults fill unanswered fields so
// the same prompt serves both add and edit.
func (a *App) promptAvailability(defaults models.AvailabilityInput) (models.AvailabilityInput, bool) {
	in := defaults
	fields := []struct {
		label string
		dst   *string
	}{
		{"Class Type (Science, Arts, Yoga, etc.): ", &in.ClassType},
		{"Date (YYYY-MM-DD): ", &in.Date},
		{"Start Time (HH:MM): ", &in.StartTime},
		{"End Time (HH:MM): ", &in.EndTime},
	}
	for _, f := range fields {
		value, err := a.prompt(f.label)
		if err != nil {
			return in, false
		}
		if value != "" {
			*f.dst = value
		}
	}
	return in, true
}
