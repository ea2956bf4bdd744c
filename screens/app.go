// Package screens is the terminal presentation layer. Each screen renders
// derived view-state, owns its live subscription for as long as it is shown,
// and tears the subscription down on exit. Screens hold no shared state.
package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pocketclass/api"
	bookingRepo "pocketclass/database/repository/bookings"
	profileRepo "pocketclass/database/repository/profile"
	"pocketclass/services/feed"
	"pocketclass/services/instructor"
	"pocketclass/services/session"
	"pocketclass/services/student"
	"pocketclass/services/user"
	"pocketclass/utils"
)

// App wires the services into the navigation shell.
type App struct {
	Sessions session.Manager
	API      *api.Client
	Feed     *feed.Service
	Students *student.Service
	Tutors   *instructor.Service
	Users    *user.Service
	Profiles profileRepo.ProfileRepository
	Notify   utils.Notifier

	in  *bufio.Reader
	out io.Writer
}

// NewApp builds the shell over stdio.
func NewApp(sessions session.Manager, apiClient *api.Client, bookings bookingRepo.BookingRepository, profiles profileRepo.ProfileRepository, in io.Reader, out io.Writer) *App {
	return &App{
		Sessions: sessions,
		API:      apiClient,
		Feed:     &feed.Service{Repo: bookings},
		Students: &student.Service{Repo: bookings, API: apiClient},
		Tutors:   &instructor.Service{API: apiClient},
		Users:    &user.Service{API: apiClient},
		Profiles: profiles,
		Notify:   utils.ConsoleNotifier{Out: out},
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run is the navigation loop. Profile is gated behind a session.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "pocketclass")
	for {
		if a.Sessions.Current() != nil {
			fmt.Fprintln(a.out, "\n[home] [profile] [logout] [quit]")
		} else {
			fmt.Fprintln(a.out, "\n[home] [login] [register] [quit]")
		}
		choice, err := a.prompt("> ")
		if err != nil {
			return err
		}
		switch choice {
		case "home":
			a.runHome(ctx)
		case "login":
			a.runLogin(ctx)
		case "register":
			a.runRegister(ctx)
		case "profile":
			a.runProfile(ctx)
		case "logout":
			a.Sessions.SignOut()
		case "quit", "":
			return nil
		default:
			fmt.Fprintln(a.out, "unknown command")
		}
	}
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
