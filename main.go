// File: pocketclass/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pocketclass/api"
	"pocketclass/config"
	"pocketclass/database"
	bookingRepo "pocketclass/database/repository/bookings"
	profileRepo "pocketclass/database/repository/profile"
	"pocketclass/screens"
	"pocketclass/services/session"
	"pocketclass/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	config.FirebaseInit()
	database.InitDB()
	defer database.CloseDB()

	// repositories.
	bookings := bookingRepo.NewFirestoreBookingRepo()
	profiles := profileRepo.NewFirestoreProfileRepo()

	// services.
	sessions := session.NewManager()
	apiClient := api.NewClient()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down")
		cancel()
		os.Exit(0)
	}()

	app := screens.NewApp(sessions, apiClient, bookings, profiles, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Sugar().Fatalf("main: shell exited with error: %v", err)
	}
}
