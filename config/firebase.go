// File: pocketclass/config/firebase.go
package config

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App

// FirebaseInit initializes the Firebase App backing the Firestore client.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(AppConfig.FirebaseCredentialsFile)

	conf := &firebase.Config{ProjectID: AppConfig.FirebaseProjectID}
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	FirebaseApp = app
}
