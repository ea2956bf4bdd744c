package database

import (
	"context"
	"log"

	"pocketclass/config"

	"cloud.google.com/go/firestore"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection through the Firebase app.
func InitDB() {
	ctx := context.Background()

	if config.FirebaseApp == nil {
		config.FirebaseInit()
	}

	client, err := config.FirebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("failed to create Firestore client: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}

// CloseDB releases the Firestore client. Call on shutdown.
func CloseDB() {
	if FirestoreClient != nil {
		if err := FirestoreClient.Close(); err != nil {
			log.Printf("failed to close Firestore client: %v", err)
		}
	}
}
