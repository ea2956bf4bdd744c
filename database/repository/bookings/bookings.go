package bookingRepo

import (
	"context"

	"pocketclass/database"
	"pocketclass/database/live"
	"pocketclass/models"
	"pocketclass/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

const collectionName = "bookings"

// BookingRepository exposes the bookings collection as a live snapshot stream.
type BookingRepository interface {
	Watch(ctx context.Context, onSnapshot func([]models.Booking), onError func(error)) live.Unsubscribe
}

// FirestoreBookingRepo is the production implementation.
type FirestoreBookingRepo struct {
	Client *firestore.Client
}

func NewFirestoreBookingRepo() *FirestoreBookingRepo {
	return &FirestoreBookingRepo{Client: database.FirestoreClient}
}

// Watch subscribes to the bookings collection and delivers decoded bookings in
// store order on every change. Documents that fail to decode are dropped.
func (r *FirestoreBookingRepo) Watch(ctx context.Context, onSnapshot func([]models.Booking), onError func(error)) live.Unsubscribe {
	return live.SubscribeCollection(ctx, r.Client, collectionName, func(docs []live.Document) {
		onSnapshot(DecodeBookings(docs))
	}, onError)
}

// DecodeBookings maps raw documents to bookings, backfilling the document ID
// and skipping undecodable records.
func DecodeBookings(docs []live.Document) []models.Booking {
	bookings := make([]models.Booking, 0, len(docs))
	for _, doc := range docs {
		var b models.Booking
		if err := doc.DataTo(&b); err != nil {
			utils.GetLogger().Warn("skipping undecodable booking document",
				zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		b.ID = doc.ID
		bookings = append(bookings, b)
	}
	return bookings
}
