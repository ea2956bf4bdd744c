package profileRepo

import (
	"context"

	"pocketclass/database"
	"pocketclass/database/live"
	"pocketclass/models"
	"pocketclass/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

const collectionName = "users"

// ProfileRepository exposes a user's profile document as a live snapshot stream.
type ProfileRepository interface {
	Watch(ctx context.Context, uid string, onSnapshot func(*models.UserProfile), onError func(error)) live.Unsubscribe
}

// FirestoreProfileRepo is the production implementation.
type FirestoreProfileRepo struct {
	Client *firestore.Client
}

func NewFirestoreProfileRepo() *FirestoreProfileRepo {
	return &FirestoreProfileRepo{Client: database.FirestoreClient}
}

// Watch subscribes to users/{uid} and delivers the decoded profile on every
// change. A missing or undecodable document is delivered as nil.
func (r *FirestoreProfileRepo) Watch(ctx context.Context, uid string, onSnapshot func(*models.UserProfile), onError func(error)) live.Unsubscribe {
	return live.SubscribeDocument(ctx, r.Client, collectionName, uid, func(docs []live.Document) {
		onSnapshot(DecodeProfile(docs))
	}, onError)
}

// DecodeProfile maps a document snapshot to a profile, or nil when absent.
func DecodeProfile(docs []live.Document) *models.UserProfile {
	if len(docs) == 0 {
		return nil
	}
	var p models.UserProfile
	if err := docs[0].DataTo(&p); err != nil {
		utils.GetLogger().Warn("skipping undecodable profile document",
			zap.String("id", docs[0].ID), zap.Error(err))
		return nil
	}
	p.UID = docs[0].ID
	return &p
}
