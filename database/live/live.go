// Package live wraps Firestore snapshot listeners into the subscription
// primitive the rest of the client consumes: subscribe to a collection or a
// single document, receive the full current snapshot on every change, and
// tear the stream down with an idempotent unsubscribe.
package live

import (
	"context"
	"sync/atomic"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Document is one raw document delivered in a snapshot.
type Document struct {
	ID     string
	dataTo func(v interface{}) error
}

// NewDocument builds a Document around a decode function. The Firestore
// adapters close over DocumentSnapshot.DataTo; tests supply their own.
func NewDocument(id string, dataTo func(v interface{}) error) Document {
	return Document{ID: id, dataTo: dataTo}
}

// DataTo decodes the document's fields into v.
func (d Document) DataTo(v interface{}) error {
	return d.dataTo(v)
}

// SnapshotFunc receives the full current snapshot, in store order.
type SnapshotFunc func(docs []Document)

// ErrorFunc is invoked at most once per subscription, on unrecoverable
// stream failure. The subscription does not retry.
type ErrorFunc func(err error)

// Unsubscribe stops delivery. Idempotent. Snapshots arriving after the call
// are dropped; a delivery that already passed the closed check may still
// complete concurrently, so callbacks must guard their own state.
type Unsubscribe func()

// Stream yields one full snapshot per call to Next, blocking until the
// backing store observes a change.
type Stream interface {
	Next() ([]Document, error)
}

// SubscribeCollection opens a streaming subscription to a named collection.
// The initial snapshot is delivered as soon as the store produces it.
func SubscribeCollection(ctx context.Context, client *firestore.Client, name string, onSnapshot SnapshotFunc, onError ErrorFunc) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	it := client.Collection(name).Snapshots(ctx)
	stream := &collectionStream{it: it}
	return subscribe(stream, func() { cancel(); it.Stop() }, onSnapshot, onError)
}

// SubscribeDocument opens a streaming subscription to a single document.
// A snapshot for a missing document is delivered as an empty document list.
func SubscribeDocument(ctx context.Context, client *firestore.Client, collection, id string, onSnapshot SnapshotFunc, onError ErrorFunc) Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)
	it := client.Collection(collection).Doc(id).Snapshots(ctx)
	stream := &documentStream{it: it}
	return subscribe(stream, func() { cancel(); it.Stop() }, onSnapshot, onError)
}

// subscribe pumps a stream into the callbacks until failure or unsubscription.
func subscribe(stream Stream, stop func(), onSnapshot SnapshotFunc, onError ErrorFunc) Unsubscribe {
	var closed atomic.Bool

	go func() {
		for {
			docs, err := stream.Next()
			if closed.Load() {
				// Torn down while Next was in flight; drop whatever arrived.
				return
			}
			if err != nil {
				if !isCancellation(err) && onError != nil {
					onError(err)
				}
				return
			}
			if onSnapshot != nil {
				onSnapshot(docs)
			}
		}
	}()

	return func() {
		if closed.CompareAndSwap(false, true) {
			if stop != nil {
				stop()
			}
		}
	}
}

// isCancellation reports whether err is the normal result of tearing the
// stream down rather than a stream failure.
func isCancellation(err error) bool {
	if err == iterator.Done || err == context.Canceled {
		return true
	}
	return status.Code(err) == codes.Canceled
}

type collectionStream struct {
	it *firestore.QuerySnapshotIterator
}

func (s *collectionStream) Next() ([]Document, error) {
	snap, err := s.it.Next()
	if err != nil {
		return nil, err
	}
	snapshots, err := snap.Documents.GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(snapshots))
	for _, ds := range snapshots {
		ds := ds
		docs = append(docs, NewDocument(ds.Ref.ID, ds.DataTo))
	}
	return docs, nil
}

type documentStream struct {
	it *firestore.DocumentSnapshotIterator
}

func (s *documentStream) Next() ([]Document, error) {
	snap, err := s.it.Next()
	if err != nil {
		return nil, err
	}
	if !snap.Exists() {
		return []Document{}, nil
	}
	return []Document{NewDocument(snap.Ref.ID, snap.DataTo)}, nil
}
