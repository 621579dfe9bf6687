// internal/app/changefeed/changefeed.go

// Package changefeed turns a MongoDB change stream into a typed
// insert/update/delete event sequence for one collection, optionally
// scoped to a single matter.
//
// A Subscription is lazy, infinite, and non-restartable: the event
// channel closes when the stream ends (error or Close), and a closed
// subscription is never reused. Close is idempotent and guarantees no
// delivery after it returns.
package changefeed

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Kind tags a change event.
type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Event is one change notification. Doc is nil for deletes; deletes
// carry only the identifier.
type Event[T any] struct {
	Kind Kind
	ID   string
	Doc  *T
}

// Subscription delivers the change events of one collection until the
// stream ends or Close is called.
type Subscription[T any] struct {
	id     string
	events chan Event[T]
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	log    *zap.Logger
}

// changeEnvelope is the subset of the change stream document we consume.
type changeEnvelope struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument bson.Raw `bson:"fullDocument"`
}

// Subscribe opens a change stream on coll and starts the delivery loop.
// A non-nil matterID scopes insert/update events to that matter; delete
// events carry no full document, so they pass through unscoped and rely
// on the consumer's no-op delete rule.
func Subscribe[T any](ctx context.Context, db *mongo.Database, coll string, matterID *primitive.ObjectID, log *zap.Logger) (*Subscription[T], error) {
	match := bson.M{
		"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
	}
	if matterID != nil {
		match = bson.M{
			"$and": bson.A{
				match,
				bson.M{"$or": bson.A{
					bson.M{"fullDocument.matter_id": *matterID},
					bson.M{"operationType": "delete"},
				}},
			},
		}
	}
	pipeline := bson.A{bson.M{"$match": match}}

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := db.Collection(coll).Watch(streamCtx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, err
	}

	subID := uuid.NewString()[:8]
	sub := &Subscription[T]{
		id:     subID,
		events: make(chan Event[T], 16),
		cancel: cancel,
		done:   make(chan struct{}),
		log:    log.With(zap.String("collection", coll), zap.String("subscription", subID)),
	}
	go sub.run(streamCtx, stream)
	return sub, nil
}

// run pumps the stream into the event channel until the stream ends.
func (s *Subscription[T]) run(ctx context.Context, stream *mongo.ChangeStream) {
	defer close(s.done)
	defer close(s.events)
	defer func() {
		// Close with a background context: the stream context is
		// usually already canceled by the time we get here.
		_ = stream.Close(context.Background())
	}()

	for stream.Next(ctx) {
		ev, ok := s.decode(stream.Current)
		if !ok {
			continue
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		s.log.Error("change stream ended", zap.Error(err))
	}
}

// decode maps one raw change document to an Event. Undecodable changes
// are dropped with a diagnostic; they never crash the feed.
func (s *Subscription[T]) decode(raw bson.Raw) (Event[T], bool) {
	var env changeEnvelope
	if err := bson.Unmarshal(raw, &env); err != nil {
		s.log.Warn("dropping undecodable change event", zap.Error(err))
		return Event[T]{}, false
	}

	ev := Event[T]{ID: env.DocumentKey.ID.Hex()}
	switch env.OperationType {
	case "insert":
		ev.Kind = KindInsert
	case "update", "replace":
		ev.Kind = KindUpdate
	case "delete":
		ev.Kind = KindDelete
		return ev, true
	default:
		return Event[T]{}, false
	}

	if env.FullDocument == nil {
		// updateLookup can race a subsequent delete; without the
		// document there is nothing to apply.
		s.log.Warn("dropping change event without full document",
			zap.String("op", env.OperationType), zap.String("id", ev.ID))
		return Event[T]{}, false
	}

	doc := new(T)
	if err := bson.Unmarshal(env.FullDocument, doc); err != nil {
		s.log.Warn("dropping change event with undecodable document",
			zap.String("op", env.OperationType), zap.String("id", ev.ID), zap.Error(err))
		return Event[T]{}, false
	}
	ev.Doc = doc
	return ev, true
}

// ID returns the short diagnostic identifier for this subscription.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Events returns the event channel. It closes when the subscription
// ends; consumers must treat closure as terminal.
func (s *Subscription[T]) Events() <-chan Event[T] {
	return s.events
}

// Close releases the stream. It is idempotent and returns only after the
// delivery loop has exited, so no event is delivered after Close.
func (s *Subscription[T]) Close() {
	s.once.Do(s.cancel)
	<-s.done
}
