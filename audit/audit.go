package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type LogOptions struct {
	UserName   string
	EntityType string
	EntityID   string
	Action     Action
	After      any
}

// Entry is the stored form of one mutation.
type Entry struct {
	UserName   string    `bson:"user_name"`
	EntityType string    `bson:"entity_type"`
	EntityID   string    `bson:"entity_id"`
	Action     Action    `bson:"action"`
	AfterData  string    `bson:"after_data"`
	CreatedAt  time.Time `bson:"created_at"`
}

func NewEntry(opts LogOptions) Entry {
	after := "null"
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			after = string(b)
		}
	}
	return Entry{
		UserName:   opts.UserName,
		EntityType: opts.EntityType,
		EntityID:   opts.EntityID,
		Action:     opts.Action,
		AfterData:  after,
		CreatedAt:  time.Now().UTC(),
	}
}

// Recorder persists audit entries.
type Recorder interface {
	WriteLog(ctx context.Context, opts LogOptions) error
}

// Nop discards every entry.
type Nop struct{}

func (Nop) WriteLog(context.Context, LogOptions) error { return nil }

type MongoRecorder struct {
	coll *mongo.Collection
}

func NewMongoRecorder(coll *mongo.Collection) *MongoRecorder {
	return &MongoRecorder{coll: coll}
}

func (r *MongoRecorder) WriteLog(ctx context.Context, opts LogOptions) error {
	if _, err := r.coll.InsertOne(ctx, NewEntry(opts)); err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}
	return nil
}
