package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"eventsapi/internal/domain"
)

// CollectionName is the collection holding event documents.
const CollectionName = "events"

// eventDocument is the stored shape of an event. The event id is the _id.
type eventDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Date        time.Time `bson:"date"`
	Location    string    `bson:"location"`
	Organizer   string    `bson:"organizer"`
}

func toDocument(e *domain.Event) eventDocument {
	return eventDocument{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        domain.StoredTime(e.Date),
		Location:    e.Location,
		Organizer:   e.Organizer,
	}
}

func (d eventDocument) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Location:    d.Location,
		Organizer:   d.Organizer,
	}
}

type eventRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{
		db:   db,
		coll: db.Collection(CollectionName),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.coll.InsertOne(ctx, toDocument(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate event id %q: %w", e.ID, err)
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var doc eventDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns events in natural (insertion) order.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.toDomain())
	}
	return events, nil
}

// Update merges the set fields with $set and returns the document after the change.
func (r *eventRepository) Update(ctx context.Context, id string, u domain.EventUpdate) (*domain.Event, error) {
	set := bson.D{}
	if u.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *u.Title})
	}
	if u.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *u.Description})
	}
	if u.Date != nil {
		set = append(set, bson.E{Key: "date", Value: domain.StoredTime(*u.Date)})
	}
	if u.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *u.Location})
	}
	if u.Organizer != nil {
		set = append(set, bson.E{Key: "organizer", Value: *u.Organizer})
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc eventDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the document and returns it as it was before deletion.
func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	var doc eventDocument
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *eventRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}
