package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ibradi0157/mon-blog/internal/legal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores one document per slug. Identity is the "id" string field
// (a UUID); the Mongo _id is left to the server.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo ensures the unique slug index exists and returns the repo.
func NewMongoRepo(ctx context.Context, col *mongo.Collection) (*MongoRepo, error) {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("create slug index: %w", err)
	}
	return &MongoRepo{col: col}, nil
}

func mongoFilter(f Filter) bson.M {
	q := bson.M{}
	if f.Slug != "" {
		q["slug"] = string(f.Slug)
	}
	if f.PublishedOnly {
		q["published"] = true
	}
	return q
}

func (m *MongoRepo) FindOne(ctx context.Context, f Filter) (*legal.Page, error) {
	if f.outsideCatalog() {
		return nil, legal.ErrNotFound
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "slug", Value: 1}})
	var p legal.Page
	if err := m.col.FindOne(ctx, mongoFilter(f), opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, legal.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) FindAll(ctx context.Context, f Filter) ([]*legal.Page, error) {
	if f.outsideCatalog() {
		return []*legal.Page{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cur, err := m.col.Find(ctx, mongoFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*legal.Page{}
	for cur.Next(ctx) {
		var p legal.Page
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

// Save upserts by slug. id and createdAt are only written on insert.
func (m *MongoRepo) Save(ctx context.Context, p *legal.Page) (*legal.Page, error) {
	now := time.Now().UTC()
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	created := p.CreatedAt
	if created.IsZero() {
		created = now
	}
	update := bson.M{
		"$set": bson.M{
			"title":     p.Title,
			"body":      p.Body,
			"published": p.Published,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        id,
			"createdAt": created,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var saved legal.Page
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"slug": string(p.Slug)}, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("save legal page %q: %w", string(p.Slug), err)
	}
	return &saved, nil
}
