package store

import (
	"context"
	"fmt"
	"time"

	"github.com/findit-app/findit-backend/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItemStore struct {
	lost  *mongo.Collection
	found *mongo.Collection
	now   Clock
}

func NewItemStore(lost, found *mongo.Collection) *ItemStore {
	return &ItemStore{lost: lost, found: found, now: time.Now}
}

func (s *ItemStore) EnsureIndexes(ctx context.Context) error {
	byReporter := mongo.IndexModel{Keys: bson.D{{Key: "reportedBy", Value: 1}, {Key: "createdAt", Value: -1}}}
	if _, err := s.lost.Indexes().CreateMany(ctx, []mongo.IndexModel{
		byReporter,
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create lost item indexes: %w", err)
	}
	if _, err := s.found.Indexes().CreateOne(ctx, byReporter); err != nil {
		return fmt.Errorf("create found item indexes: %w", err)
	}
	return nil
}

func (s *ItemStore) InsertLost(ctx context.Context, item *models.LostItem) error {
	item.ApplyDefaults(s.now())
	if err := models.Validate(item); err != nil {
		return err
	}
	if _, err := s.lost.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert lost item: %w", err)
	}
	return nil
}

func (s *ItemStore) InsertFound(ctx context.Context, item *models.FoundItem) error {
	item.ApplyDefaults(s.now())
	if err := models.Validate(item); err != nil {
		return err
	}
	if _, err := s.found.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert found item: %w", err)
	}
	return nil
}

func (s *ItemStore) FindLost(ctx context.Context, id primitive.ObjectID) (*models.LostItem, error) {
	var item models.LostItem
	if err := s.lost.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *ItemStore) FindFound(ctx context.Context, id primitive.ObjectID) (*models.FoundItem, error) {
	var item models.FoundItem
	if err := s.found.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// ReportedBy returns the user's lost and found reports, newest first.
func (s *ItemStore) ReportedBy(ctx context.Context, user primitive.ObjectID) ([]models.LostItem, []models.FoundItem, error) {
	filter := bson.M{"reportedBy": user}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	lost := []models.LostItem{}
	cursor, err := s.lost.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("find lost items: %w", err)
	}
	if err := cursor.All(ctx, &lost); err != nil {
		return nil, nil, fmt.Errorf("decode lost items: %w", err)
	}

	found := []models.FoundItem{}
	cursor, err = s.found.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("find found items: %w", err)
	}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, nil, fmt.Errorf("decode found items: %w", err)
	}
	return lost, found, nil
}
