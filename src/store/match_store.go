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

type MatchStore struct {
	coll *mongo.Collection
	now  Clock
}

func NewMatchStore(coll *mongo.Collection) *MatchStore {
	return &MatchStore{coll: coll, now: time.Now}
}

func (s *MatchStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}}},
		{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "read", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create match indexes: %w", err)
	}
	return nil
}

// Insert stores a message. Sender, receiver and text are mandatory.
func (s *MatchStore) Insert(ctx context.Context, m *models.Match) error {
	m.ApplyDefaults(s.now())
	if err := models.Validate(m); err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// Conversation returns the messages exchanged between a and b in either
// direction, oldest first.
func (s *MatchStore) Conversation(ctx context.Context, a, b primitive.ObjectID) ([]models.Match, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": a, "receiverId": b},
		bson.M{"senderId": b, "receiverId": a},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Match{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return messages, nil
}

// MarkRead flags every unread message from sender to receiver as read.
func (s *MatchStore) MarkRead(ctx context.Context, sender, receiver primitive.ObjectID) (int64, error) {
	res, err := s.coll.UpdateMany(ctx,
		bson.M{"senderId": sender, "receiverId": receiver, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark messages read: %w", err)
	}
	return res.ModifiedCount, nil
}

func (s *MatchStore) CountUnread(ctx context.Context, receiver primitive.ObjectID) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"receiverId": receiver, "read": false})
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}
