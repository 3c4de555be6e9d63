package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/findit-app/findit-backend/src/matching"
	"github.com/findit-app/findit-backend/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The controllers depend on these narrow views of the stores in src/store.

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

type MessageRepository interface {
	Insert(ctx context.Context, m *models.Match) error
	Conversation(ctx context.Context, a, b primitive.ObjectID) ([]models.Match, error)
	MarkRead(ctx context.Context, sender, receiver primitive.ObjectID) (int64, error)
	CountUnread(ctx context.Context, receiver primitive.ObjectID) (int64, error)
}

type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID string, read *bool) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID string) error
}

type ItemRepository interface {
	InsertLost(ctx context.Context, item *models.LostItem) error
	InsertFound(ctx context.Context, item *models.FoundItem) error
	FindLost(ctx context.Context, id primitive.ObjectID) (*models.LostItem, error)
	FindFound(ctx context.Context, id primitive.ObjectID) (*models.FoundItem, error)
	ReportedBy(ctx context.Context, user primitive.ObjectID) ([]models.LostItem, []models.FoundItem, error)
}

type Matcher interface {
	FindPotentialMatches(description string, itemType matching.ItemType) json.RawMessage
}
