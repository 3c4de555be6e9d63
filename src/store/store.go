// Package store persists FindIt records in MongoDB. Every insert applies the
// record's defaults and validates it before the database is touched.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("document not found")

const (
	MatchesCollection       = "matches"
	NotificationsCollection = "notifications"
	UsersCollection         = "users"
	LostItemsCollection     = "lostitems"
	FoundItemsCollection    = "founditems"
)

// Clock lets tests pin the time written into defaulted fields.
type Clock func() time.Time

type Stores struct {
	Matches       *MatchStore
	Notifications *NotificationStore
	Users         *UserStore
	Items         *ItemStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Matches:       NewMatchStore(db.Collection(MatchesCollection)),
		Notifications: NewNotificationStore(db.Collection(NotificationsCollection)),
		Users:         NewUserStore(db.Collection(UsersCollection)),
		Items:         NewItemStore(db.Collection(LostItemsCollection), db.Collection(FoundItemsCollection)),
	}
}

// EnsureIndexes creates the secondary indexes of every collection.
func (s *Stores) EnsureIndexes(ctx context.Context) error {
	if err := s.Matches.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.Notifications.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.Users.EnsureIndexes(ctx); err != nil {
		return err
	}
	return s.Items.EnsureIndexes(ctx)
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
