package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id          primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	UserId      string              `json:"userId" bson:"userId" validate:"required"`
	Type        NotificationType    `json:"type" bson:"type" validate:"required,oneof=match_found message_received system"`
	Title       string              `json:"title" bson:"title" validate:"required"`
	Message     string              `json:"message" bson:"message" validate:"required"`
	Read        bool                `json:"read" bson:"read"`
	LostItemId  *primitive.ObjectID `json:"lostItemId,omitempty" bson:"lostItemId,omitempty"`
	FoundItemId *primitive.ObjectID `json:"foundItemId,omitempty" bson:"foundItemId,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
}

type NotificationType string

const (
	NotificationTypeMatchFound      NotificationType = "match_found"
	NotificationTypeMessageReceived NotificationType = "message_received"
	NotificationTypeSystem          NotificationType = "system"
)

func (n *Notification) ApplyDefaults(now time.Time) {
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
}
