package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Match is a conversation message between two users whose reports were linked
// by the matching service.
type Match struct {
	Id         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SenderId   primitive.ObjectID `json:"senderId" bson:"senderId" validate:"required"`
	ReceiverId primitive.ObjectID `json:"receiverId" bson:"receiverId" validate:"required"`
	Text       string             `json:"text" bson:"text" validate:"required"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	Read       bool               `json:"read" bson:"read"`
}

// ApplyDefaults fills the id and creation time when they are unset.
func (m *Match) ApplyDefaults(now time.Time) {
	if m.Id.IsZero() {
		m.Id = primitive.NewObjectID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}
