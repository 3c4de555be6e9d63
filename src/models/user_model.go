package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name" validate:"required"`
	Email                string             `json:"email" bson:"email" validate:"required,email"`
	Mobile               string             `json:"mobile" bson:"mobile" validate:"required"`
	Password             string             `json:"-" bson:"password" validate:"required"`
	ResetPasswordToken   string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires *time.Time         `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (u *User) ApplyDefaults(now time.Time) {
	if u.Id.IsZero() {
		u.Id = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// UserDto is the public projection of a user.
type UserDto struct {
	ID     primitive.ObjectID `json:"_id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Mobile string             `json:"mobile"`
}

func (u User) Dto() UserDto {
	return UserDto{ID: u.Id, Name: u.Name, Email: u.Email, Mobile: u.Mobile}
}
