package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryBags        Category = "Bags"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryDocuments   Category = "Documents"
	CategoryOthers      Category = "Others"
)

// Categories lists the report categories in the order the form offers them.
var Categories = []Category{
	CategoryElectronics,
	CategoryBags,
	CategoryClothing,
	CategoryAccessories,
	CategoryDocuments,
	CategoryOthers,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type LostItem struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Category    Category           `json:"category" bson:"category" validate:"required,oneof=Electronics Bags Clothing Accessories Documents Others"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Contact     string             `json:"contact" bson:"contact" validate:"required"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	Date        time.Time          `json:"date" bson:"date" validate:"required"`
	Time        time.Time          `json:"time" bson:"time" validate:"required"`
	Photo       string             `json:"photo,omitempty" bson:"photo,omitempty"`
	ReportedBy  primitive.ObjectID `json:"reportedBy" bson:"reportedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

func (i *LostItem) ApplyDefaults(now time.Time) {
	if i.Id.IsZero() {
		i.Id = primitive.NewObjectID()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
}

type FoundItem struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ItemName    string             `json:"itemName" bson:"itemName" validate:"required"`
	Time        string             `json:"time" bson:"time" validate:"required"`
	Contact     string             `json:"contact" bson:"contact" validate:"required"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	Date        string             `json:"date" bson:"date" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Photo       string             `json:"photo,omitempty" bson:"photo,omitempty"`
	ReportedBy  primitive.ObjectID `json:"reportedBy" bson:"reportedBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (i *FoundItem) ApplyDefaults(now time.Time) {
	if i.Id.IsZero() {
		i.Id = primitive.NewObjectID()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}
