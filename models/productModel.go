package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=1"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Price       *float64           `bson:"price" json:"price" validate:"required,min=0"`
	Stock       *int64             `bson:"stock" json:"stock" validate:"omitempty,min=0"`
	Category    *string            `bson:"category,omitempty" json:"category,omitempty"`
	Created_at  time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
