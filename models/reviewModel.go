package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Product    primitive.ObjectID `bson:"product" json:"product"`
	Rating     float64            `bson:"rating" json:"rating" validate:"min=1,max=5"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Created_at time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at time.Time          `bson:"updatedAt" json:"updatedAt"`
}
