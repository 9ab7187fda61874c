package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Firstname  *string            `bson:"firstname" json:"firstname" validate:"required,min=1"`
	Lastname   *string            `bson:"lastname" json:"lastname" validate:"required,min=1"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	Password   *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Role       string             `bson:"role" json:"role" validate:"eq=customer|eq=admin"`
	Created_at time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at time.Time          `bson:"updatedAt" json:"updatedAt"`
}
