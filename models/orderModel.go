package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	Product      primitive.ObjectID `bson:"product" json:"product"`
	Quantity     int64              `bson:"quantity" json:"quantity" validate:"required,min=1"`
	PriceAtOrder float64            `bson:"priceAtOrder" json:"priceAtOrder" validate:"min=0"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Items       []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Status      string             `bson:"status" json:"status" validate:"eq=pending|eq=paid|eq=shipped|eq=cancelled"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount" validate:"min=0"`
	Created_at  time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
