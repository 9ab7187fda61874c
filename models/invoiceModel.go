package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Order         primitive.ObjectID `bson:"order" json:"order"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount" validate:"min=0"`
	Status        string             `bson:"status" json:"status" validate:"eq=unpaid|eq=paid|eq=cancelled"`
	IssuedAt      time.Time          `bson:"issuedAt" json:"issuedAt"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod" validate:"eq=card|eq=cash|eq=paypal|eq=bank_transfer|eq=none"`
	Created_at    time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
