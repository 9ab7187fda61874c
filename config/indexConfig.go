package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the handlers rely on:
// one account per email, at most one invoice per order, and at most
// one review per (user, product) pair. Invoice and review uniqueness
// is enforced here by the store itself, so concurrent creates cannot
// slip past an application-level existence check.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	userIndexes := OpenCollection(client, "user").Indexes()
	if _, err := userIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	invoiceIndexes := OpenCollection(client, "invoice").Indexes()
	if _, err := invoiceIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	reviewIndexes := OpenCollection(client, "review").Indexes()
	if _, err := reviewIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return nil
}
