package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/YEHIA060606/backend-ecommerce/config"
	"github.com/YEHIA060606/backend-ecommerce/helper"
	"github.com/YEHIA060606/backend-ecommerce/models"
)

type ReviewController struct {
	reviews  *mongo.Collection
	validate *validator.Validate
}

func NewReviewController(client *mongo.Client) *ReviewController {
	return &ReviewController{
		reviews:  database.OpenCollection(client, "review"),
		validate: validator.New(),
	}
}

// CreateReview creates or replaces the review a user holds for a product.
// A second review for the same (user, product) pair overwrites the first
// via a single upsert, so exactly one review ever persists per pair.
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondWithError(w, models.NewValidationError("Invalid request body"))
		return
	}

	if err := rc.validate.Struct(req); err != nil {
		helper.RespondWithError(w, models.NewValidationError(helper.ValidationMessage(err)))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		helper.RespondWithError(w, models.NewValidationError("userId must be a valid object id"))
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		helper.RespondWithError(w, models.NewValidationError("productId must be a valid object id"))
		return
	}

	now := time.Now()
	filter := bson.M{"user": userID, "product": productID}
	update := bson.M{
		"$set": bson.M{
			"rating":    *req.Rating,
			"comment":   req.Comment,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var review models.Review
	if err := rc.reviews.FindOneAndUpdate(ctx, filter, update, opts).Decode(&review); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Review creation failed", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusCreated, review)
}

// GetReviews lists reviews with optional userId, productId and rating
// range filters, paginated.
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := helper.BuildReviewFilter(r.URL.Query())
	if err != nil {
		helper.RespondWithError(w, err)
		return
	}
	pagination := helper.ResolvePagination(r.URL.Query())

	findOptions := options.Find().SetSkip(pagination.Skip()).SetLimit(pagination.Limit)
	cursor, err := rc.reviews.Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving reviews", err))
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding review data", err))
		return
	}

	total, err := rc.reviews.CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error counting reviews", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, helper.ListResponse{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
		Data:  reviews,
	})
}

// GetProductReviewStats reports average, minimum and maximum rating plus
// review count per product, best-rated first. An optional productId query
// parameter restricts the stats to a single product.
func (rc *ReviewController) GetProductReviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var productID *primitive.ObjectID
	if raw := r.URL.Query().Get("productId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			helper.RespondWithError(w, models.NewValidationError("productId must be a valid object id"))
			return
		}
		productID = &id
	}

	cursor, err := rc.reviews.Aggregate(ctx, reviewStatsPipeline(productID))
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error computing review statistics", err))
		return
	}
	defer cursor.Close(ctx)

	stats := []bson.M{}
	if err := cursor.All(ctx, &stats); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding review statistics", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, stats)
}

func reviewStatsPipeline(productID *primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if productID != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "product", Value: *productID}}}})
	}

	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$product"},
		{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		{Key: "minRating", Value: bson.D{{Key: "$min", Value: "$rating"}}},
		{Key: "maxRating", Value: bson.D{{Key: "$max", Value: "$rating"}}},
		{Key: "reviewsCount", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "avgRating", Value: -1}}}}

	return append(pipeline, groupStage, sortStage)
}
