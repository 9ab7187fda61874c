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

type ProductController struct {
	products *mongo.Collection
	validate *validator.Validate
}

func NewProductController(client *mongo.Client) *ProductController {
	return &ProductController{
		products: database.OpenCollection(client, "product"),
		validate: validator.New(),
	}
}

func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		helper.RespondWithError(w, models.NewValidationError("Invalid request body"))
		return
	}

	// Stock defaults to zero when the client omits it.
	if product.Stock == nil {
		defaultStock := int64(0)
		product.Stock = &defaultStock
	}

	if err := pc.validate.Struct(product); err != nil {
		helper.RespondWithError(w, models.NewValidationError(helper.ValidationMessage(err)))
		return
	}

	product.ID = primitive.NewObjectID()
	product.Created_at = time.Now()
	product.Updated_at = time.Now()

	if _, err := pc.products.InsertOne(ctx, product); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Product creation failed", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusCreated, product)
}

// GetProducts lists products with optional name search, category and
// price-range filters, paginated.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := helper.BuildProductFilter(r.URL.Query())
	if err != nil {
		helper.RespondWithError(w, err)
		return
	}
	pagination := helper.ResolvePagination(r.URL.Query())

	findOptions := options.Find().SetSkip(pagination.Skip()).SetLimit(pagination.Limit)
	cursor, err := pc.products.Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving products", err))
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding product data", err))
		return
	}

	total, err := pc.products.CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error counting products", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, helper.ListResponse{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
		Data:  products,
	})
}

// GetProductStats returns average, minimum and maximum price plus the
// product count in a single row. An empty catalog yields an empty object.
func (pc *ProductController) GetProductStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cursor, err := pc.products.Aggregate(ctx, productPriceStatsPipeline())
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error computing product statistics", err))
		return
	}
	defer cursor.Close(ctx)

	var stats []bson.M
	if err := cursor.All(ctx, &stats); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding product statistics", err))
		return
	}

	if len(stats) == 0 {
		helper.RespondWithJSON(w, http.StatusOK, bson.M{})
		return
	}
	helper.RespondWithJSON(w, http.StatusOK, stats[0])
}

func productPriceStatsPipeline() mongo.Pipeline {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		{Key: "minPrice", Value: bson.D{{Key: "$min", Value: "$price"}}},
		{Key: "maxPrice", Value: bson.D{{Key: "$max", Value: "$price"}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}

	return mongo.Pipeline{groupStage}
}
