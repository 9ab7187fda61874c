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

type OrderController struct {
	orders   *mongo.Collection
	validate *validator.Validate
}

func NewOrderController(client *mongo.Client) *OrderController {
	return &OrderController{
		orders:   database.OpenCollection(client, "order"),
		validate: validator.New(),
	}
}

// CreateOrder stores a new order. The total is always recomputed from the
// submitted items; any client-supplied total is discarded. Per-item
// priceAtOrder is taken as submitted and deliberately not re-derived from
// the current product price.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondWithError(w, models.NewValidationError("Invalid request body"))
		return
	}

	if err := oc.validate.Struct(req); err != nil {
		helper.RespondWithError(w, models.NewValidationError(helper.ValidationMessage(err)))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		helper.RespondWithError(w, models.NewValidationError("userId must be a valid object id"))
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			helper.RespondWithError(w, models.NewValidationError("productId must be a valid object id"))
			return
		}
		items = append(items, models.OrderItem{
			Product:      productID,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
		})
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	order := models.Order{
		ID:          primitive.NewObjectID(),
		User:        userID,
		Items:       items,
		Status:      status,
		TotalAmount: computeTotalAmount(items),
		Created_at:  time.Now(),
		Updated_at:  time.Now(),
	}

	if _, err := oc.orders.InsertOne(ctx, order); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Order creation failed", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders lists orders with optional userId and status filters, paginated.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := helper.BuildOrderFilter(r.URL.Query())
	if err != nil {
		helper.RespondWithError(w, err)
		return
	}
	pagination := helper.ResolvePagination(r.URL.Query())

	findOptions := options.Find().SetSkip(pagination.Skip()).SetLimit(pagination.Limit)
	cursor, err := oc.orders.Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving orders", err))
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding order data", err))
		return
	}

	total, err := oc.orders.CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error counting orders", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, helper.ListResponse{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
		Data:  orders,
	})
}

// GetMonthlyOrderStats groups all orders by creation month and reports
// total amount and order count per month, oldest first.
func (oc *OrderController) GetMonthlyOrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cursor, err := oc.orders.Aggregate(ctx, monthlyOrderStatsPipeline())
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error computing order statistics", err))
		return
	}
	defer cursor.Close(ctx)

	stats := []bson.M{}
	if err := cursor.All(ctx, &stats); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding order statistics", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, stats)
}

func monthlyOrderStatsPipeline() mongo.Pipeline {
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{
			{Key: "year", Value: bson.D{{Key: "$year", Value: "$createdAt"}}},
			{Key: "month", Value: bson.D{{Key: "$month", Value: "$createdAt"}}},
		}},
		{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
		{Key: "ordersCount", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{
		{Key: "_id.year", Value: 1},
		{Key: "_id.month", Value: 1},
	}}}

	return mongo.Pipeline{groupStage, sortStage}
}

func computeTotalAmount(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.PriceAtOrder
	}
	return total
}
