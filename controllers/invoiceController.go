package controller

import (
	"context"
	"encoding/json"
	"errors"
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

type InvoiceController struct {
	invoices *mongo.Collection
	orders   *mongo.Collection
	validate *validator.Validate
}

func NewInvoiceController(client *mongo.Client) *InvoiceController {
	return &InvoiceController{
		invoices: database.OpenCollection(client, "invoice"),
		orders:   database.OpenCollection(client, "order"),
		validate: validator.New(),
	}
}

// CreateInvoice issues the invoice for an order, copying the order's user
// and total. Uniqueness per order is enforced by the store's unique index
// on the order field, so concurrent requests cannot both succeed: the
// insert itself is the conflict check.
func (ic *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondWithError(w, models.NewValidationError("Invalid request body"))
		return
	}

	if err := ic.validate.Struct(req); err != nil {
		helper.RespondWithError(w, models.NewValidationError(helper.ValidationMessage(err)))
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		helper.RespondWithError(w, models.NewValidationError("orderId must be a valid object id"))
		return
	}

	var order models.Order
	err = ic.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondWithError(w, models.NewNotFoundError("Order not found"))
		return
	} else if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving order", err))
		return
	}

	status := "unpaid"
	var paidAt *time.Time
	if req.MarkAsPaid {
		status = "paid"
		now := time.Now()
		paidAt = &now
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	invoice := models.Invoice{
		ID:            primitive.NewObjectID(),
		Order:         order.ID,
		User:          order.User,
		TotalAmount:   order.TotalAmount,
		Status:        status,
		IssuedAt:      time.Now(),
		PaidAt:        paidAt,
		PaymentMethod: paymentMethod,
		Created_at:    time.Now(),
		Updated_at:    time.Now(),
	}

	if _, err := ic.invoices.InsertOne(ctx, invoice); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			helper.RespondWithError(w, models.NewConflictError("An invoice already exists for this order"))
			return
		}
		helper.RespondWithError(w, models.NewInternalError("Invoice creation failed", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusCreated, invoice)
}

// GetInvoices lists invoices with optional userId, status and issuedAt
// date-range filters, paginated.
func (ic *InvoiceController) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := helper.BuildInvoiceFilter(r.URL.Query())
	if err != nil {
		helper.RespondWithError(w, err)
		return
	}
	pagination := helper.ResolvePagination(r.URL.Query())

	findOptions := options.Find().SetSkip(pagination.Skip()).SetLimit(pagination.Limit)
	cursor, err := ic.invoices.Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving invoices", err))
		return
	}
	defer cursor.Close(ctx)

	invoices := []models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding invoice data", err))
		return
	}

	total, err := ic.invoices.CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error counting invoices", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, helper.ListResponse{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
		Data:  invoices,
	})
}

// GetRevenueStats groups paid invoices by issue month and reports revenue
// and invoice count per month, oldest first. Unpaid and cancelled invoices
// are excluded.
func (ic *InvoiceController) GetRevenueStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cursor, err := ic.invoices.Aggregate(ctx, monthlyRevenuePipeline())
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error computing revenue statistics", err))
		return
	}
	defer cursor.Close(ctx)

	stats := []bson.M{}
	if err := cursor.All(ctx, &stats); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding revenue statistics", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, stats)
}

func monthlyRevenuePipeline() mongo.Pipeline {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: "paid"}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{
			{Key: "year", Value: bson.D{{Key: "$year", Value: "$issuedAt"}}},
			{Key: "month", Value: bson.D{{Key: "$month", Value: "$issuedAt"}}},
		}},
		{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
		{Key: "invoicesCount", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{
		{Key: "_id.year", Value: 1},
		{Key: "_id.month", Value: 1},
	}}}

	return mongo.Pipeline{matchStage, groupStage, sortStage}
}
