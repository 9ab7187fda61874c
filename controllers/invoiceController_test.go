package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/YEHIA060606/backend-ecommerce/models"
)

func postInvoice(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	ic := &InvoiceController{validate: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ic.CreateInvoice(rec, req)
	return rec
}

func TestCreateInvoiceRejectsMissingOrderID(t *testing.T) {
	rec := postInvoice(t, `{"paymentMethod":"cash"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderid")
}

func TestCreateInvoiceRejectsMalformedOrderID(t *testing.T) {
	rec := postInvoice(t, `{"orderId":"not-hex"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderId")
}

func TestCreateInvoiceRejectsUnknownPaymentMethod(t *testing.T) {
	rec := postInvoice(t, `{"orderId":"0123456789abcdef01234567","paymentMethod":"barter"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInvoiceOrderNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing order", func(mt *mtest.T) {
		// Empty first batch makes the order lookup report no documents.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ecommerce.order", mtest.FirstBatch))

		ic := &InvoiceController{invoices: mt.Coll, orders: mt.Coll, validate: validator.New()}
		body := fmt.Sprintf(`{"orderId":%q}`, primitive.NewObjectID().Hex())
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()

		ic.CreateInvoice(rec, req)

		assert.Equal(mt, http.StatusNotFound, rec.Code)
		assert.Contains(mt, rec.Body.String(), "Order not found")
	})
}

func TestCreateInvoiceDuplicateOrderConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second invoice for the same order", func(mt *mtest.T) {
		orderID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		orderDoc := bson.D{
			{Key: "_id", Value: orderID},
			{Key: "user", Value: userID},
			{Key: "items", Value: bson.A{}},
			{Key: "status", Value: "pending"},
			{Key: "totalAmount", Value: 24.5},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "ecommerce.order", mtest.FirstBatch, orderDoc),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		ic := &InvoiceController{invoices: mt.Coll, orders: mt.Coll, validate: validator.New()}
		body := fmt.Sprintf(`{"orderId":%q}`, orderID.Hex())
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()

		ic.CreateInvoice(rec, req)

		assert.Equal(mt, http.StatusConflict, rec.Code)
		assert.Contains(mt, rec.Body.String(), "An invoice already exists for this order")
	})
}

func TestCreateInvoiceCopiesOrderData(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first invoice succeeds", func(mt *mtest.T) {
		orderID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		orderDoc := bson.D{
			{Key: "_id", Value: orderID},
			{Key: "user", Value: userID},
			{Key: "items", Value: bson.A{}},
			{Key: "status", Value: "pending"},
			{Key: "totalAmount", Value: 24.5},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "ecommerce.order", mtest.FirstBatch, orderDoc),
			mtest.CreateSuccessResponse(),
		)

		ic := &InvoiceController{invoices: mt.Coll, orders: mt.Coll, validate: validator.New()}
		body := fmt.Sprintf(`{"orderId":%q,"markAsPaid":true,"paymentMethod":"cash"}`, orderID.Hex())
		req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
		rec := httptest.NewRecorder()

		ic.CreateInvoice(rec, req)

		require.Equal(mt, http.StatusCreated, rec.Code)

		var invoice models.Invoice
		require.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &invoice))
		assert.Equal(mt, orderID, invoice.Order)
		assert.Equal(mt, userID, invoice.User)
		assert.Equal(mt, 24.5, invoice.TotalAmount)
		assert.Equal(mt, "paid", invoice.Status)
		assert.Equal(mt, "cash", invoice.PaymentMethod)
		require.NotNil(mt, invoice.PaidAt)
	})
}

func TestMonthlyRevenuePipelineOnlyCountsPaid(t *testing.T) {
	pipeline := monthlyRevenuePipeline()
	require.Len(t, pipeline, 3)

	match := pipeline[0]
	require.Equal(t, "$match", match[0].Key)
	assert.Equal(t, bson.D{{Key: "status", Value: "paid"}}, match[0].Value)
}

func TestMonthlyRevenuePipelineGroupsByIssueMonth(t *testing.T) {
	pipeline := monthlyRevenuePipeline()

	group := pipeline[1]
	require.Equal(t, "$group", group[0].Key)
	groupDoc, ok := group[0].Value.(bson.D)
	require.True(t, ok)

	id, ok := groupDoc[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "$year", Value: "$issuedAt"}}, id[0].Value)
	assert.Equal(t, bson.D{{Key: "$month", Value: "$issuedAt"}}, id[1].Value)

	assert.Equal(t, "totalRevenue", groupDoc[1].Key)
	assert.Equal(t, bson.D{{Key: "$sum", Value: "$totalAmount"}}, groupDoc[1].Value)

	sort := pipeline[2]
	require.Equal(t, "$sort", sort[0].Key)
	assert.Equal(t, bson.D{
		{Key: "_id.year", Value: 1},
		{Key: "_id.month", Value: 1},
	}, sort[0].Value)
}
