package helper

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/YEHIA060606/backend-ecommerce/models"
)

func TestBuildUserFilterEmpty(t *testing.T) {
	filter, err := BuildUserFilter(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestBuildUserFilterRoleAndSearch(t *testing.T) {
	query := url.Values{}
	query.Set("role", "admin")
	query.Set("search", "mart")

	filter, err := BuildUserFilter(query)
	require.NoError(t, err)

	assert.Equal(t, "admin", filter["role"])
	regex := primitive.Regex{Pattern: "mart", Options: "i"}
	assert.Equal(t, bson.A{
		bson.M{"firstname": regex},
		bson.M{"lastname": regex},
		bson.M{"email": regex},
	}, filter["$or"])
}

func TestBuildProductFilterPriceRange(t *testing.T) {
	query := url.Values{}
	query.Set("minPrice", "1")
	query.Set("maxPrice", "2")

	filter, err := BuildProductFilter(query)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gte": 1.0, "$lte": 2.0}, filter["price"])
}

func TestBuildProductFilterSingleBound(t *testing.T) {
	query := url.Values{}
	query.Set("minPrice", "2")

	filter, err := BuildProductFilter(query)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gte": 2.0}, filter["price"])
}

func TestBuildProductFilterNoBoundsOmitsPrice(t *testing.T) {
	query := url.Values{}
	query.Set("category", "stationery")

	filter, err := BuildProductFilter(query)
	require.NoError(t, err)

	_, hasPrice := filter["price"]
	assert.False(t, hasPrice)
	assert.Equal(t, "stationery", filter["category"])
}

func TestBuildProductFilterRejectsNonNumericPrice(t *testing.T) {
	query := url.Values{}
	query.Set("minPrice", "cheap")

	_, err := BuildProductFilter(query)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestBuildOrderFilter(t *testing.T) {
	userID := primitive.NewObjectID()
	query := url.Values{}
	query.Set("userId", userID.Hex())
	query.Set("status", "paid")

	filter, err := BuildOrderFilter(query)
	require.NoError(t, err)

	assert.Equal(t, userID, filter["user"])
	assert.Equal(t, "paid", filter["status"])
}

func TestBuildOrderFilterRejectsBadObjectID(t *testing.T) {
	query := url.Values{}
	query.Set("userId", "not-an-id")

	_, err := BuildOrderFilter(query)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestBuildInvoiceFilterDateRange(t *testing.T) {
	query := url.Values{}
	query.Set("startDate", "2024-01-01")
	query.Set("endDate", "2024-06-30T23:59:59Z")

	filter, err := BuildInvoiceFilter(query)
	require.NoError(t, err)

	bounds, ok := filter["issuedAt"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bounds["$gte"])
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC), bounds["$lte"])
}

func TestBuildInvoiceFilterRejectsBadDate(t *testing.T) {
	query := url.Values{}
	query.Set("startDate", "last tuesday")

	_, err := BuildInvoiceFilter(query)
	require.Error(t, err)
}

func TestBuildReviewFilterRatingRange(t *testing.T) {
	productID := primitive.NewObjectID()
	query := url.Values{}
	query.Set("productId", productID.Hex())
	query.Set("minRating", "3")
	query.Set("maxRating", "5")

	filter, err := BuildReviewFilter(query)
	require.NoError(t, err)

	assert.Equal(t, productID, filter["product"])
	assert.Equal(t, bson.M{"$gte": 3.0, "$lte": 5.0}, filter["rating"])
}

func TestBuildReviewFilterEmpty(t *testing.T) {
	filter, err := BuildReviewFilter(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, filter)
}
