package helper

import (
	"net/url"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/YEHIA060606/backend-ecommerce/models"
)

// Per-resource filter builders. Each maps the recognized query parameters
// to a MongoDB filter document; absent parameters contribute nothing, so
// an unfiltered request yields an empty match-all document. Malformed
// numeric, date or id values are rejected with a validation error rather
// than coerced.

func BuildUserFilter(query url.Values) (bson.M, error) {
	filter := bson.M{}

	if role := query.Get("role"); role != "" {
		filter["role"] = role
	}

	if search := query.Get("search"); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstname": regex},
			bson.M{"lastname": regex},
			bson.M{"email": regex},
		}
	}

	return filter, nil
}

func BuildProductFilter(query url.Values) (bson.M, error) {
	filter := bson.M{}

	if category := query.Get("category"); category != "" {
		filter["category"] = category
	}

	if search := query.Get("search"); search != "" {
		filter["name"] = primitive.Regex{Pattern: search, Options: "i"}
	}

	if err := numberRange(query, "minPrice", "maxPrice", "price", filter); err != nil {
		return nil, err
	}

	return filter, nil
}

func BuildOrderFilter(query url.Values) (bson.M, error) {
	filter := bson.M{}

	if err := objectIDFilter(query, "userId", "user", filter); err != nil {
		return nil, err
	}

	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}

	return filter, nil
}

func BuildInvoiceFilter(query url.Values) (bson.M, error) {
	filter := bson.M{}

	if err := objectIDFilter(query, "userId", "user", filter); err != nil {
		return nil, err
	}

	if status := query.Get("status"); status != "" {
		filter["status"] = status
	}

	if err := dateRange(query, "startDate", "endDate", "issuedAt", filter); err != nil {
		return nil, err
	}

	return filter, nil
}

func BuildReviewFilter(query url.Values) (bson.M, error) {
	filter := bson.M{}

	if err := objectIDFilter(query, "userId", "user", filter); err != nil {
		return nil, err
	}

	if err := objectIDFilter(query, "productId", "product", filter); err != nil {
		return nil, err
	}

	if err := numberRange(query, "minRating", "maxRating", "rating", filter); err != nil {
		return nil, err
	}

	return filter, nil
}

func objectIDFilter(query url.Values, param, field string, filter bson.M) error {
	raw := query.Get(param)
	if raw == "" {
		return nil
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return models.NewValidationError(param + " must be a valid object id")
	}

	filter[field] = id
	return nil
}

// numberRange adds inclusive $gte/$lte bounds on field. Each bound is
// independently optional; the field key is only set when at least one
// bound is present.
func numberRange(query url.Values, minParam, maxParam, field string, filter bson.M) error {
	bounds := bson.M{}

	if raw := query.Get(minParam); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.NewValidationError(minParam + " must be a number")
		}
		bounds["$gte"] = value
	}

	if raw := query.Get(maxParam); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.NewValidationError(maxParam + " must be a number")
		}
		bounds["$lte"] = value
	}

	if len(bounds) > 0 {
		filter[field] = bounds
	}
	return nil
}

func dateRange(query url.Values, startParam, endParam, field string, filter bson.M) error {
	bounds := bson.M{}

	if raw := query.Get(startParam); raw != "" {
		value, err := parseDate(raw)
		if err != nil {
			return models.NewValidationError(startParam + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
		}
		bounds["$gte"] = value
	}

	if raw := query.Get(endParam); raw != "" {
		value, err := parseDate(raw)
		if err != nil {
			return models.NewValidationError(endParam + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
		}
		bounds["$lte"] = value
	}

	if len(bounds) > 0 {
		filter[field] = bounds
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
