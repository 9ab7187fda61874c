package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	database "github.com/YEHIA060606/backend-ecommerce/config"
	"github.com/YEHIA060606/backend-ecommerce/helper"
	"github.com/YEHIA060606/backend-ecommerce/models"
)

const requestTimeout = 10 * time.Second

const defaultImportFile = "data/users.json"

type UserController struct {
	users    *mongo.Collection
	validate *validator.Validate
}

func NewUserController(client *mongo.Client) *UserController {
	return &UserController{
		users:    database.OpenCollection(client, "user"),
		validate: validator.New(),
	}
}

// CreateUser registers a single user. Emails are unique; the store's
// unique index reports the conflict, so there is no separate existence
// check.
func (uc *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helper.RespondWithError(w, models.NewValidationError("Invalid request body"))
		return
	}

	if user.Role == "" {
		user.Role = "customer"
	}

	if err := uc.validate.Struct(user); err != nil {
		helper.RespondWithError(w, models.NewValidationError(helper.ValidationMessage(err)))
		return
	}

	if err := prepareUserForInsert(&user); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Password hashing failed", err))
		return
	}

	if _, err := uc.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			helper.RespondWithError(w, models.NewConflictError("Email already in use"))
			return
		}
		helper.RespondWithError(w, models.NewInternalError("User creation failed", err))
		return
	}

	user.Password = nil
	helper.RespondWithJSON(w, http.StatusCreated, user)
}

// GetUsers lists users with optional role and search filters, paginated.
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := helper.BuildUserFilter(r.URL.Query())
	if err != nil {
		helper.RespondWithError(w, err)
		return
	}
	pagination := helper.ResolvePagination(r.URL.Query())

	findOptions := options.Find().SetSkip(pagination.Skip()).SetLimit(pagination.Limit)
	cursor, err := uc.users.Find(ctx, filter, findOptions)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error retrieving users", err))
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding user data", err))
		return
	}
	for i := range users {
		users[i].Password = nil
	}

	total, err := uc.users.CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error counting users", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, helper.ListResponse{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
		Data:  users,
	})
}

// ImportUsers bulk-loads users from a JSON file on disk. Records are
// inserted one by one so a duplicate email or invalid record skips that
// record without aborting the batch; every failure is reported with its
// index and reason.
func (uc *UserController) ImportUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	path := os.Getenv("USERS_IMPORT_FILE")
	if path == "" {
		path = defaultImportFile
	}

	users, err := loadImportFile(path)
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error reading user import file", err))
		return
	}

	inserted := []models.User{}
	failed := []models.ImportFailure{}
	for i := range users {
		user := users[i]
		if user.Role == "" {
			user.Role = "customer"
		}

		email := ""
		if user.Email != nil {
			email = *user.Email
		}

		if err := uc.validate.Struct(user); err != nil {
			failed = append(failed, models.ImportFailure{Index: i, Email: email, Error: helper.ValidationMessage(err)})
			continue
		}

		if err := prepareUserForInsert(&user); err != nil {
			failed = append(failed, models.ImportFailure{Index: i, Email: email, Error: "password hashing failed"})
			continue
		}

		if _, err := uc.users.InsertOne(ctx, user); err != nil {
			reason := "insert failed"
			if mongo.IsDuplicateKeyError(err) {
				reason = "email already in use"
			}
			failed = append(failed, models.ImportFailure{Index: i, Email: email, Error: reason})
			continue
		}

		user.Password = nil
		inserted = append(inserted, user)
	}

	helper.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Import finished",
		"total":   len(inserted),
		"data":    inserted,
		"failed":  failed,
	})
}

// GetUserOrderStats reports order count and total spend per user, highest
// spenders first. Users without orders appear with zero counts.
func (uc *UserController) GetUserOrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cursor, err := uc.users.Aggregate(ctx, userOrderStatsPipeline())
	if err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error computing user statistics", err))
		return
	}
	defer cursor.Close(ctx)

	stats := []bson.M{}
	if err := cursor.All(ctx, &stats); err != nil {
		helper.RespondWithError(w, models.NewInternalError("Error decoding user statistics", err))
		return
	}

	helper.RespondWithJSON(w, http.StatusOK, stats)
}

func userOrderStatsPipeline() mongo.Pipeline {
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "order"},
		{Key: "localField", Value: "_id"},
		{Key: "foreignField", Value: "user"},
		{Key: "as", Value: "orders"},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "firstname", Value: 1},
		{Key: "lastname", Value: 1},
		{Key: "email", Value: 1},
		{Key: "role", Value: 1},
		{Key: "ordersCount", Value: bson.D{{Key: "$size", Value: "$orders"}}},
		{Key: "totalSpent", Value: bson.D{{Key: "$sum", Value: "$orders.totalAmount"}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "totalSpent", Value: -1}}}}

	return mongo.Pipeline{lookupStage, projectStage, sortStage}
}

func prepareUserForInsert(user *models.User) error {
	email := strings.ToLower(strings.TrimSpace(*user.Email))
	user.Email = &email

	hashed, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashedPassword := string(hashed)
	user.Password = &hashedPassword

	user.ID = primitive.NewObjectID()
	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	return nil
}

func loadImportFile(path string) ([]models.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}
