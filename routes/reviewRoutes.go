package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func ReviewRoutes(router *mux.Router, rc *controller.ReviewController) {
	router.HandleFunc("/api/reviews", rc.CreateReview).Methods(http.MethodPost)
	router.HandleFunc("/api/reviews", rc.GetReviews).Methods(http.MethodGet)
	router.HandleFunc("/api/reviews/stats/product", rc.GetProductReviewStats).Methods(http.MethodGet)
}
