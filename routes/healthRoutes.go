package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func HealthRoutes(router *mux.Router) {
	router.HandleFunc("/api/health", controller.HealthCheck).Methods(http.MethodGet)
}
