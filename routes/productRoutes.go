package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func ProductRoutes(router *mux.Router, pc *controller.ProductController) {
	router.HandleFunc("/api/products", pc.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/products", pc.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/products/stats/basic", pc.GetProductStats).Methods(http.MethodGet)
}
