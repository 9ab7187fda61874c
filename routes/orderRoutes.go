package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, oc *controller.OrderController) {
	router.HandleFunc("/api/orders", oc.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/orders", oc.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/stats/monthly", oc.GetMonthlyOrderStats).Methods(http.MethodGet)
}
