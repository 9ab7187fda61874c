package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func UserRoutes(router *mux.Router, uc *controller.UserController) {
	router.HandleFunc("/api/users", uc.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users", uc.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/users/import", uc.ImportUsers).Methods(http.MethodPost)
	router.HandleFunc("/api/users/stats/orders", uc.GetUserOrderStats).Methods(http.MethodGet)
}
