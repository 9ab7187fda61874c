package routes

import (
	"net/http"

	controller "github.com/YEHIA060606/backend-ecommerce/controllers"
	"github.com/gorilla/mux"
)

func InvoiceRoutes(router *mux.Router, ic *controller.InvoiceController) {
	router.HandleFunc("/api/invoices", ic.CreateInvoice).Methods(http.MethodPost)
	router.HandleFunc("/api/invoices", ic.GetInvoices).Methods(http.MethodGet)
	router.HandleFunc("/api/invoices/stats/revenue", ic.GetRevenueStats).Methods(http.MethodGet)
}
