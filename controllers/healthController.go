package controller

import (
	"net/http"

	"github.com/YEHIA060606/backend-ecommerce/helper"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	helper.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "OK",
		"message": "Service up and running",
	})
}
