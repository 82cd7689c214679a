package handlers

import (
	"context"
	"net/http"

	"github.com/stakex/StakeX/config"
	"github.com/stakex/StakeX/helpers"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	client, err := config.ConnectToMongo()
	if err != nil {
		helpers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "error",
			"database": "disconnected",
		})
		return
	}
	defer client.Disconnect(context.Background())

	helpers.RespondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "connected",
	})
}
