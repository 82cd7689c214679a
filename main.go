package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stakex/StakeX/config"
	"github.com/stakex/StakeX/middleware"
	"github.com/stakex/StakeX/router"
)

func main() {
	godotenv.Load(".env")

	config.SetLogger()

	// One startup connection to verify the store and create indexes;
	// handlers connect per request after that.
	client, err := config.ConnectToMongo()
	if err != nil {
		config.Logger.Warn(fmt.Sprintf("store not reachable at startup: %v", err))
	} else {
		if err := config.EnsureIndexes(client); err != nil {
			config.Logger.Warn(fmt.Sprintf("could not ensure indexes: %v", err))
		}
		client.Disconnect(context.Background())
	}

	r := router.Router()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	config.Logger.Info("Listening on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
