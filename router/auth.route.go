package router

import (
	"github.com/gorilla/mux"

	"github.com/stakex/StakeX/handlers"
	"github.com/stakex/StakeX/middleware"
)

func Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	transactionRoutes(r)

	r.HandleFunc("/api/auth/signup", handlers.RegisterUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/auth/login", handlers.Login).Methods("POST", "OPTIONS")

	restricted := r.PathPrefix("/").Subrouter()

	restricted.HandleFunc("/api/auth", handlers.GetUserDetails).Methods("GET", "OPTIONS")
	restricted.HandleFunc("/api/auth/user/{id}", handlers.UpdateUser).Methods("PATCH", "OPTIONS")
	restricted.HandleFunc("/api/auth/user/{id}", handlers.DeleteUser).Methods("DELETE", "OPTIONS")
	restricted.Use(middleware.AuthenticationMiddleware)

	return r
}
