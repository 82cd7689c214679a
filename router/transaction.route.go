package router

import (
	"github.com/gorilla/mux"

	"github.com/stakex/StakeX/handlers"
)

func transactionRoutes(r *mux.Router) {
	r.HandleFunc("/api/transactions", handlers.GetTransactions).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/transactions", handlers.CreateTransaction).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/transactions/{id}", handlers.GetTransactionByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/transactions/{id}", handlers.UpdateTransaction).Methods("PUT", "OPTIONS")
	r.HandleFunc("/api/transactions/{id}", handlers.DeleteTransaction).Methods("DELETE", "OPTIONS")
}
