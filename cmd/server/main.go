// Package main boots the pluto ledger API server.
//
// @title Pluto Ledger API
// @version 1.0
// @description Personal finance ledger: transactions, accounts, investments, credit cards and statistics.
// @BasePath /api
package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/plutoledger/pluto/internal/db"
	"github.com/plutoledger/pluto/internal/handlers"
	"github.com/plutoledger/pluto/internal/logger"
	"github.com/plutoledger/pluto/internal/repositories"
	"github.com/plutoledger/pluto/internal/services"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		log.Fatal("database health check failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}
	log.Info("database connection established")

	// Stores
	transactionRepo := repositories.NewTransactionRepository(database)
	accountRepo := repositories.NewAccountRepository(database)
	investmentRepo := repositories.NewInvestmentRepository(database)
	creditCardRepo := repositories.NewCreditCardRepository(database)
	categoryRepo := repositories.NewCategoryRepository(database)

	// Services
	transactionService := services.NewTransactionService(
		database, transactionRepo, accountRepo, investmentRepo, creditCardRepo, categoryRepo, log)
	accountService := services.NewAccountService(accountRepo)
	investmentService := services.NewInvestmentService(investmentRepo)
	creditCardService := services.NewCreditCardService(creditCardRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	accountHandler := handlers.NewAccountHandler(accountService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	creditCardHandler := handlers.NewCreditCardHandler(creditCardService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "pluto-backend",
		})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/transactions", transactionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/transactions", transactionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/transactions/stats", transactionHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/transactions/investment/{investmentId}", transactionHandler.ListByInvestment).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", transactionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", transactionHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id}", transactionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/transactions/{id}/attachments/{attachmentId}", transactionHandler.RemoveAttachment).Methods(http.MethodDelete)

	api.HandleFunc("/accounts", accountHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/accounts", accountHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}", accountHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}", accountHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{id}", accountHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/investments", investmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/investments", investmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/investments/{id}", investmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/investments/{id}", investmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/investments/{id}", investmentHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/credit-cards", creditCardHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/credit-cards", creditCardHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/credit-cards/{id}", creditCardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/credit-cards/{id}", creditCardHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/credit-cards/{id}", creditCardHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/categories", categoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/categories", categoryHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods(http.MethodDelete)

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, cors(router)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
