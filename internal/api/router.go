package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rmehta/stock-analysis-backend/internal/api/handlers"
	custommiddleware "github.com/rmehta/stock-analysis-backend/internal/api/middleware"
	"github.com/rmehta/stock-analysis-backend/internal/config"
	"github.com/rmehta/stock-analysis-backend/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	System      *service.SystemService
	Stock       *service.StockService
	Transaction *service.TransactionService
	Portfolio   *service.PortfolioService
	SoldShare   *service.SoldShareService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/stocks", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(svc.Stock)
			r.Get("/", stockHandler.AllStocks)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", stockHandler.CreateStock)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", stockHandler.GetStock)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", stockHandler.UpdateStock)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", stockHandler.DeleteStock)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.AllTransactions)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio, cfg.TargetScan.HorizonDays)
			r.Get("/positions", portfolioHandler.Positions)
			r.Get("/near-target", portfolioHandler.NearTarget)

			r.Route("/stock/{uuid}/target", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", portfolioHandler.UpdateTarget)
			})
		})

		r.Route("/soldshares", func(r chi.Router) {
			soldShareHandler := handlers.NewSoldShareHandler(svc.SoldShare)
			r.Get("/", soldShareHandler.AllSoldShares)
			r.Get("/profit-loss", soldShareHandler.ProfitLossReport)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", soldShareHandler.CreateSoldShare)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", soldShareHandler.GetSoldShare)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", soldShareHandler.DeleteSoldShare)
			})
		})
	})

	return r
}
