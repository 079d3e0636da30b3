package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/api"
	"github.com/rmehta/stock-analysis-backend/internal/config"
	"github.com/rmehta/stock-analysis-backend/internal/database"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
	"github.com/rmehta/stock-analysis-backend/internal/scheduler"
	"github.com/rmehta/stock-analysis-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	stockRepo := repository.NewStockRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	soldShareRepo := repository.NewSoldShareRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	stockService := service.NewStockService(stockRepo)
	transactionService := service.NewTransactionService(
		transactionRepo,
		stockRepo,
	)
	portfolioService := service.NewPortfolioService(
		stockRepo,
		transactionRepo,
	)
	soldShareService := service.NewSoldShareService(
		soldShareRepo,
		stockRepo,
	)

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Stock:       stockService,
		Transaction: transactionService,
		Portfolio:   portfolioService,
		SoldShare:   soldShareService,
	}, cfg)

	// Start the near-target scan
	targetScan := scheduler.New(portfolioService, cfg.TargetScan)
	if err := targetScan.Start(); err != nil {
		log.Fatalf("Failed to start near-target scan: %v", err)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	targetScan.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
