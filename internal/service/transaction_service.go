package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/model"
	"github.com/rmehta/stock-analysis-backend/internal/portfolio"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	stockRepo       *repository.StockRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	stockRepo *repository.StockRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		stockRepo:       stockRepo,
	}
}

// GetAllTransactions retrieves every transaction enriched with its stock name.
func (s *TransactionService) GetAllTransactions() ([]model.TransactionResponse, error) {
	return s.transactionRepo.GetAllTransactionResponses()
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.TransactionResponse, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction records a buy or sell against a stock.
//
// Sells are gated here, before anything reaches the database: selling more
// than the stock's current net quantity returns ErrInsufficientShares. The
// position aggregation itself never rejects an oversell, so this check is
// the only thing standing between the user and a negative position.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.stockRepo.GetStock(req.StockID); err != nil {
		return nil, err
	}

	if req.Type == model.TransactionSell {
		held, err := s.heldQuantity(req.StockID)
		if err != nil {
			return nil, err
		}
		if req.Quantity > held {
			return nil, fmt.Errorf("%w: have %v, want to sell %v",
				apperrors.ErrInsufficientShares, held, req.Quantity)
		}
	}

	transaction := &model.Transaction{
		ID:        uuid.New().String(),
		StockID:   req.StockID,
		Date:      transactionDate,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Price:     req.Price,
		CreatedAt: time.Now(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction. Positions derived afterwards
// simply no longer include it; there is no compensating bookkeeping.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// heldQuantity computes the net quantity currently held for one stock.
func (s *TransactionService) heldQuantity(stockID string) (float64, error) {
	transactions, err := s.transactionRepo.GetTransactionsByStock(stockID)
	if err != nil {
		return 0, err
	}

	pos, ok := portfolio.Aggregate(transactions)[stockID]
	if !ok {
		return 0, nil
	}
	return pos.TotalQuantity, nil
}
