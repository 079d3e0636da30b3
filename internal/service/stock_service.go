package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/model"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
)

// StockService handles stock-related business logic operations.
type StockService struct {
	stockRepo *repository.StockRepository
}

// NewStockService creates a new StockService with the provided repository dependencies.
func NewStockService(stockRepo *repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// GetAllStocks retrieves all stocks.
func (s *StockService) GetAllStocks() ([]model.Stock, error) {
	return s.stockRepo.GetStocks()
}

// GetStock retrieves a single stock by its ID.
func (s *StockService) GetStock(stockID string) (model.Stock, error) {
	return s.stockRepo.GetStock(stockID)
}

// CreateStock registers a new stock.
func (s *StockService) CreateStock(ctx context.Context, req request.CreateStockRequest) (*model.Stock, error) {
	stock := &model.Stock{
		ID:              uuid.New().String(),
		Name:            req.Name,
		SectorName:      req.SectorName,
		CurrentPrice:    req.CurrentPrice,
		CurrentRatio:    req.CurrentRatio,
		DebtEquityRatio: req.DebtEquityRatio,
		PriceBookRatio:  req.PriceBookRatio,
		TargetPrice:     req.TargetPrice,
		TargetDate:      req.TargetDate,
		CreatedAt:       time.Now(),
	}

	if err := s.stockRepo.InsertStock(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return stock, nil
}

// UpdateStock applies the provided fields to an existing stock.
func (s *StockService) UpdateStock(ctx context.Context, stockID string, req request.UpdateStockRequest) (*model.Stock, error) {
	stock, err := s.stockRepo.GetStock(stockID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		stock.Name = *req.Name
	}
	if req.SectorName != nil {
		stock.SectorName = *req.SectorName
	}
	if req.CurrentPrice != nil {
		stock.CurrentPrice = *req.CurrentPrice
	}
	if req.CurrentRatio != nil {
		stock.CurrentRatio = *req.CurrentRatio
	}
	if req.DebtEquityRatio != nil {
		stock.DebtEquityRatio = *req.DebtEquityRatio
	}
	if req.PriceBookRatio != nil {
		stock.PriceBookRatio = *req.PriceBookRatio
	}
	if req.TargetPrice != nil {
		stock.TargetPrice = *req.TargetPrice
	}
	if req.TargetDate != nil {
		stock.TargetDate = *req.TargetDate
	}

	if err := s.stockRepo.UpdateStock(ctx, &stock); err != nil {
		return nil, err
	}

	return &stock, nil
}

// DeleteStock removes a stock. A stock with transactions or sold share
// records is protected: the history behind positions and reports must not
// disappear through a stock deletion.
func (s *StockService) DeleteStock(ctx context.Context, stockID string) error {
	inUse, err := s.stockRepo.InUse(stockID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: transactions or sold shares still reference it", apperrors.ErrStockInUse)
	}

	return s.stockRepo.DeleteStock(ctx, stockID)
}
