package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmehta/stock-analysis-backend/internal/api/request"
	"github.com/rmehta/stock-analysis-backend/internal/model"
	"github.com/rmehta/stock-analysis-backend/internal/portfolio"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
)

// SoldShareService handles the closed-lot workflow. Sold share records are
// entered explicitly by the user and live independently of the transaction
// history: recording a sell transaction does not produce a sold share.
type SoldShareService struct {
	soldShareRepo *repository.SoldShareRepository
	stockRepo     *repository.StockRepository
}

// NewSoldShareService creates a new SoldShareService with the provided repository dependencies.
func NewSoldShareService(
	soldShareRepo *repository.SoldShareRepository,
	stockRepo *repository.StockRepository,
) *SoldShareService {
	return &SoldShareService{
		soldShareRepo: soldShareRepo,
		stockRepo:     stockRepo,
	}
}

// GetSoldShares retrieves all sold share records.
func (s *SoldShareService) GetSoldShares() ([]model.SoldShare, error) {
	return s.soldShareRepo.GetSoldShares()
}

// GetSoldShare retrieves a single sold share record by its ID.
func (s *SoldShareService) GetSoldShare(soldShareID string) (model.SoldShare, error) {
	return s.soldShareRepo.GetSoldShare(soldShareID)
}

// CreateSoldShare records a completed round-trip trade. The profit/loss is
// computed here, once, and stored with the record; later reads never
// recompute it.
func (s *SoldShareService) CreateSoldShare(ctx context.Context, req request.CreateSoldShareRequest) (*model.SoldShare, error) {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	sellDate, err := time.Parse("2006-01-02", req.SellDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.stockRepo.GetStock(req.StockID); err != nil {
		return nil, err
	}

	share := &model.SoldShare{
		ID:            uuid.New().String(),
		StockID:       req.StockID,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		SellPrice:     req.SellPrice,
		PurchaseDate:  purchaseDate,
		SellDate:      sellDate,
		ProfitOrLoss:  req.Quantity * (req.SellPrice - req.PurchasePrice),
		CreatedAt:     time.Now(),
	}

	if err := s.soldShareRepo.InsertSoldShare(ctx, share); err != nil {
		return nil, fmt.Errorf("failed to create sold share: %w", err)
	}

	return share, nil
}

// DeleteSoldShare removes a sold share record.
func (s *SoldShareService) DeleteSoldShare(ctx context.Context, soldShareID string) error {
	return s.soldShareRepo.DeleteSoldShare(ctx, soldShareID)
}

// GetProfitLossReport aggregates all sold share records into the summary
// report, recomputed from a fresh snapshot on every call.
func (s *SoldShareService) GetProfitLossReport() (model.ProfitLossReport, error) {
	shares, err := s.soldShareRepo.GetSoldShares()
	if err != nil {
		return model.ProfitLossReport{}, err
	}

	return portfolio.BuildProfitLossReport(shares), nil
}
