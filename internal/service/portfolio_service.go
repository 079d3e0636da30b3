package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rmehta/stock-analysis-backend/internal/model"
	"github.com/rmehta/stock-analysis-backend/internal/portfolio"
	"github.com/rmehta/stock-analysis-backend/internal/repository"
)

// PortfolioService derives holding positions from the transaction history.
// Positions are recomputed from a fresh snapshot on every call: totals are
// financial figures, so staleness is worse than the cost of a linear fold.
type PortfolioService struct {
	stockRepo       *repository.StockRepository
	transactionRepo *repository.TransactionRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	stockRepo *repository.StockRepository,
	transactionRepo *repository.TransactionRepository,
) *PortfolioService {
	return &PortfolioService{
		stockRepo:       stockRepo,
		transactionRepo: transactionRepo,
	}
}

// GetPositions loads the stock list and the full transaction history,
// folds the history into per-stock positions, and attaches the stock
// metadata and target fields. Positions are returned sorted by stock name
// so the listing is deterministic.
//
// Stocks with no transactions do not appear: a position exists only once
// something has been traded.
func (s *PortfolioService) GetPositions(ctx context.Context) ([]model.Position, error) {
	var stocks []model.Stock
	var transactions []model.Transaction

	// Both reads go against the same single-writer database, so loading
	// them concurrently still observes a consistent snapshot.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stocks, err = s.stockRepo.GetStocks()
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetTransactions()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := portfolio.Aggregate(transactions)

	stocksByID := make(map[string]model.Stock, len(stocks))
	for _, stock := range stocks {
		stocksByID[stock.ID] = stock
	}

	positions := make([]model.Position, 0, len(byID))
	for stockID, pos := range byID {
		if stock, ok := stocksByID[stockID]; ok {
			stockCopy := stock
			pos.Stock = &stockCopy
			*pos = portfolio.WithTarget(*pos, stock.TargetPrice, stock.TargetDate)
		}
		positions = append(positions, *pos)
	}

	sort.Slice(positions, func(i, j int) bool {
		nameI, nameJ := positions[i].StockID, positions[j].StockID
		if positions[i].Stock != nil && positions[j].Stock != nil {
			nameI, nameJ = positions[i].Stock.Name, positions[j].Stock.Name
		}
		return nameI < nameJ
	})

	return positions, nil
}

// GetNearTarget returns the positions whose target date falls within
// horizonDays of asOf, most urgent first.
func (s *PortfolioService) GetNearTarget(ctx context.Context, horizonDays int, asOf time.Time) ([]model.NearTargetPosition, error) {
	positions, err := s.GetPositions(ctx)
	if err != nil {
		return nil, err
	}

	return portfolio.FilterNearTarget(positions, horizonDays, asOf), nil
}

// UpdateStockTarget sets the target price and date on a stock. The date is
// persisted as given; future-dating is enforced at the validation layer.
func (s *PortfolioService) UpdateStockTarget(ctx context.Context, stockID string, targetPrice float64, targetDate string) error {
	return s.stockRepo.UpdateTarget(ctx, stockID, targetPrice, targetDate)
}
