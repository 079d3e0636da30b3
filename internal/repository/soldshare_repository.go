package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// SoldShareRepository provides data access methods for the sold_share table.
// Sold shares carry their profit/loss as stored at creation time; nothing
// here recomputes it.
type SoldShareRepository struct {
	db *sql.DB
}

// NewSoldShareRepository creates a new SoldShareRepository with the provided database connection.
func NewSoldShareRepository(db *sql.DB) *SoldShareRepository {
	return &SoldShareRepository{db: db}
}

const soldShareQuery = `
	SELECT ss.id, ss.stock_id, s.name, ss.quantity, ss.purchase_price,
		ss.sell_price, ss.purchase_date, ss.sell_date, ss.profit_or_loss, ss.created_at
	FROM sold_share ss
	JOIN stock s ON ss.stock_id = s.id
`

// GetSoldShares retrieves all sold share records, most recent sale first.
func (s *SoldShareRepository) GetSoldShares() ([]model.SoldShare, error) {
	query := soldShareQuery + ` ORDER BY ss.sell_date DESC, ss.created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sold_share table: %w", err)
	}
	defer rows.Close()

	shares := []model.SoldShare{}
	for rows.Next() {
		share, err := scanSoldShare(rows)
		if err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sold_share table: %w", err)
	}

	return shares, nil
}

// GetSoldShare retrieves a single sold share record by ID.
// Returns apperrors.ErrSoldShareNotFound if no row exists.
func (s *SoldShareRepository) GetSoldShare(soldShareID string) (model.SoldShare, error) {
	query := soldShareQuery + ` WHERE ss.id = ?`

	var share model.SoldShare
	var purchaseDateStr, sellDateStr, createdAtStr string

	err := s.db.QueryRow(query, soldShareID).Scan(
		&share.ID,
		&share.StockID,
		&share.StockName,
		&share.Quantity,
		&share.PurchasePrice,
		&share.SellPrice,
		&purchaseDateStr,
		&sellDateStr,
		&share.ProfitOrLoss,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.SoldShare{}, apperrors.ErrSoldShareNotFound
	}
	if err != nil {
		return model.SoldShare{}, fmt.Errorf("failed to scan sold_share table results: %w", err)
	}

	if share.PurchaseDate, err = ParseTime(purchaseDateStr); err != nil {
		return model.SoldShare{}, err
	}
	if share.SellDate, err = ParseTime(sellDateStr); err != nil {
		return model.SoldShare{}, err
	}
	if share.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.SoldShare{}, err
	}

	return share, nil
}

// InsertSoldShare persists a new sold share record, including its
// already-computed profit/loss.
func (s *SoldShareRepository) InsertSoldShare(ctx context.Context, share *model.SoldShare) error {
	query := `
		INSERT INTO sold_share (
			id, stock_id, quantity, purchase_price, sell_price,
			purchase_date, sell_date, profit_or_loss, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		share.ID,
		share.StockID,
		share.Quantity,
		share.PurchasePrice,
		share.SellPrice,
		share.PurchaseDate.UTC().Format("2006-01-02"),
		share.SellDate.UTC().Format("2006-01-02"),
		share.ProfitOrLoss,
		share.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sold share: %w", err)
	}

	return nil
}

// DeleteSoldShare removes a sold share record by ID.
// Returns apperrors.ErrSoldShareNotFound if no row was deleted.
func (s *SoldShareRepository) DeleteSoldShare(ctx context.Context, soldShareID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sold_share WHERE id = ?`, soldShareID)
	if err != nil {
		return fmt.Errorf("failed to delete sold share: %w", err)
	}

	return requireRowAffected(result, apperrors.ErrSoldShareNotFound)
}

func scanSoldShare(rows *sql.Rows) (model.SoldShare, error) {
	var share model.SoldShare
	var purchaseDateStr, sellDateStr, createdAtStr string

	err := rows.Scan(
		&share.ID,
		&share.StockID,
		&share.StockName,
		&share.Quantity,
		&share.PurchasePrice,
		&share.SellPrice,
		&purchaseDateStr,
		&sellDateStr,
		&share.ProfitOrLoss,
		&createdAtStr,
	)
	if err != nil {
		return model.SoldShare{}, fmt.Errorf("failed to scan sold_share table results: %w", err)
	}

	if share.PurchaseDate, err = ParseTime(purchaseDateStr); err != nil {
		return model.SoldShare{}, err
	}
	if share.SellDate, err = ParseTime(sellDateStr); err != nil {
		return model.SoldShare{}, err
	}
	if share.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.SoldShare{}, err
	}

	return share, nil
}
