package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// StockRepository provides data access methods for the stock table.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

const stockColumns = `
	id, name, sector_name, current_price, current_ratio,
	debt_equity_ratio, price_book_ratio, target_price, target_date, created_at
`

// GetStocks retrieves all stocks ordered by name.
func (s *StockRepository) GetStocks() ([]model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock ORDER BY name ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock table: %w", err)
	}
	defer rows.Close()

	stocks := []model.Stock{}
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, stock)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock table: %w", err)
	}

	return stocks, nil
}

// GetStock retrieves a single stock by its ID.
// Returns apperrors.ErrStockNotFound if no row exists.
func (s *StockRepository) GetStock(stockID string) (model.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = ?`

	row := s.db.QueryRow(query, stockID)
	stock, err := scanStock(row)
	if err == sql.ErrNoRows {
		return model.Stock{}, apperrors.ErrStockNotFound
	}
	if err != nil {
		return model.Stock{}, err
	}

	return stock, nil
}

// InsertStock persists a new stock record.
func (s *StockRepository) InsertStock(ctx context.Context, stock *model.Stock) error {
	query := `
		INSERT INTO stock (
			id, name, sector_name, current_price, current_ratio,
			debt_equity_ratio, price_book_ratio, target_price, target_date, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		stock.ID,
		stock.Name,
		nullIfEmpty(stock.SectorName),
		stock.CurrentPrice,
		stock.CurrentRatio,
		stock.DebtEquityRatio,
		stock.PriceBookRatio,
		stock.TargetPrice,
		nullIfEmpty(stock.TargetDate),
		stock.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock: %w", err)
	}

	return nil
}

// UpdateStock overwrites the mutable fields of an existing stock.
// Returns apperrors.ErrStockNotFound if no row was updated.
func (s *StockRepository) UpdateStock(ctx context.Context, stock *model.Stock) error {
	query := `
		UPDATE stock SET
			name = ?, sector_name = ?, current_price = ?, current_ratio = ?,
			debt_equity_ratio = ?, price_book_ratio = ?, target_price = ?, target_date = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		stock.Name,
		nullIfEmpty(stock.SectorName),
		stock.CurrentPrice,
		stock.CurrentRatio,
		stock.DebtEquityRatio,
		stock.PriceBookRatio,
		stock.TargetPrice,
		nullIfEmpty(stock.TargetDate),
		stock.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return requireRowAffected(result, apperrors.ErrStockNotFound)
}

// UpdateTarget sets the target price and target date for a stock.
// Returns apperrors.ErrStockNotFound if no row was updated.
func (s *StockRepository) UpdateTarget(ctx context.Context, stockID string, targetPrice float64, targetDate string) error {
	query := `UPDATE stock SET target_price = ?, target_date = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, targetPrice, nullIfEmpty(targetDate), stockID)
	if err != nil {
		return fmt.Errorf("failed to update stock target: %w", err)
	}

	return requireRowAffected(result, apperrors.ErrStockNotFound)
}

// InUse reports whether any transactions or sold shares reference the stock.
func (s *StockRepository) InUse(stockID string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM stock_transaction WHERE stock_id = ?)
		    OR EXISTS(SELECT 1 FROM sold_share WHERE stock_id = ?)
	`

	var inUse bool
	if err := s.db.QueryRow(query, stockID, stockID).Scan(&inUse); err != nil {
		return false, fmt.Errorf("failed to check stock references: %w", err)
	}
	return inUse, nil
}

// DeleteStock removes a stock.
// Returns apperrors.ErrStockNotFound if no row was deleted.
func (s *StockRepository) DeleteStock(ctx context.Context, stockID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM stock WHERE id = ?`, stockID)
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	return requireRowAffected(result, apperrors.ErrStockNotFound)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStock(row scanner) (model.Stock, error) {
	var stock model.Stock
	var sectorName, targetDate sql.NullString
	var createdAtStr string

	err := row.Scan(
		&stock.ID,
		&stock.Name,
		&sectorName,
		&stock.CurrentPrice,
		&stock.CurrentRatio,
		&stock.DebtEquityRatio,
		&stock.PriceBookRatio,
		&stock.TargetPrice,
		&targetDate,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Stock{}, err
	}
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to scan stock table results: %w", err)
	}

	stock.SectorName = sectorName.String
	stock.TargetDate = targetDate.String

	stock.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Stock{}, err
	}

	return stock, nil
}

func nullIfEmpty(str string) any {
	if str == "" {
		return nil
	}
	return str
}

func requireRowAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
