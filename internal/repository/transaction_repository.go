package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// TransactionRepository provides data access methods for the
// stock_transaction table. Transactions are immutable: there are insert and
// delete paths but no update, since a correction is a delete plus recreate.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves the full transaction history ordered by date,
// with insertion order breaking same-day ties. This is the snapshot the
// position aggregation folds over; the ordering matters because sells are
// costed at the running buy-side average.
func (s *TransactionRepository) GetTransactions() ([]model.Transaction, error) {
	query := `
		SELECT id, stock_id, date, type, quantity, price, created_at
		FROM stock_transaction
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionsByStock retrieves the ordered transaction history for one stock.
func (s *TransactionRepository) GetTransactionsByStock(stockID string) ([]model.Transaction, error) {
	query := `
		SELECT id, stock_id, date, type, quantity, price, created_at
		FROM stock_transaction
		WHERE stock_id = ?
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.Query(query, stockID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID, enriched with the
// stock name for display.
// Returns apperrors.ErrTransactionNotFound if no row exists.
func (s *TransactionRepository) GetTransaction(transactionID string) (model.TransactionResponse, error) {
	query := `
		SELECT t.id, t.stock_id, s.name, t.date, t.type, t.quantity, t.price
		FROM stock_transaction t
		JOIN stock s ON t.stock_id = s.id
		WHERE t.id = ?
	`

	var t model.TransactionResponse
	var dateStr string

	err := s.db.QueryRow(query, transactionID).Scan(
		&t.ID,
		&t.StockID,
		&t.StockName,
		&dateStr,
		&t.Type,
		&t.Quantity,
		&t.Price,
	)
	if err == sql.ErrNoRows {
		return model.TransactionResponse{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan stock_transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil {
		return t, err
	}

	return t, nil
}

// GetAllTransactionResponses retrieves every transaction enriched with its
// stock name, newest first, for the audit listing.
func (s *TransactionRepository) GetAllTransactionResponses() ([]model.TransactionResponse, error) {
	query := `
		SELECT t.id, t.stock_id, s.name, t.date, t.type, t.quantity, t.price
		FROM stock_transaction t
		JOIN stock s ON t.stock_id = s.id
		ORDER BY t.date DESC, t.created_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_transaction table: %w", err)
	}
	defer rows.Close()

	responses := []model.TransactionResponse{}
	for rows.Next() {
		var t model.TransactionResponse
		var dateStr string

		err := rows.Scan(
			&t.ID,
			&t.StockID,
			&t.StockName,
			&dateStr,
			&t.Type,
			&t.Quantity,
			&t.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock_transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}

		responses = append(responses, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_transaction table: %w", err)
	}

	return responses, nil
}

// InsertTransaction persists a new transaction record.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO stock_transaction (id, stock_id, date, type, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.StockID,
		t.Date.UTC().Format("2006-01-02"),
		t.Type,
		t.Quantity,
		t.Price,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction by ID.
// Returns apperrors.ErrTransactionNotFound if no row was deleted.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM stock_transaction WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return requireRowAffected(result, apperrors.ErrTransactionNotFound)
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string

	err := rows.Scan(
		&t.ID,
		&t.StockID,
		&dateStr,
		&t.Type,
		&t.Quantity,
		&t.Price,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan stock_transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Transaction{}, err
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}
