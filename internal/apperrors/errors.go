package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrStockNotFound indicates that a stock with the given ID does not exist.
	ErrStockNotFound = errors.New("stock not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSoldShareNotFound indicates that a sold share record with the given ID does not exist.
	ErrSoldShareNotFound = errors.New("sold share not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientShares indicates that a sell transaction cannot be completed
	// because the position does not hold enough shares of the stock.
	ErrInsufficientShares = errors.New("insufficient shares for sale")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrStockInUse indicates that a stock cannot be deleted because transactions
	// or sold share records still reference it.
	ErrStockInUse = errors.New("stock is in use")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveStocks       = errors.New("failed to retrieve stocks")
	ErrFailedToRetrieveStock        = errors.New("failed to retrieve stock")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrievePositions    = errors.New("failed to retrieve positions")
	ErrFailedToRetrieveSoldShares   = errors.New("failed to retrieve sold shares")
	ErrFailedToRetrieveSoldShare    = errors.New("failed to retrieve sold share")
	ErrFailedToBuildReport          = errors.New("failed to build profit/loss report")
	ErrFailedToUpdateTarget         = errors.New("failed to update stock target")
)
