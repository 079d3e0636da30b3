package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rmehta/stock-analysis-backend/internal/api/request"
	"github.com/rmehta/stock-analysis-backend/internal/api/response"
	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/service"
	"github.com/rmehta/stock-analysis-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// AllTransactions handles GET requests to retrieve all transactions across all stocks.
// Returns transaction details including stock name, date, quantity and price,
// newest first.
//
// Endpoint: GET /api/transaction
// Response: 200 OK with array of TransactionResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.transactionService.GetAllTransactions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transaction/{uuid}
// Response: 200 OK with TransactionResponse
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a buy or sell transaction.
// Validates the request body and, for sells, checks the held quantity before
// creating the transaction record.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (stockId, date, type, quantity, price)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if a sell exceeds the held quantity
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientShares) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrInsufficientShares.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
// Positions are recomputed from the remaining transactions, so deleting a
// mistaken entry and recreating it is the supported correction flow.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content on success
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
