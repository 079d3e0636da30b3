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

// StockHandler handles HTTP requests for stock endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the stockService.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// AllStocks handles GET requests to retrieve all tracked stocks.
//
// Endpoint: GET /api/stocks
// Response: 200 OK with array of Stock
// Error: 500 Internal Server Error if retrieval fails
func (h *StockHandler) AllStocks(w http.ResponseWriter, _ *http.Request) {
	stocks, err := h.stockService.GetAllStocks()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStocks.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stocks)
}

// GetStock handles GET requests to retrieve a single stock by ID.
//
// Endpoint: GET /api/stocks/{uuid}
// Response: 200 OK with Stock
// Error: 400 Bad Request if stock ID is invalid (validated by middleware)
// Error: 404 Not Found if stock not found
// Error: 500 Internal Server Error if retrieval fails
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "uuid")

	stock, err := h.stockService.GetStock(stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStock.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// CreateStock handles POST requests to create a new stock.
// Validates the request body and creates a stock record in the database.
//
// Endpoint: POST /api/stocks
// Request Body: CreateStockRequest (name, sectorName, prices, optional target)
// Response: 201 Created with Stock
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateStockRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStock(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stock, err := h.stockService.CreateStock(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create stock", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, stock)
}

// UpdateStock handles PUT requests to update an existing stock.
// Only the fields present in the request body are changed.
//
// Endpoint: PUT /api/stocks/{uuid}
// Request Body: UpdateStockRequest (any subset of stock fields)
// Response: 200 OK with updated Stock
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if stock not found
// Error: 500 Internal Server Error if update fails
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateStockRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateStock(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stock, err := h.stockService.UpdateStock(r.Context(), stockID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update stock", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// DeleteStock handles DELETE requests to remove a stock.
//
// Endpoint: DELETE /api/stocks/{uuid}
// Response: 204 No Content on success
// Error: 400 Bad Request if stock ID is invalid (validated by middleware)
// Error: 404 Not Found if stock not found
// Error: 409 Conflict if transactions or sold shares still reference the stock
// Error: 500 Internal Server Error if deletion fails
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "uuid")

	if err := h.stockService.DeleteStock(r.Context(), stockID); err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrStockInUse) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrStockInUse.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete stock", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
