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

// SoldShareHandler handles HTTP requests for sold share endpoints.
// Sold share records are standalone closed lots, recorded separately from
// the transaction log.
type SoldShareHandler struct {
	soldShareService *service.SoldShareService
}

// NewSoldShareHandler creates a new SoldShareHandler with the provided service dependency.
func NewSoldShareHandler(soldShareService *service.SoldShareService) *SoldShareHandler {
	return &SoldShareHandler{
		soldShareService: soldShareService,
	}
}

// AllSoldShares handles GET requests to retrieve all sold share records,
// most recent sale first.
//
// Endpoint: GET /api/soldshares
// Response: 200 OK with array of SoldShare
// Error: 500 Internal Server Error if retrieval fails
func (h *SoldShareHandler) AllSoldShares(w http.ResponseWriter, _ *http.Request) {
	shares, err := h.soldShareService.GetSoldShares()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSoldShares.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, shares)
}

// GetSoldShare handles GET requests to retrieve a single sold share record by ID.
//
// Endpoint: GET /api/soldshares/{uuid}
// Response: 200 OK with SoldShare
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the record does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *SoldShareHandler) GetSoldShare(w http.ResponseWriter, r *http.Request) {
	soldShareID := chi.URLParam(r, "uuid")

	share, err := h.soldShareService.GetSoldShare(soldShareID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSoldShareNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSoldShareNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSoldShare.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, share)
}

// CreateSoldShare handles POST requests to record a closed lot. The profit or
// loss is computed once at creation from the stored purchase and sell prices.
//
// Endpoint: POST /api/soldshares
// Request Body: CreateSoldShareRequest (stockId, quantity, prices, dates)
// Response: 201 Created with SoldShare
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *SoldShareHandler) CreateSoldShare(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSoldShareRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSoldShare(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	share, err := h.soldShareService.CreateSoldShare(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create sold share", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, share)
}

// DeleteSoldShare handles DELETE requests to remove a sold share record.
//
// Endpoint: DELETE /api/soldshares/{uuid}
// Response: 204 No Content on success
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the record does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *SoldShareHandler) DeleteSoldShare(w http.ResponseWriter, r *http.Request) {
	soldShareID := chi.URLParam(r, "uuid")

	if err := h.soldShareService.DeleteSoldShare(r.Context(), soldShareID); err != nil {
		if errors.Is(err, apperrors.ErrSoldShareNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSoldShareNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete sold share", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ProfitLossReport handles GET requests to summarize realized profit and loss
// across all sold share records. Lots that closed flat count toward the trade
// total only.
//
// Endpoint: GET /api/soldshares/profit-loss
// Response: 200 OK with ProfitLossReport
// Error: 500 Internal Server Error if the report cannot be built
func (h *SoldShareHandler) ProfitLossReport(w http.ResponseWriter, _ *http.Request) {
	report, err := h.soldShareService.GetProfitLossReport()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
