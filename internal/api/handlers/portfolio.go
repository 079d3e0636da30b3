package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rmehta/stock-analysis-backend/internal/api/request"
	"github.com/rmehta/stock-analysis-backend/internal/api/response"
	"github.com/rmehta/stock-analysis-backend/internal/apperrors"
	"github.com/rmehta/stock-analysis-backend/internal/service"
	"github.com/rmehta/stock-analysis-backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for portfolio endpoints.
// Positions are always derived from the transaction log at request time,
// there is no stored position state to get out of sync.
type PortfolioHandler struct {
	portfolioService   *service.PortfolioService
	defaultHorizonDays int
}

// NewPortfolioHandler creates a new PortfolioHandler. The defaultHorizonDays
// is used by the near-target endpoint when the request omits ?days=.
func NewPortfolioHandler(portfolioService *service.PortfolioService, defaultHorizonDays int) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:   portfolioService,
		defaultHorizonDays: defaultHorizonDays,
	}
}

// Positions handles GET requests to retrieve the aggregated portfolio.
// Each position carries buy/sell totals, average price, invested amount and
// realized profit or loss, sorted by stock name.
//
// Endpoint: GET /api/portfolio/positions
// Response: 200 OK with array of Position
// Error: 500 Internal Server Error if aggregation fails
func (h *PortfolioHandler) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.portfolioService.GetPositions(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// NearTarget handles GET requests to list positions whose target date falls
// within the horizon. Results are sorted most urgent first. Positions without
// a parseable target date are excluded.
//
// Endpoint: GET /api/portfolio/near-target?days=30
// Response: 200 OK with array of NearTargetPosition
// Error: 400 Bad Request if days is not a positive integer
// Error: 500 Internal Server Error if aggregation fails
func (h *PortfolioHandler) NearTarget(w http.ResponseWriter, r *http.Request) {
	horizonDays := h.defaultHorizonDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.RespondError(w, http.StatusBadRequest, "days must be a positive integer", "")
			return
		}
		horizonDays = parsed
	}

	positions, err := h.portfolioService.GetNearTarget(r.Context(), horizonDays, time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// UpdateTarget handles PUT requests to set a stock's target price and date.
//
// Endpoint: PUT /api/portfolio/stock/{uuid}/target
// Request Body: UpdateTargetRequest (targetPrice, targetDate)
// Response: 200 OK with confirmation message
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if stock not found
// Error: 500 Internal Server Error if update fails
func (h *PortfolioHandler) UpdateTarget(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTargetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTarget(req, time.Now().UTC()); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.portfolioService.UpdateStockTarget(r.Context(), stockID, req.TargetPrice, req.TargetDate); err != nil {
		if errors.Is(err, apperrors.ErrStockNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateTarget.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"message": "target updated"})
}
