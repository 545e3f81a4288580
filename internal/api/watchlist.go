package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/middleware"
)

// GetWatchlist godoc
// @Summary      List the watchlist
// @Tags         watchlist
// @Produce      json
// @Success      200  {array}  dto.WatchlistItemResponse
// @Router       /api/v1/watchlist [get]
func (h *Handler) GetWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewWatchlistResponse(h.svc.Watchlist()))
}

// AddToWatchlist godoc
// @Summary      Add a symbol to the watchlist
// @Description  Only symbols quoted on the ticker can be added
// @Tags         watchlist
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddWatchlistRequest  true  "Symbol to track"
// @Success      201   {object}  dto.WatchlistItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/watchlist [post]
func (h *Handler) AddToWatchlist(c *gin.Context) {
	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	it, err := h.svc.AddToWatchlist(req.Symbol, req.Name)
	if err != nil {
		middleware.AbortWithDomainError(c, "failed to add symbol", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWatchlistItemResponse(it))
}

// RemoveFromWatchlist godoc
// @Summary      Remove a symbol from the watchlist
// @Tags         watchlist
// @Param        symbol  path  string  true  "Ticker symbol"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/watchlist/{symbol} [delete]
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	if err := h.svc.RemoveFromWatchlist(c.Param("symbol")); err != nil {
		middleware.AbortWithDomainError(c, "failed to remove symbol", err)
		return
	}
	c.Status(http.StatusNoContent)
}
