package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/middleware"
	"github.com/guttosm/dashpulse/internal/service"
)

// Handler maps HTTP requests onto the DashboardService.
//
// Responsibilities:
//   - Bind and validate query parameters and JSON bodies
//   - Call the service with the request context
//   - Translate domain results into response DTOs
//   - Map domain errors to status codes through middleware.StatusFor
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a Handler over svc.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetSeries godoc
// @Summary      Get a mock time series
// @Description  Returns the cached 31-day synthetic series for a symbol and visualization type. The first request generates it; later requests return the same data.
// @Tags         series
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol" example(AAPL)
// @Param        type    query     string  false  "trend-line, dynamic-heatmap or 3d-bar-chart (default: preference)" example(trend-line)
// @Success      200     {object}  object             "Series"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Generation failure"
// @Router       /api/v1/series [get]
func (h *Handler) GetSeries(c *gin.Context) {
	var q dto.SeriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", err)
		return
	}

	series, err := h.svc.Series(c.Request.Context(), q.Symbol, q.Type)
	if err != nil {
		middleware.AbortWithDomainError(c, "failed to load series", err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetDashboard godoc
// @Summary      Get the dashboard payload
// @Description  Portfolio cards, ticker quotes, watchlist and the featured series in one response
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	d, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		middleware.AbortWithDomainError(c, "failed to build dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		Cards:     d.Cards,
		Ticker:    dto.NewTickerResponse(d.Quotes),
		Watchlist: dto.NewWatchlistResponse(d.Watchlist),
		Featured:  d.Featured,
	})
}

// GetTicker godoc
// @Summary      Get ticker quotes
// @Tags         ticker
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/v1/ticker [get]
func (h *Handler) GetTicker(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTickerResponse(h.svc.Ticker()))
}

// RefreshTicker godoc
// @Summary      Refresh ticker quotes now
// @Description  Advances every quote once and pushes the snapshot to stream subscribers. Used with the manual refresh rate.
// @Tags         ticker
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/v1/ticker/refresh [post]
func (h *Handler) RefreshTicker(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTickerResponse(h.svc.RefreshTicker()))
}

// GetPortfolio godoc
// @Summary      Get portfolio summary cards
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  models.PortfolioCard
// @Router       /api/v1/portfolio [get]
func (h *Handler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Portfolio())
}
