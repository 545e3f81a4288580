package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/dashpulse/internal/middleware"
)

// DefaultRequestTimeout bounds every non-streaming API request.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig tunes the middleware chain.
type RouterConfig struct {
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// NewRouter creates a Gin engine with every API route mounted on handler.
//
// Middleware order: RequestID, RequestLogger, Recovery, ErrorHandler, RateLimiter.
// The request timeout wraps all of /api/v1 except the websocket stream, which lives
// as long as its client.
//
// Health and readiness endpoints are registered by app.InitializeApp.
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	v1.GET("/ticker/stream", handler.StreamTicker)

	api := v1.Group("", middleware.Timeout(cfg.RequestTimeout))
	{
		api.GET("/series", handler.GetSeries)
		api.GET("/dashboard", handler.GetDashboard)
		api.GET("/ticker", handler.GetTicker)
		api.POST("/ticker/refresh", handler.RefreshTicker)
		api.GET("/portfolio", handler.GetPortfolio)

		api.GET("/watchlist", handler.GetWatchlist)
		api.POST("/watchlist", handler.AddToWatchlist)
		api.DELETE("/watchlist/:symbol", handler.RemoveFromWatchlist)

		api.GET("/settings", handler.GetSettings)
		api.PUT("/settings/preferences", handler.UpdatePreferences)
		api.PUT("/settings/notifications", handler.UpdateNotifications)
		api.PUT("/settings/profile", handler.UpdateProfile)

		api.POST("/graphs", handler.CreateGraph)
		api.GET("/graphs/:id", handler.GetGraph)
		api.DELETE("/graphs/:id", handler.CloseGraph)
		api.POST("/graphs/:id/zoom", handler.ZoomGraph)
		api.POST("/graphs/:id/pan", handler.PanGraph)
		api.POST("/graphs/:id/reset", handler.ResetGraph)
		api.POST("/graphs/:id/retry", handler.RetryGraph)
		api.PUT("/graphs/:id/view", handler.SetGraphView)
	}

	return router
}
