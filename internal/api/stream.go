package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/logger"
	"github.com/guttosm/dashpulse/internal/middleware"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
	streamBuffer     = 4
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// StreamTicker godoc
// @Summary      Stream ticker quotes
// @Description  Upgrades to a websocket. The current snapshot is sent immediately, then every refresh of the board. Frames are JSON arrays of quotes.
// @Tags         ticker
// @Success      101
// @Router       /api/v1/ticker/stream [get]
func (h *Handler) StreamTicker(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		middleware.AbortWithError(c, http.StatusBadRequest, "websocket upgrade required", nil)
		return
	}
	rid := c.GetString(middleware.RequestIDKey)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, http.Header{middleware.RequestIDHeader: {rid}})
	if err != nil {
		// Upgrade already replied to the client.
		_ = c.Error(err)
		return
	}
	defer conn.Close()

	log := logger.L().With().Str("request_id", rid).Logger()

	updates, unsubscribe := h.svc.SubscribeTicker(streamBuffer)
	defer unsubscribe()

	// The reader only drains control frames; it ends when the client goes away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(v any) error {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		return conn.WriteJSON(v)
	}

	log.Info().Msg("ticker_stream_opened")
	defer log.Info().Msg("ticker_stream_closed")

	if err := write(dto.NewTickerResponse(h.svc.Ticker())); err != nil {
		return
	}

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case quotes, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "ticker stopped"),
					time.Now().Add(streamWriteWait))
				return
			}
			if err := write(dto.NewTickerResponse(quotes)); err != nil {
				log.Warn().Err(err).Msg("ticker_stream_write_failed")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
