package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/guttosm/dashpulse/internal/domain/dto"
)

func TestStreamTicker(t *testing.T) {
	a := newTestAPI(t)
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ticker/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("handshake missing X-Request-ID")
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first []dto.QuoteResponse
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if len(first) != 10 || first[0].Symbol != "AAPL" {
		t.Fatalf("unexpected snapshot %+v", first)
	}
	if a.board.Subscribers() != 1 {
		t.Fatalf("want 1 subscriber, got %d", a.board.Subscribers())
	}

	ticked := a.svc.RefreshTicker()
	var next []dto.QuoteResponse
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if next[0].Price != ticked[0].Price {
		t.Fatalf("pushed %v, ticked %v", next[0].Price, ticked[0].Price)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	deadline := time.Now().Add(2 * time.Second)
	for a.board.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber not released after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStreamTicker_RequiresUpgrade(t *testing.T) {
	a := newTestAPI(t)
	w := a.do(t, http.MethodGet, "/api/v1/ticker/stream", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}
