package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
	"github.com/guttosm/dashpulse/internal/logger"
)

func init() { gin.SetMode(gin.TestMode) }

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not an error envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestRequestID(t *testing.T) {
	const clientID = "6f1c2b4e-8a3d-4c1e-9f0b-2d7e5a6c8b90"
	cases := []struct {
		name   string
		header string
		wantID string
	}{
		{name: "generated when absent", wantID: "generated"},
		{name: "client uuid reused", header: clientID, wantID: clientID},
		{name: "garbage replaced", header: "not-a-uuid", wantID: "generated"},
	}
	orig := newRequestID
	newRequestID = func() string { return "generated" }
	t.Cleanup(func() { newRequestID = orig })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(http.StatusOK, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if got := w.Header().Get(RequestIDHeader); got != tc.wantID || seen != tc.wantID {
				t.Fatalf("header=%q ctx=%q, want %q", got, seen, tc.wantID)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("parse: %w", models.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("graph: %w", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("generate: %w", models.ErrGenerationFailure), http.StatusInternalServerError},
		{graph.ErrTooManyGraphs, http.StatusTooManyRequests},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v)=%d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		handler gin.HandlerFunc
		code    int
		message string
	}{
		{
			name:    "plain error is 500",
			handler: func(c *gin.Context) { _ = c.Error(errors.New("boom")) },
			code:    http.StatusInternalServerError,
			message: "Internal server error",
		},
		{
			name:    "domain error is mapped",
			handler: func(c *gin.Context) { _ = c.Error(fmt.Errorf("x: %w", models.ErrNotFound)) },
			code:    http.StatusNotFound,
			message: "Resource not found",
		},
		{
			name:    "graph cap names the cause",
			handler: func(c *gin.Context) { _ = c.Error(fmt.Errorf("open graph: %w", graph.ErrTooManyGraphs)) },
			code:    http.StatusTooManyRequests,
			message: "Too many open graphs",
		},
		{
			name:    "deadline is 504",
			handler: func(c *gin.Context) { _ = c.Error(fmt.Errorf("dashboard: %w", context.DeadlineExceeded)) },
			code:    http.StatusGatewayTimeout,
			message: "Request timed out",
		},
		{
			name: "envelope keeps status",
			handler: func(c *gin.Context) {
				c.Status(http.StatusConflict)
				_ = c.Error(dto.NewErrorResponse("conflict", nil))
			},
			code:    http.StatusConflict,
			message: "conflict",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.code {
				t.Fatalf("code=%d, want %d", w.Code, tc.code)
			}
			if resp := decodeError(t, w); resp.Message != tc.message {
				t.Fatalf("message=%q, want %q", resp.Message, tc.message)
			}
		})
	}
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", errors.New("detail"))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if resp := decodeError(t, w); resp.Message != "bad stuff" || resp.ErrorDetails != "detail" {
		t.Fatalf("unexpected body %+v", resp)
	}
}

func TestAbortWithDomainError(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		AbortWithDomainError(c, "Invalid query parameters", fmt.Errorf("type: %w", models.ErrInvalidArgument))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "false")
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.POST("/graphs/:id/zoom", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphs/g-42/zoom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
	if resp := decodeError(t, w); resp.ErrorDetails != "boom" {
		t.Fatalf("unexpected body %+v", resp)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	want := map[string]string{
		"message":  "handler_panic_recovered",
		"graph_id": "g-42",
		"route":    "/graphs/:id/zoom",
		"method":   http.MethodPost,
		"error":    "boom",
	}
	for k, v := range want {
		if line[k] != v {
			t.Fatalf("%s=%v, want %q (line %v)", k, line[k], v, line)
		}
	}
	if rid, _ := line["request_id"].(string); rid == "" || rid != w.Header().Get(RequestIDHeader) {
		t.Fatalf("request_id=%v, header=%q", line["request_id"], w.Header().Get(RequestIDHeader))
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 4, lim: 3, expect: http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimiter(tc.lim, time.Minute))
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_RefillAndRetryAfter(t *testing.T) {
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return current }
	t.Cleanup(func() { now = orig })

	cases := []struct {
		name       string
		limit      int
		wait       time.Duration
		retryAfter string
	}{
		{name: "one per minute", limit: 1, wait: time.Minute, retryAfter: "60"},
		{name: "three per minute", limit: 3, wait: 20 * time.Second, retryAfter: "20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimiter(tc.limit, time.Minute))
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
			hit := func() *httptest.ResponseRecorder {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				return w
			}

			for i := 0; i < tc.limit; i++ {
				if w := hit(); w.Code != http.StatusOK {
					t.Fatalf("request %d: code=%d", i, w.Code)
				}
			}
			w := hit()
			if w.Code != http.StatusTooManyRequests {
				t.Fatalf("expected limit, got %d", w.Code)
			}
			if got := w.Header().Get("Retry-After"); got != tc.retryAfter {
				t.Fatalf("Retry-After=%q, want %q", got, tc.retryAfter)
			}
			if resp := decodeError(t, w); resp.Message != "Rate limit exceeded" {
				t.Fatalf("unexpected body %+v", resp)
			}

			current = current.Add(tc.wait)
			if w := hit(); w.Code != http.StatusOK {
				t.Fatalf("expected a refilled token after %s, got %d", tc.wait, w.Code)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			c.String(http.StatusGatewayTimeout, c.Request.Context().Err().Error())
		case <-time.After(time.Second):
			c.String(http.StatusOK, "late")
		}
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}
