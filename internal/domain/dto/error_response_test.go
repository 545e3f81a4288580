package dto

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

func TestNewErrorResponse(t *testing.T) {
	unknownType := fmt.Errorf("unknown visualization type %q: %w", "candlestick", models.ErrInvalidArgument)
	cases := []struct {
		name        string
		message     string
		err         error
		wantDetails string
		wantError   string
	}{
		{
			name:      "message only",
			message:   "Rate limit exceeded",
			wantError: "Rate limit exceeded",
		},
		{
			name:        "wrapped domain error",
			message:     "Invalid query parameters",
			err:         unknownType,
			wantDetails: `unknown visualization type "candlestick": invalid argument`,
			wantError:   `Invalid query parameters: unknown visualization type "candlestick": invalid argument`,
		},
		{
			name:        "missing graph",
			message:     "Graph not found",
			err:         fmt.Errorf("graph %s: %w", "g-1", models.ErrNotFound),
			wantDetails: "graph g-1: not found",
			wantError:   "Graph not found: graph g-1: not found",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewErrorResponse(tc.message, tc.err)
			if resp.Message != tc.message || resp.ErrorDetails != tc.wantDetails {
				t.Fatalf("unexpected %+v", resp)
			}
			if resp.Error() != tc.wantError {
				t.Fatalf("Error()=%q, want %q", resp.Error(), tc.wantError)
			}
			if resp.Timestamp.Location() != time.UTC || time.Since(resp.Timestamp) > time.Second {
				t.Fatalf("timestamp not stamped in UTC: %v", resp.Timestamp)
			}
		})
	}
}

func TestErrorResponse_TravelsThroughGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	cause := fmt.Errorf("symbol %q: %w", " ", models.ErrInvalidArgument)
	_ = c.Error(NewErrorResponse("Invalid query parameters", cause))

	var got ErrorResponse
	if !errors.As(c.Errors.Last().Err, &got) {
		t.Fatalf("envelope lost in c.Errors: %v", c.Errors)
	}
	if got.Message != "Invalid query parameters" || got.ErrorDetails != cause.Error() {
		t.Fatalf("unexpected envelope %+v", got)
	}
	// The envelope flattens its cause to text; the sentinel is not recoverable from it.
	if errors.Is(got, models.ErrInvalidArgument) {
		t.Fatalf("envelope should not unwrap to the domain sentinel")
	}
}
