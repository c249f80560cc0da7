package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type body struct {
		Department string `json:"department"`
	}

	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"ok", `{"department":"Roads"}`, false},
		{"malformed", `{bad`, true},
		{"unknown_field", `{"department":"Roads","extra":1}`, true},
		{"trailing_object", `{"department":"Roads"}{}`, true},
		{"empty", ``, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(c.in))
			var got body
			err := DecodeJSON(httptest.NewRecorder(), req, &got)
			if c.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidJSON))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Roads", got.Department)
		})
	}
}

func TestLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	h := Limit(ctx, 1, 2, time.Minute, logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusOK, rr.Code, "limits are per client ip")
}

func TestRateLimiter_SweepForgetsIdleVisitors(t *testing.T) {
	t.Parallel()

	l := &rateLimiter{visitors: map[string]*visitor{}, limit: 1, burst: 1, ttl: time.Minute}
	l.getVisitor("10.0.0.1")

	l.sweep(time.Now())
	assert.Len(t, l.visitors, 1)

	l.sweep(time.Now().Add(2 * time.Minute))
	assert.Empty(t, l.visitors)
}
