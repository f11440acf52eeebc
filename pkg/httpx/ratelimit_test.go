package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitByIP(t *testing.T) {
	cfg := RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}
	h := Chain(okHandler(), RateLimitByIP(cfg))

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// Burst of 2 allowed, third rejected
	require.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)
	require.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)

	rec := do("10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Different IP has its own bucket
	require.Equal(t, http.StatusOK, do("10.0.0.2:1234").Code)
}

func TestIPKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	require.Equal(t, "192.0.2.7", IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "198.51.100.9")
	require.Equal(t, "198.51.100.9", IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.9")
	require.Equal(t, "203.0.113.1", IPKeyExtractor(req))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(okHandler(), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}
