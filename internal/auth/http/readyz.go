package http

import (
	"net/http"
	"time"

	"github.com/aayush-1o/freightflow/internal/auth/store"
	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
)

// ReadyzHandler is the readiness probe. It pings the datastore and answers
// 503 with a degraded status while the database is unreachable.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := authsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
