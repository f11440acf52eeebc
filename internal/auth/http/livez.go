package http

import (
	"net/http"
	"time"

	"github.com/aayush-1o/freightflow/pkg/authsdk"
	"github.com/aayush-1o/freightflow/pkg/httpx"
)

// LivezHandler is the liveness probe. It answers 200 with uptime and version
// whenever the process is running.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := authsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
