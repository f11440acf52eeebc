package http

import (
	"encoding/json"
	"net/http"

	"github.com/aayush-1o/freightflow/pkg/authsdk"
)

// decodeRequest decodes a JSON request body into dst. On failure it writes a
// missing_fields error response and returns false; the handler should return.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		(&authsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        authsdk.ErrorCodeMissingFields,
			Description: "request body must be valid JSON",
		}).WriteError(w)
		return false
	}
	return true
}
