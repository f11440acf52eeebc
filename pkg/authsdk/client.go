package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the FreightFlow authentication service.
// All endpoints are unauthenticated, so a single client serves every flow.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
