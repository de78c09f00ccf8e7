package responses

import (
	"github.com/address-parser-ar/app/models"
	"github.com/address-parser-ar/pkg/addr"
)

// ParseAddressResponse wraps a single parse result with request metadata.
type ParseAddressResponse struct {
	RequestID string           `json:"request_id"`
	Result    addr.AddressResult `json:"result"`
}

// BatchParseResponse returns one result per input line, in order.
type BatchParseResponse struct {
	Results []addr.AddressResult `json:"results"`
}

// ReviewListResponse lists queued review entries.
type ReviewListResponse struct {
	Reviews []*models.ReviewEntry `json:"reviews"`
	Total   int                   `json:"total"`
}

// ReviewActionResponse reports the outcome of resolving a review entry.
type ReviewActionResponse struct {
	ReviewID string `json:"review_id"`
	Status   string `json:"status"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthCheckResponse reports liveness and the cache backend in use.
type HealthCheckResponse struct {
	Status       string `json:"status"`
	CacheBackend string `json:"cache_backend"`
}
