package http

import (
	"time"

	"github.com/sawpanic/defiboard/internal/domain/portfolio"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ListResponse wraps a record collection
type ListResponse[T any] struct {
	Data      []T       `json:"data"`
	Count     int       `json:"count"`
	Generated time.Time `json:"generated"`
}

// NewListResponse stamps a collection with its size and the current time
func NewListResponse[T any](data []T, now time.Time) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Count: len(data), Generated: now.UTC()}
}

// PortfolioResponse is the /api/portfolio body
type PortfolioResponse struct {
	ListResponse[portfolio.PortfolioAsset]
	TotalValue    float64 `json:"total_value"`
	AllocationSum float64 `json:"allocation_sum"`
}

// Error codes
const (
	CodeNotFound      = "endpoint_not_found"
	CodeInvalidParam  = "invalid_parameter"
	CodeRenderFailed  = "render_failed"
	CodeRateLimited   = "rate_limited"
	CodeMethodBlocked = "method_not_allowed"
)
