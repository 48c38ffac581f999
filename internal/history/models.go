package history

import (
	"time"
)

// Entry records one submission and its outcome.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// Request data
	Method string `json:"method"`
	URL    string `json:"url"`

	// Response data
	Status       int    `json:"status"`
	StatusText   string `json:"status_text,omitempty"`
	ResponseTime int64  `json:"response_time"` // milliseconds
	ResponseSize int64  `json:"response_size"` // bytes

	// Error is set when no response was received.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the submission produced no response.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// QueryOptions specifies filters and pagination for history queries.
type QueryOptions struct {
	Method     string    // Filter by HTTP method
	URLPattern string    // Substring match on the URL
	FailedOnly bool      // Only entries without a response
	After      time.Time // Only entries after this time

	Limit  int // Maximum number of results (0 = no limit)
	Offset int // Number of results to skip
}
