package core

import (
	"fmt"
	"strings"
	"time"
)

// Response is the outcome of a submitted request.
type Response struct {
	StatusCode int
	Status     string
	Proto      string
	Headers    []Pair
	Body       []byte
	Duration   time.Duration
}

// Format renders the response as the text shown in the output panel.
func (r *Response) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%dms)\n", r.Proto, r.Status, r.Duration.Milliseconds())
	for _, h := range r.Headers {
		fmt.Fprintf(&b, "%s: %s\n", h.Key, h.Value)
	}
	if len(r.Body) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.ReplaceAll(string(r.Body), "\r\n", "\n"))
	}
	return strings.TrimRight(b.String(), "\n")
}
