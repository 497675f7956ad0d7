package feed

import "fmt"

// StatusError reports a non-2xx response from the feed.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "feed status error"
	}
	if e.URL == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}
