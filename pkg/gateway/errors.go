package gateway

import "fmt"

// GatewayError is the single failure kind the Gateway surface produces.
// Transport failures, non-2xx statuses and application-level errors reported
// inside a 2xx body all normalize to it; callers only need the message.
type GatewayError struct {
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway: %s (status %d)", e.Message, e.StatusCode)
	}
	return "gateway: " + e.Message
}
