package pushx

import (
	"errors"
	"fmt"
)

// DefaultEndpoint is Expo's batch send URL.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// Message is one notification addressed to one or more device tokens.
type Message struct {
	To    []string       `json:"to"`
	Title string         `json:"title,omitempty"`
	Body  string         `json:"body,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
	Sound string         `json:"sound,omitempty"`
}

const (
	TicketOK    = "ok"
	TicketError = "error"
)

// Ticket is Expo's per-token receipt for a send.
type Ticket struct {
	Status  string        `json:"status"`
	ID      string        `json:"id,omitempty"`
	Message string        `json:"message,omitempty"`
	Details TicketDetails `json:"details,omitempty"`
}

type TicketDetails struct {
	Error string `json:"error,omitempty"`
}

// TicketFailure reports a token Expo refused, e.g. DeviceNotRegistered.
type TicketFailure struct {
	Token   string
	Code    string
	Message string
}

func (e *TicketFailure) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("pushx: %s: %s (%s)", e.Token, e.Message, e.Code)
	}
	return fmt.Sprintf("pushx: %s: %s", e.Token, e.Message)
}

// RequestError is a whole-request rejection from the push service.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("pushx: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("pushx: status %d: %s", e.StatusCode, e.Message)
}

var ErrNoRecipients = errors.New("pushx: message has no recipients")
