package schedsdk

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "validation_failed")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Messages lists form errors in display order (validation_failed only)
	Messages []string `json:"messages,omitempty"`
}

// EventDraftRequest is the body of POST /v1/events. Empty or unparseable
// date and time fields count as not chosen. Omitting attendee_ids invites
// just the organizer; an empty list is a validation error.
type EventDraftRequest struct {
	Title       string    `json:"title"`
	RoomID      string    `json:"room_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	AttendeeIDs *[]string `json:"attendee_ids,omitempty"`
}

// DraftResponse is the pre-filled form returned by GET /v1/events/draft.
type DraftResponse struct {
	EventDraftRequest

	// Timezone is the IANA zone the date and times are expressed in
	Timezone string `json:"timezone"`
}

// EventResponse is a saved event.
type EventResponse struct {
	ID          string    `json:"id"`
	HomeID      string    `json:"home_id"`
	Title       string    `json:"title"`
	RoomID      string    `json:"room_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	AttendeeIDs []string  `json:"attendee_ids"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

type RoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// PersonResponse never exposes the delivery token, only whether one is set.
type PersonResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	HasDeliveryToken bool   `json:"has_delivery_token"`
}

type PersonListResponse struct {
	People []PersonResponse `json:"people"`
}

// DeliveryTokenRequest is the body of PUT /v1/people/me/delivery-token.
// An empty token unregisters the device.
type DeliveryTokenRequest struct {
	Token string `json:"token"`
}

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the critical dependencies checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
	Cache    string `json:"cache,omitempty"`
}
