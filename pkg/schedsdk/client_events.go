package schedsdk

import (
	"context"
	"net/http"
	"net/url"
)

// IdempotencyKeyHeader carries a client-generated UUID so a retried submit
// creates at most one event.
const IdempotencyKeyHeader = "Idempotency-Key"

// SubmitEvent schedules an event. idempotencyKey may be empty.
func (c *Client) SubmitEvent(ctx context.Context, req EventDraftRequest, idempotencyKey string) (*EventResponse, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{IdempotencyKeyHeader: idempotencyKey}
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/events", req, headers)
	if err != nil {
		return nil, err
	}

	var out EventResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDraft returns the pre-filled form for a new event.
func (c *Client) GetDraft(ctx context.Context) (*DraftResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/events/draft", nil, nil)
	if err != nil {
		return nil, err
	}

	var out DraftResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID string) (*EventResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/events/"+url.PathEscape(eventID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out EventResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns the home's events ordered by start.
func (c *Client) ListEvents(ctx context.Context) ([]EventResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/events", nil, nil)
	if err != nil {
		return nil, err
	}

	var out EventListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Events, nil
}
