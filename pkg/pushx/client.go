package pushx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts messages to an Expo-compatible push endpoint.
type Client struct {
	Endpoint    string
	AccessToken string
	HTTPClient  *http.Client
}

// NewClient builds a client with a bounded HTTP timeout. An empty endpoint
// means DefaultEndpoint.
func NewClient(endpoint, accessToken string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		Endpoint:    endpoint,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

type sendResponse struct {
	Data   []Ticket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Send delivers msg in one request. The returned tickets line up with
// msg.To. A non-nil error means at least one token was not accepted.
func (c *Client) Send(ctx context.Context, msg Message) ([]Ticket, error) {
	if len(msg.To) == 0 {
		return nil, ErrNoRecipients
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("pushx: encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pushx: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pushx: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("pushx: read response: %w", err)
	}

	var out sendResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK {
		reqErr := &RequestError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && len(out.Errors) > 0 {
			reqErr.Code = out.Errors[0].Code
			reqErr.Message = out.Errors[0].Message
		}
		return nil, reqErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("pushx: decode response: %w", decodeErr)
	}

	var errs []error
	for i, t := range out.Data {
		if t.Status == TicketOK {
			continue
		}
		token := ""
		if i < len(msg.To) {
			token = msg.To[i]
		}
		errs = append(errs, &TicketFailure{Token: token, Code: t.Details.Error, Message: t.Message})
	}

	return out.Data, errors.Join(errs...)
}
