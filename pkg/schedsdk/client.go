package schedsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the scheduler on behalf of one signed-in person.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// AccessToken is the bearer token issued by the auth service.
	AccessToken string
}

// NewClient returns a client with a bounded HTTP timeout.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates as someone else.
func (c *Client) WithToken(accessToken string) *Client {
	cp := *c
	cp.AccessToken = accessToken
	return &cp
}
