package onboardsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a client for the OnboardHub API. It provides the unauthenticated
// credential exchanges (login, register) and creates authenticated Sessions
// for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new OnboardHub API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SessionFromToken creates an authenticated session from an existing bearer
// token. This is how the portal resumes API access after a restart, with the
// token loaded from durable session storage.
func (c *Client) SessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
