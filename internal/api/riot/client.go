package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/omarshaarawi/lolclient/internal/config"
)

const (
	apiKeyParam  = "api_key"
	maxErrorBody = 2048
)

// Client performs authenticated GETs against the API root. It is safe for
// concurrent use; it holds no mutable state.
type Client struct {
	httpClient *http.Client
	Config     config.RiotAPI
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client. Its Timeout is left as given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewClient(cfg config.RiotAPI, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		Config:     cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL joins the root, the game segment and a category version segment.
func (c *Client) BaseURL(version string) string {
	return c.Config.Root + c.Config.GameSegment + version
}

// Get requests endpoint with the api key attached and returns the JSON body
// exactly as received.
func (c *Client) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	q.Set(apiKeyParam, c.Config.Key)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the request URL, key included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = endpoint
		}
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return decodeBody(endpoint, resp.Body)
}

func decodeBody(endpoint string, body io.Reader) (json.RawMessage, error) {
	dec := json.NewDecoder(body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{URL: endpoint, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{URL: endpoint, Err: fmt.Errorf("unexpected data after JSON value")}
	}
	return raw, nil
}
