package riot

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/lolclient/internal/config"
)

const testKey = "RGAPI-a565b300-bfcc-4d63-aa62-6cbdc77e0fd3"

func testConfig(root string) config.RiotAPI {
	return config.RiotAPI{
		Key:         testKey,
		Root:        root,
		GameSegment: "lol/",
		Timeout:     time.Second,
	}
}

// recordingTransport answers every request with a fixed response and keeps
// the requests it saw.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.requests = append(rt.requests, req)
	rt.mu.Unlock()
	return &http.Response{
		StatusCode: rt.status,
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func (rt *recordingTransport) urls() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]string, 0, len(rt.requests))
	for _, req := range rt.requests {
		out = append(out, req.URL.String())
	}
	return out
}

func newRecordingClient(status int, body string) (*Client, *recordingTransport) {
	rt := &recordingTransport{status: status, body: body}
	client := NewClient(testConfig("https://ru.api.riotgames.com/"), WithHTTPClient(&http.Client{Transport: rt}))
	return client, rt
}

func TestNewClient_UsesConfiguredTimeout(t *testing.T) {
	cfg := testConfig("https://ru.api.riotgames.com/")
	cfg.Timeout = 3 * time.Second

	client := NewClient(cfg)

	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

func TestBaseURL(t *testing.T) {
	client := NewClient(testConfig("https://ru.api.riotgames.com/"))

	assert.Equal(t, "https://ru.api.riotgames.com/lol/status/v3/", client.BaseURL("status/v3/"))
}

func TestGet_AttachesAPIKeyAndReturnsBody(t *testing.T) {
	payload := `{"name":"Russia","slug":"ru","services":[{"name":"Game","status":"online"}]}`
	var gotKey, gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL + "/"))
	body, err := client.Get(context.Background(), client.BaseURL("status/v3/")+"shard-data")
	require.NoError(t, err)

	assert.Equal(t, payload, string(body))
	assert.Equal(t, testKey, gotKey)
	assert.Equal(t, "/lol/status/v3/shard-data", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestGet_ReturnsScalarsAndArrays(t *testing.T) {
	for _, payload := range []string{`42`, `"text"`, `[1,2,3]`, `null`, `true`} {
		client, _ := newRecordingClient(http.StatusOK, payload)

		body, err := client.Get(context.Background(), "https://ru.api.riotgames.com/lol/x")
		require.NoError(t, err, payload)
		assert.Equal(t, payload, string(body))
	}
}

func TestGet_APIErrorCarriesStatusCode(t *testing.T) {
	client, _ := newRecordingClient(http.StatusNotFound, `{"status":{"message":"Data not found","status_code":404}}`)

	body, err := client.Get(context.Background(), "https://ru.api.riotgames.com/lol/missing")
	require.Error(t, err)
	assert.Nil(t, body)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Data not found", apiErr.Description())
	assert.Contains(t, apiErr.Body, "status_code")
	assert.Equal(t, "https://ru.api.riotgames.com/lol/missing", apiErr.URL)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestGet_DocumentedStatusCodes(t *testing.T) {
	codes := []int{400, 401, 403, 404, 405, 415, 429, 500, 502, 503, 504}
	for _, code := range codes {
		client, _ := newRecordingClient(code, `{}`)

		_, err := client.Get(context.Background(), "https://ru.api.riotgames.com/lol/x")

		assert.Equal(t, code, StatusCode(err), "status %d", code)
		assert.NotEmpty(t, err.(*APIError).Description(), "status %d", code)
	}
}

func TestGet_DecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"name": `},
		{"not json", `<html>maintenance</html>`},
		{"empty", ``},
		{"trailing data", `{"a":1} {"b":2}`},
		{"trailing bracket", `{"a":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newRecordingClient(http.StatusOK, tt.body)

			_, err := client.Get(context.Background(), "https://ru.api.riotgames.com/lol/x")

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %v", err)
			assert.Equal(t, "https://ru.api.riotgames.com/lol/x", decodeErr.URL)
		})
	}
}

func TestGet_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	root := srv.URL + "/"
	srv.Close()

	client := NewClient(testConfig(root))
	_, err := client.Get(context.Background(), root+"lol/status/v3/shard-data")

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "got %v", err)
	assert.NotContains(t, err.Error(), testKey)
	assert.Equal(t, 0, StatusCode(err))
}

func TestGet_TimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL + "/")
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.Get(context.Background(), srv.URL+"/lol/slow")

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr), "got %v", err)
}
