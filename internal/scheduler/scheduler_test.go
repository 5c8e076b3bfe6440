package scheduler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/lolclient/internal/api/lol"
	"github.com/omarshaarawi/lolclient/internal/config"
	"github.com/omarshaarawi/lolclient/internal/service"
)

type sink struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (s *sink) send(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
	return s.err
}

func (s *sink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func newTestLookupService(t *testing.T, status int, body string) *service.LookupService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return service.NewLookupService(lol.NewAPI(config.RiotAPI{
		Key:         "RGAPI-test",
		Root:        srv.URL + "/",
		GameSegment: "lol/",
		Timeout:     time.Second,
	}))
}

func TestSendStatus_SendsReport(t *testing.T) {
	out := &sink{}
	s, err := NewScheduler(newTestLookupService(t, http.StatusOK, `{"slug":"ru"}`), out.send, time.Minute)
	require.NoError(t, err)

	s.sendStatus()

	require.Equal(t, 1, out.count())
	assert.Contains(t, out.messages[0], `"slug": "ru"`)
}

func TestSendStatus_SkipsOnAPIError(t *testing.T) {
	out := &sink{}
	s, err := NewScheduler(newTestLookupService(t, http.StatusServiceUnavailable, `{}`), out.send, time.Minute)
	require.NoError(t, err)

	s.sendStatus()

	assert.Equal(t, 0, out.count())
}

func TestSendStatus_SendErrorIsLogged(t *testing.T) {
	out := &sink{err: errors.New("chat ID not set")}
	s, err := NewScheduler(newTestLookupService(t, http.StatusOK, `{}`), out.send, time.Minute)
	require.NoError(t, err)

	assert.NotPanics(t, s.sendStatus)
	assert.Equal(t, 1, out.count())
}

func TestStart_DisabledInterval(t *testing.T) {
	s, err := NewScheduler(newTestLookupService(t, http.StatusOK, `{}`), (&sink{}).send, 0)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Empty(t, s.s.Jobs())
}

func TestStart_RunsJob(t *testing.T) {
	out := &sink{}
	s, err := NewScheduler(newTestLookupService(t, http.StatusOK, `{}`), out.send, 20*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.Len(t, s.s.Jobs(), 1)

	assert.Eventually(t, func() bool { return out.count() > 0 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop())
}
