package summarize_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperbuddy/internal/config"
	"paperbuddy/internal/summarize"
)

func testConfig() *config.SummarizerConfig {
	return &config.SummarizerConfig{
		APIKey:      "test-key",
		Model:       "gpt-4o",
		MaxRetries:  3,
		TimeoutSecs: 5,
	}
}

// sleepRecorder collects backoff durations without actually sleeping.
type sleepRecorder struct {
	slept []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.slept = append(s.slept, d)
}

func writeCompletion(w http.ResponseWriter, content string) {
	resp := map[string]any{
		"choices": []map[string]any{
			{
				"message":       map[string]any{"content": content},
				"finish_reason": "stop",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*summarize.Client, *sleepRecorder) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rec := &sleepRecorder{}
	return summarize.NewClientWithEndpoint(testConfig(), srv.URL, time.Second, rec.sleep), rec
}

func TestClient_SucceedsFirstAttempt(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		writeCompletion(w, `{"big_idea":"hello"}`)
	})

	raw, err := client.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "hello", raw["big_idea"])
	assert.Empty(t, rec.slept)
}

func TestClient_RateLimitBackoffThenSuccess(t *testing.T) {
	var calls atomic.Int32
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeCompletion(w, `{"big_idea":"eventually"}`)
	})

	raw, err := client.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "eventually", raw["big_idea"])
	// Rate-limit backoff is linear: 5*(n+1) units.
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, rec.slept)
}

func TestClient_BadFormatRetries(t *testing.T) {
	var calls atomic.Int32
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeCompletion(w, "this is not json at all")
			return
		}
		writeCompletion(w, `{"big_idea":"fixed"}`)
	})

	raw, err := client.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "fixed", raw["big_idea"])
	assert.Equal(t, []time.Duration{time.Second}, rec.slept)
}

func TestClient_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	raw, err := client.Complete(context.Background(), "prompt")

	require.Error(t, err)
	assert.Nil(t, raw)

	var be *summarize.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, summarize.FailRateLimit, be.Kind)

	// max_retries=3: four attempts, three backoff waits.
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second}, rec.slept)
}

func TestClient_SucceedsAfterExactlyMaxRetriesFailures(t *testing.T) {
	var calls atomic.Int32
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeCompletion(w, `{"big_idea":"barely made it"}`)
	})

	raw, err := client.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "barely made it", raw["big_idea"])
	// k failures then success: exactly k waits (fixed 2 units for "other").
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, rec.slept)
}

func TestClient_OtherFailureKind(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Complete(context.Background(), "prompt")

	var be *summarize.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, summarize.FailOther, be.Kind)
}

func TestClient_TimeoutClassification(t *testing.T) {
	if testing.Short() {
		t.Skip("uses a real per-attempt timeout")
	}

	cfg := testConfig()
	cfg.MaxRetries = 1
	cfg.TimeoutSecs = 1

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		writeCompletion(w, `{"big_idea":"too late"}`)
	}))
	t.Cleanup(srv.Close)

	rec := &sleepRecorder{}
	client := summarize.NewClientWithEndpoint(cfg, srv.URL, time.Millisecond, rec.sleep)

	_, err := client.Complete(context.Background(), "prompt")

	var be *summarize.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, summarize.FailTimeout, be.Kind)
	// Exponential backoff: 2^0 units before the single retry.
	assert.Equal(t, []time.Duration{time.Millisecond}, rec.slept)
}

func TestClient_TruncatedOutputIsFailure(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"choices": []map[string]any{
				{
					"message":       map[string]any{"content": `{"big_idea":"cut`},
					"finish_reason": "length",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	_, err := client.Complete(context.Background(), "prompt")

	var be *summarize.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, summarize.FailOther, be.Kind)
	assert.Equal(t, int32(4), calls.Load())
}
