package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"quizbot/internal/config"
	"quizbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	cfg := config.LLMConfig{
		Endpoint: "https://example.test/v1/chat/completions",
		APIKey:   "test-key",
		Model:    "test-model",
		Timeout:  5 * time.Second,
	}
	return NewClient(cfg, &http.Client{Transport: rt})
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var seen *http.Request
	var seenBody []byte

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		seenBody, _ = io.ReadAll(r.Body)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"choices":[{"message":{"content":"[]"}}]}`))),
			Header:     make(http.Header),
		}, nil
	}))

	raw, err := client.Complete(context.Background(), "some prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"choices":[{"message":{"content":"[]"}}]}`, raw)

	require.NotNil(t, seen)
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "Bearer test-key", seen.Header.Get("Authorization"))
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))

	var sent chatRequest
	require.NoError(t, json.Unmarshal(seenBody, &sent))
	assert.Equal(t, "test-model", sent.Model)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "user", sent.Messages[0].Role)
	assert.Equal(t, "some prompt", sent.Messages[0].Content)
}

func TestCompleteTransportError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstreamUnavailable, domain.ErrorCodeOf(err))
}

func TestCompleteNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":{"message":"slow down"}}`))),
			Header:     make(http.Header),
		}, nil
	}))

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstreamUnavailable, domain.ErrorCodeOf(err))
}

func TestCompleteEmptyBody(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "whitespace": "  \n\t "} {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader([]byte(body))),
					Header:     make(http.Header),
				}, nil
			}))

			_, err := client.Complete(context.Background(), "prompt")
			require.Error(t, err)
			assert.Equal(t, domain.CodeEmptyUpstreamResponse, domain.ErrorCodeOf(err))
		})
	}
}
