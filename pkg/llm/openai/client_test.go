package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruit/pkg/llm"
	"github.com/artem13815/recruit/pkg/llm/openai"
)

func TestComplete_SendsJSONModeRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	c := openai.New("groq", "k", srv.URL+"/", "llama3-8b-8192", 0)
	out, err := c.Complete(context.Background(), llm.Request{Prompt: "p", JSON: true, Temperature: 0.1})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	assert.Equal(t, "llama3-8b-8192", got["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
	assert.InDelta(t, 0.1, got["temperature"], 1e-6)
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func serve(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestComplete_Errors(t *testing.T) {
	req := llm.Request{Prompt: "p"}

	c := openai.New("openai", "k", serve(t, http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`), "gpt-4o-mini", 0)
	_, err := c.Complete(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai http 429")

	c = openai.New("openai", "k", serve(t, http.StatusOK, `{"choices":[{"message":{"content":null}}]}`), "gpt-4o-mini", 0)
	_, err = c.Complete(context.Background(), req)
	assert.True(t, errors.Is(err, llm.ErrEmptyResponse))

	c = openai.New("openai", "k", serve(t, http.StatusOK, `{"choices":[]}`), "gpt-4o-mini", 0)
	_, err = c.Complete(context.Background(), req)
	assert.Error(t, err)

	_, err = openai.New("openai", "", "http://127.0.0.1:1", "m", 0).Complete(context.Background(), req)
	assert.Error(t, err)
}
