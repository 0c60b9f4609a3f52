package ksoft

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpClientInjectsHeaders(t *testing.T) {
	var mu sync.Mutex
	var gotAuth, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		mu.Unlock()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	hc := NewHttpClient("secret", server.URL, 0)

	_, err := hc.Get(context.Background(), "/bans/check", nil)
	assert.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "Bearer secret", gotAuth, "the bearer credential should be attached to every request")
	assert.Equal(t, USER_AGENT, gotAgent)
}

func TestHttpClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code": 404, "error": true, "message": "that user does not exist"}`))
	}))
	defer server.Close()

	hc := NewHttpClient("secret", server.URL, 0)

	_, err := hc.Get(context.Background(), "/bans/info", nil)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "that user does not exist", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "that user does not exist")
}

func TestHttpClientAPIErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	hc := NewHttpClient("secret", server.URL, 0)

	_, err := hc.Get(context.Background(), "/bans/list", nil)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestHttpClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Shut the server down up front so the request cannot connect.
	server.Close()

	hc := NewHttpClient("secret", server.URL, 0)

	_, err := hc.Get(context.Background(), "/bans/check", nil)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "GET /bans/check", transportErr.Op)
	assert.NotNil(t, errors.Unwrap(transportErr))
}
