package ksoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError represents a non-2xx response from the API.
// The Code and Message fields are filled from the API's error envelope
// when the body carries one.
type APIError struct {
	StatusCode int    // HTTP status code of the response.
	Code       int    `json:"code"`    // Error code reported by the API.
	Message    string `json:"message"` // Human readable message reported by the API.
}

// Error returns a string representation of the APIError.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// TransportError represents a network-level failure, such as a refused
// connection or a timeout, before any API response was received.
type TransportError struct {
	Op  string // Op is the request being performed, e.g. "GET /bans/updates".
	Err error  // Err is the underlying error.
}

// Error returns a string representation of the TransportError.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Transport is a custom RoundTripper implementation.
type Transport struct {
	Transport http.RoundTripper // Transport is the underlying RoundTripper.
	Headers   map[string]string // Headers contains custom headers to be added to the requests.
}

// RoundTrip executes a single HTTP request and returns its response.
// It adds custom headers to the request before performing the request using the underlying Transport.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, value := range t.Headers {
		req.Header.Set(key, value)
	}

	return t.Transport.RoundTrip(req)
}

// HttpClient performs authenticated requests against the KSoft.Si REST API.
//
// It owns a shared [http.Client] whose transport injects the bearer
// credential into every request. Responses are returned as raw JSON for
// the sub-APIs to decode into their models.
type HttpClient struct {
	BaseURL string       // BaseURL is the API root, without a trailing slash.
	client  *http.Client // client is a client shared among requests.
}

// NewHttpClient creates an HttpClient authenticated with the given API key.
//
// Args:
//   - apiKey: The opaque bearer credential.
//   - baseURL: The API root; API_BASE_URL when empty.
//   - timeout: Per-request timeout; API_TIMEOUT when zero.
//
// Returns:
//   - *HttpClient: The ready-to-use client.
func NewHttpClient(apiKey, baseURL string, timeout time.Duration) *HttpClient {
	if baseURL == "" {
		baseURL = API_BASE_URL
	}
	if timeout == 0 {
		timeout = API_TIMEOUT
	}

	transport := &Transport{
		Transport: http.DefaultTransport,
		Headers: map[string]string{
			"Authorization": "Bearer " + apiKey,
			"User-Agent":    USER_AGENT,
		},
	}

	return &HttpClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Get performs a GET request against the given path.
func (hc *HttpClient) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return hc.do(ctx, http.MethodGet, path, params, nil)
}

// Post performs a POST request with URL-encoded form data against the given path.
func (hc *HttpClient) Post(ctx context.Context, path string, form url.Values) (json.RawMessage, error) {
	return hc.do(ctx, http.MethodPost, path, nil, form)
}

// Delete performs a DELETE request against the given path.
func (hc *HttpClient) Delete(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return hc.do(ctx, http.MethodDelete, path, params, nil)
}

// do builds, sends and checks a single request.
//
// A network failure is returned as a *TransportError, a non-2xx response
// as an *APIError. On success the raw response body is returned.
func (hc *HttpClient) do(ctx context.Context, method, path string, query, form url.Values) (raw json.RawMessage, err error) {
	op := method + " " + path

	endpoint := hc.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, method, endpoint, body); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	var res *http.Response
	if res, err = hc.client.Do(req); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()

	var data []byte
	if data, err = io.ReadAll(res.Body); err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		// The envelope is optional, some endpoints return bare HTML on 5xx.
		_ = json.Unmarshal(data, apiErr)
		return nil, apiErr
	}

	return json.RawMessage(data), nil
}
