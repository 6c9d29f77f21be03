package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/edusphere/admin-client/session"
)

const (
	// DefaultBaseURL is the admin API base URL used when none is configured.
	DefaultBaseURL = "http://127.0.0.1:8000/api/v1"
	// DefaultTimeout is the HTTP client timeout for API calls.
	DefaultTimeout = 30 * time.Second
)

// Client handles all admin API interactions. Every call attaches the bearer
// token from the session and parses the uniform response envelope. Failed
// calls are never retried, re-invocation is an explicit caller action.
type Client struct {
	baseURL    string
	session    session.Session
	httpClient *http.Client
}

// Config holds configuration for the admin API client.
type Config struct {
	BaseURL    string
	Session    session.Session
	Timeout    time.Duration
	HTTPClient *http.Client // optional, overrides Timeout
}

// NewClient creates a new admin API client.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		session:    config.Session,
		httpClient: httpClient,
	}
}

// Envelope is the uniform wrapper every admin API endpoint returns.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// APIError represents an application-level failure: the server answered with
// a parseable envelope whose success flag is false.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Errors     map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error (status %d)", e.StatusCode)
}

// FieldErrors returns the field-path to message-list map, possibly with
// dotted/indexed paths like "chapters.0.lessons.1.title". Never nil.
func (e *APIError) FieldErrors() map[string][]string {
	if e.Errors == nil {
		return map[string][]string{}
	}
	return e.Errors
}

// Pagination is the list metadata nested inside the data object of every
// list endpoint.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// FileUpload is one file part of a multipart submission.
type FileUpload struct {
	Field    string
	Filename string
	Content  io.Reader
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, query, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// doJSON performs a JSON request against the admin API and decodes the
// envelope. The session is checked before anything goes over the wire so a
// missing or expired token fails without an HTTP round trip.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, query url.Values, body, out interface{}) error {
	if err := session.Check(c.session); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, query), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// doMultipart performs a file-bearing submission. Content-Type is left to the
// multipart writer so the boundary is set correctly.
func (c *Client) doMultipart(ctx context.Context, method, endpoint string, fields map[string]string, files []FileUpload, out interface{}) error {
	if err := session.Check(c.session); err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to copy file %q: %w", file.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, nil), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.session.AccessToken())
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

func (c *Client) buildURL(endpoint string, query url.Values) string {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("API error (status %d %s)", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// decodeCollection decodes a child collection that some endpoints return as a
// bare array and others wrap in an object under key. The ambiguity stops
// here, callers always see a plain slice.
func decodeCollection(raw json.RawMessage, key string, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return fmt.Errorf("failed to decode %s collection: %w", key, err)
	}
	inner, ok := wrapper[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(inner, out)
}
