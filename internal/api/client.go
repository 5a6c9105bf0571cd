package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	BaseURL           = "https://app.metricool.com/api/v2"
	UserAgent         = "metricoolcli/0.1.0"
	ContentType       = "application/json"
	AuthHeader        = "X-Mc-Auth"
	IntegrationSource = "MCP"
)

var (
	errPathTraversal    = errors.New("path contains traversal sequence")
	errPathInvalidChars = errors.New("path contains invalid characters")
	errMissingToken     = errors.New("empty token")
)

// validatePath checks that an API path does not contain traversal sequences
// or control characters.
func validatePath(path string) error {
	if strings.Contains(path, "..") {
		return errPathTraversal
	}

	for _, r := range path {
		if r < ' ' || r == 0x7f {
			return errPathInvalidChars
		}
	}

	return nil
}

// Payload is a successful response body. JSON reports whether Raw parsed as
// JSON; when it did not, Text returns the body unchanged.
type Payload struct {
	Raw  []byte
	JSON bool
}

// Value returns the parsed body. It is empty when the body was not JSON.
func (p Payload) Value() gjson.Result {
	if !p.JSON {
		return gjson.Result{}
	}

	return gjson.ParseBytes(p.Raw)
}

func (p Payload) Text() string {
	return string(p.Raw)
}

// Client is the Metricool API client. Every request carries the user id and
// integration source tag.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	userID      string
}

// NewClient creates a client for the given token and Metricool user id.
func NewClient(token, userID string) *Client {
	return NewClientWithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}), userID)
}

// NewClientWithTokenSource creates a client that reads its token from ts.
func NewClientWithTokenSource(ts oauth2.TokenSource, userID string) *Client {
	return &Client{
		baseURL:     BaseURL,
		tokenSource: ts,
		userID:      userID,
		httpClient: &http.Client{
			Transport: NewLoggingTransport(newTransport()),
		},
	}
}

// NewClientWithBaseURL creates a client against a custom base URL.
func NewClientWithBaseURL(token, userID, baseURL string) *Client {
	client := NewClient(token, userID)
	if strings.TrimSpace(baseURL) != "" {
		client.baseURL = strings.TrimRight(baseURL, "/")
	}

	return client
}

// newTransport returns a transport that opens a fresh connection per request.
func newTransport() http.RoundTripper {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Transport{DisableKeepAlives: true}
	}

	t := base.Clone()
	t.DisableKeepAlives = true

	return t
}

// Do performs one request. Non-2xx statuses return *APIError and transport
// failures *NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (Payload, error) {
	if err := validatePath(path); err != nil {
		return Payload{}, fmt.Errorf("unsafe API path %q: %w", path, err)
	}

	reqURL, err := c.buildURL(path, query)
	if err != nil {
		return Payload{}, err
	}

	var bodyReader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Payload{}, fmt.Errorf("marshal body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return Payload{}, fmt.Errorf("create request: %w", err)
	}

	tok, err := c.tokenSource.Token()
	if err != nil {
		return Payload{}, fmt.Errorf("read token: %w", err)
	}

	if tok.AccessToken == "" {
		return Payload{}, fmt.Errorf("read token: %w", errMissingToken)
	}

	req.Header.Set(AuthHeader, tok.AccessToken)
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("Accept", ContentType)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the full URL, query included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return Payload{}, &NetworkError{Method: method, URL: redactURL(reqURL), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, &NetworkError{Method: method, URL: redactURL(reqURL), Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Payload{}, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return Payload{Raw: data, JSON: gjson.ValidBytes(data)}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (Payload, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (Payload, error) {
	return c.Do(ctx, http.MethodPost, path, query, body)
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	params := u.Query()
	for key, values := range query {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	params.Set("userId", c.userID)
	params.Set("integrationSource", IntegrationSource)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// redactURL drops the query string; it names the user.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.RawQuery = ""

	return u.String()
}
