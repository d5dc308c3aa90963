// Package forge implements a minimal authenticated client for the GitHub
// REST API: explicit endpoint building, JSON dispatch, structured errors and
// lazy Link-header pagination.
package forge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// DefaultBaseURL is the public GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"

	acceptJSON = "application/vnd.github+json"
	apiVersion = "2022-11-28"
	userAgent  = "release-manager (+https://github.com/lerenn/release-manager)"
)

// Client dispatches authenticated requests against one API base URL. The
// token is resolved once at construction; requests carry no timeout beyond
// the transport's own, since every call is operator-supervised.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClientParams contains parameters for NewClient.
type NewClientParams struct {
	BaseURL    string        // defaults to DefaultBaseURL
	Tokens     TokenProvider // required
	HTTPClient *http.Client  // defaults to http.DefaultClient
}

// NewClient creates a new Client instance.
func NewClient(params NewClientParams) (*Client, error) {
	if params.Tokens == nil {
		return nil, ErrNoToken
	}
	token, err := params.Tokens.Token()
	if err != nil {
		return nil, err
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}, nil
}

// Endpoint addresses one URL under the client's API base, together with any
// extra request headers.
type Endpoint struct {
	client  *Client
	url     string
	headers http.Header
}

// Endpoint builds an endpoint from path segments under the API base.
func (c *Client) Endpoint(segments ...string) *Endpoint {
	return c.EndpointURL(c.baseURL + "/" + strings.Join(segments, "/"))
}

// EndpointURL builds an endpoint from a full URL, used when the API hands
// back hypermedia links.
func (c *Client) EndpointURL(url string) *Endpoint {
	return &Endpoint{client: c, url: url, headers: http.Header{}}
}

// Join returns a new endpoint with extra path segments appended.
func (e *Endpoint) Join(segments ...string) *Endpoint {
	joined := e.client.EndpointURL(strings.TrimRight(e.url, "/") + "/" + strings.Join(segments, "/"))
	joined.headers = e.headers.Clone()
	return joined
}

// WithHeader returns a new endpoint carrying an extra request header.
func (e *Endpoint) WithHeader(key, value string) *Endpoint {
	withHeader := e.client.EndpointURL(e.url)
	withHeader.headers = e.headers.Clone()
	withHeader.headers.Set(key, value)
	return withHeader
}

// URL returns the endpoint's full URL.
func (e *Endpoint) URL() string {
	return e.url
}

// Get issues a GET request and decodes the JSON response into out.
func (e *Endpoint) Get(out interface{}) error {
	return e.doJSON(http.MethodGet, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (e *Endpoint) Post(body, out interface{}) error {
	return e.doJSON(http.MethodPost, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (e *Endpoint) Put(body, out interface{}) error {
	return e.doJSON(http.MethodPut, body, out)
}

// Patch issues a PATCH request with a JSON body and decodes the response into out.
func (e *Endpoint) Patch(body, out interface{}) error {
	return e.doJSON(http.MethodPatch, body, out)
}

// Delete issues a DELETE request.
func (e *Endpoint) Delete() error {
	return e.doJSON(http.MethodDelete, nil, nil)
}

// PostRaw issues a POST request with a verbatim body, used for binary asset
// uploads, and decodes the JSON response into out.
func (e *Endpoint) PostRaw(data []byte, contentType string, out interface{}) error {
	resp, err := e.do(http.MethodPost, bytes.NewReader(data), contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// GetRaw issues a GET request and returns the raw response without status
// checking, for callers that need headers or status codes directly. The
// caller owns the response body.
func (e *Endpoint) GetRaw() (*http.Response, error) {
	return e.do(http.MethodGet, nil, "")
}

func (e *Endpoint) doJSON(method string, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := e.do(method, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		return err
	}
	return decodeBody(resp, out)
}

func (e *Endpoint) do(method string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, e.url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, e.url, err)
	}

	req.Header.Set("Accept", acceptJSON)
	req.Header.Set("Authorization", "Bearer "+e.client.token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	for key, values := range e.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, e.url, err)
	}
	return resp, nil
}

func decodeBody(resp *http.Response, out interface{}) error {
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", resp.Request.URL, err)
	}
	return nil
}
