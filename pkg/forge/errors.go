package forge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrNoToken is returned when no API token can be resolved.
	ErrNoToken = errors.New("no API token found")
	// ErrNoUploadURL is returned when a release carries no upload URL.
	ErrNoUploadURL = errors.New("release has no upload URL")
)

// APIError is the error returned for any non-2xx API response. It keeps the
// response body so the operator can see exactly what the server objected to.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
	Body       []byte
}

// Error renders the status line followed by the response body, pretty-printed
// when the body is JSON.
func (e *APIError) Error() string {
	var class string
	switch {
	case e.StatusCode >= 400 && e.StatusCode < 500:
		class = "Client"
	case e.StatusCode >= 500 && e.StatusCode < 600:
		class = "Server"
	default:
		class = "Unknown"
	}

	msg := fmt.Sprintf("%d %s Error: %s for URL: %s", e.StatusCode, class, e.Status, e.URL)
	if len(e.Body) == 0 {
		return msg
	}
	var parsed interface{}
	if json.Unmarshal(e.Body, &parsed) == nil {
		if pretty, err := json.MarshalIndent(parsed, "", "    "); err == nil {
			return msg + "\n" + string(pretty)
		}
	}
	return msg + "\n" + string(e.Body)
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))),
		URL:        resp.Request.URL.String(),
		Body:       body,
	}
}
