package forge

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

var nextLinkRegexp = regexp.MustCompile(`<([^>]+)>\s*;\s*rel="next"`)

// Iter lazily iterates the JSON array elements of a paginated endpoint,
// following Link rel="next" headers. It is forward-only and single-pass; no
// request is issued before the first call to Next.
type Iter struct {
	endpoint *Endpoint
	nextURL  string
	buffer   []json.RawMessage
	err      error
}

// Paginate returns a lazy iterator over the endpoint's array elements.
func (e *Endpoint) Paginate() *Iter {
	return &Iter{endpoint: e, nextURL: e.url}
}

// Next decodes the next element into out, fetching a further page only when
// the buffered one is exhausted. It returns false when the sequence ends or
// an error occurs; Err tells the two apart.
func (it *Iter) Next(out interface{}) bool {
	if it.err != nil {
		return false
	}
	for len(it.buffer) == 0 {
		if it.nextURL == "" {
			return false
		}
		if !it.fetch() {
			return false
		}
	}

	element := it.buffer[0]
	it.buffer = it.buffer[1:]
	if err := json.Unmarshal(element, out); err != nil {
		it.err = fmt.Errorf("failed to decode paginated element: %w", err)
		return false
	}
	return true
}

// Err returns the error that terminated iteration, if any.
func (it *Iter) Err() error {
	return it.err
}

func (it *Iter) fetch() bool {
	page := it.endpoint.client.EndpointURL(it.nextURL)
	page.headers = it.endpoint.headers.Clone()

	resp, err := page.do(http.MethodGet, nil, "")
	if err != nil {
		it.err = err
		return false
	}
	defer resp.Body.Close()
	if err := checkResponse(resp); err != nil {
		it.err = err
		return false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		it.err = fmt.Errorf("failed to read page from %s: %w", it.nextURL, err)
		return false
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		it.err = fmt.Errorf("failed to decode page from %s: %w", it.nextURL, err)
		return false
	}

	it.buffer = elements
	it.nextURL = nextLink(resp.Header)
	return true
}

// nextLink extracts the rel="next" target from a Link header, returning the
// empty string on the last page.
func nextLink(header http.Header) string {
	for _, link := range header.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			if match := nextLinkRegexp.FindStringSubmatch(part); match != nil {
				return match[1]
			}
		}
	}
	return ""
}
