// Package apiclient is the typed HTTP client for the tally server. The
// session engine and the CLI surfaces talk to the server only through it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sentinel errors mapped from response status codes. Callers detect them
// with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrActiveSession = errors.New("active session exists")
	ErrInvalid       = errors.New("invalid request")
)

// APIError carries any non-2xx response that does not map to a sentinel.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// FetchPolicy controls how list calls treat pagination.
type FetchPolicy int

const (
	// FetchFirstPage requests a single capped page. Views that only show
	// recent data accept the truncation.
	FetchFirstPage FetchPolicy = iota
	// FetchAll keeps requesting pages until the reported total is
	// reached. Views that aggregate over a whole range need every row.
	FetchAll
)

const pageSize = 500

type Client struct {
	base string
	http *http.Client
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// do runs one request and decodes the response body into out when the
// status is 2xx. A nil out discards the body. Returns the status code so
// callers can branch on 204.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request: %w", err)
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, c.statusError(resp)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) statusError(resp *http.Response) error {
	detail := struct {
		Detail string `json:"detail"`
	}{}
	_ = json.NewDecoder(resp.Body).Decode(&detail)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail.Detail, ErrNotFound)
	case http.StatusConflict:
		return ErrActiveSession
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalid, detail.Detail)
	default:
		return &APIError{Status: resp.StatusCode, Detail: detail.Detail}
	}
}

func pageQuery(limit, offset int) string {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))
	return q.Encode()
}
