package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrDecode reports an upstream response body that is not valid JSON.
var ErrDecode = errors.New("invalid json in response body")

// TransportError covers everything that went wrong reaching the upstream:
// connection failures, timeouts and non-2xx statuses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ShapeError reports a response that decoded as JSON but does not match
// the expected payload shape (a type mismatch on a known field).
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string { return e.Err.Error() }
func (e *ShapeError) Unwrap() error { return e.Err }

type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// FetchStats issues the user profile query and decodes the envelope.
// The returned StatsData may be nil when the upstream omits it; callers
// treat that as an empty payload.
func (c *Client) FetchStats(ctx context.Context, q StatsQuery) (*StatsData, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.Endpoint,
		bytes.NewReader(b),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com/")
	req.Header.Set("User-Agent", "leetcode-stats/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Err: fmt.Errorf("leetcode http %d: %s", resp.StatusCode, raw)}
	}

	var env statsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ShapeError{Err: typeErr}
		}
		return nil, ErrDecode
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", env.Errors[0].Message)
	}

	return env.Data, nil
}
