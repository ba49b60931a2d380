package musicbrainz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ironsmile/brainz/src/gate"
)

const (
	// DefaultAPIURL is the root of the MusicBrainz web service.
	DefaultAPIURL = "https://musicbrainz.org/ws/2"

	// DefaultTimeout is the time a single request is allowed to take.
	DefaultTimeout = 30 * time.Second

	// MaxLimit is the largest number of results the web service returns in a
	// single response.
	MaxLimit = 100

	// bodyExcerptSize is how much of an error response is kept for Error.Body.
	bodyExcerptSize = 200

	// maxResponseSize guards against endless responses.
	maxResponseSize = 16 * 1024 * 1024
)

// Client is a client for the MusicBrainz web service. Every request it makes is
// preceded by acquiring its gate. So as long as all clients in the program share a
// gate, the program will never make more than one request per gate interval.
//
// A Client is safe for concurrent use as long as its Set* methods are not called
// while it is in use.
type Client struct {
	useragent  string
	gate       *gate.Gate
	httpClient *http.Client
	apiURL     string
}

// NewClient returns a Client which identifies itself with `useragent` and paces its
// requests with `g`.
//
// MusicBrainz requires all applications to send a meaningful user agent of the form
// "Application/version (contact)" and uses it for throttling and filtering out bad
// applications. See UserAgent.
func NewClient(useragent string, g *gate.Gate) *Client {
	return &Client{
		useragent: useragent,
		gate:      g,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		apiURL: DefaultAPIURL,
	}
}

// UserAgent returns a user agent string in the format required by MusicBrainz.
func UserAgent(app, version, contact string) string {
	return fmt.Sprintf("%s/%s (%s)", app, version, contact)
}

// ClampLimit returns `limit` moved into the range of limits accepted by the
// web service.
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// get requests `endpoint` (relative to the API URL) with the query `params` and
// decodes the JSON response into `v`.
func (c *Client) get(
	ctx context.Context,
	endpoint string,
	params url.Values,
	v any,
) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s/%s?%s",
		strings.TrimSuffix(c.apiURL, "/"),
		endpoint,
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("error creating MusicBrainz API request: %w", err)
	}
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	if err := c.gate.Acquire(ctx); err != nil {
		return err
	}

	log.Printf("MusicBrainz request: GET %s\n", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError(reqURL, err)
	}
	defer resp.Body.Close()

	log.Printf("MusicBrainz response: HTTP %d for %s\n", resp.StatusCode, reqURL)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return TransportError(reqURL, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return StatusError(resp.StatusCode, reqURL, bodyExcerpt(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &Error{
			Kind: ErrMalformedResponse,
			URL:  reqURL,
			Err:  fmt.Errorf("decoding MusicBrainz JSON API response: %w", err),
		}
	}

	return nil
}

// bodyExcerpt returns a short diagnostic message out of an error response. The web
// service returns JSON objects with an "error" field for most errors, so that is
// preferred over the raw body.
func bodyExcerpt(body []byte) string {
	var mbErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &mbErr); err == nil && mbErr.Error != "" {
		return truncate(mbErr.Error, bodyExcerptSize)
	}

	return truncate(strings.TrimSpace(string(body)), bodyExcerptSize)
}

func truncate(s string, size int) string {
	if len(s) <= size {
		return s
	}
	for size > 0 && !utf8.RuneStart(s[size]) {
		size--
	}
	return s[:size] + "..."
}

// IsTimeout returns true when err is a transport error caused by a timeout.
func IsTimeout(err error) bool {
	if !errors.Is(err, ErrTransport) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
