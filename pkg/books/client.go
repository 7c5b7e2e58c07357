// Package books provides a client for a Google-Books-style volumes lookup
// service, keyed by ISBN.
package books

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public volumes lookup endpoint host.
	DefaultBaseURL = "https://www.googleapis.com"

	defaultTimeout = 30 * time.Second
	defaultRPS     = 5
	userAgent      = "shelfmark (+https://github.com/shelfhq/shelfmark)"
)

// volumesSchema is the minimal shape contract a lookup payload must satisfy
// before decoding. Field absence is allowed everywhere; only type violations
// are rejected.
const volumesSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["totalItems"],
	"properties": {
		"totalItems": {"type": "integer"},
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"volumeInfo": {"type": "object"}
				}
			}
		}
	}
}`

var volumesSchemaLoader = gojsonschema.NewStringLoader(volumesSchema)

// Client queries the volumes lookup service. One invocation performs exactly
// one GET; there is no retry policy.
type Client struct {
	fetcher HTTPFetcher
	baseURL string
	limiter *rate.Limiter
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int
}

// NewClient creates a Client with real HTTP for production use
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Secure HTTP client with timeout and TLS verification
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}

	return NewClientWithFetcher(opts, NewRealHTTPFetcher(client))
}

// NewClientWithFetcher creates a Client with injectable HTTP for testing
func NewClientWithFetcher(opts Options, fetcher HTTPFetcher) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}

	return &Client{
		fetcher: fetcher,
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// LookupURL returns the volumes query URL for an ISBN.
func (c *Client) LookupURL(isbn string) string {
	return fmt.Sprintf("%s/books/v1/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbn))
}

// LookupISBN fetches metadata for one ISBN and maps it into a Book.
// Returns a NotFoundError when the result set is empty or the first result
// carries no volume info.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Book{}, err
	}

	lookupURL := c.LookupURL(isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return Book{}, &NetworkError{URL: lookupURL, Wrapped: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.fetcher.Do(req)
	if err != nil {
		return Book{}, &NetworkError{URL: lookupURL, Wrapped: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Book{}, &StatusError{URL: lookupURL, StatusCode: resp.StatusCode}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Book{}, &NetworkError{URL: lookupURL, Wrapped: err}
	}

	if err := validatePayload(payload); err != nil {
		return Book{}, &ParseError{Message: "volumes response", Wrapped: err}
	}

	var result volumesResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return Book{}, &ParseError{Message: "volumes response", Wrapped: err}
	}

	if result.TotalItems == 0 || len(result.Items) == 0 || result.Items[0].VolumeInfo == nil {
		return Book{}, &NotFoundError{ISBN: isbn}
	}

	return FromVolumeInfo(result.Items[0].VolumeInfo), nil
}

// validatePayload checks the raw payload against the volumes shape contract.
func validatePayload(payload []byte) error {
	result, err := gojsonschema.Validate(volumesSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return errors.New(result.Errors()[0].String())
	}
	return nil
}
