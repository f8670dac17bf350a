package tcmb

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/robotomize/kurlar/internal/logging"
	"github.com/robotomize/kurlar/provider"
	"github.com/robotomize/kurlar/provider/httputil"
	"github.com/sethvargo/go-retry"
)

const (
	hostname = "www.tcmb.gov.tr"
	basePath = "/kurlar/"
)

const DefaultRetryDuration = time.Second

// DefaultBaseURL is the folder every rate document lives under
var DefaultBaseURL = url.URL{Scheme: "https", Host: hostname, Path: basePath}

var _ provider.Fetcher = (*Source)(nil)

type Option func(*Source)

// WithBaseURL points the source at another host, e.g. a mirror or a test server.
// The path should end with a slash
func WithBaseURL(u url.URL) Option {
	return func(s *Source) {
		s.baseURL = u
	}
}

func WithUserAgent(userAgent string) Option {
	return func(s *Source) {
		s.userAgent = userAgent
	}
}

// WithRetryNum set number of repeated requests after a failed one. Missing documents
// (HTTP 404) are never retried
func WithRetryNum(n uint64) Option {
	return func(s *Source) {
		s.retryNum = n
	}
}

// WithRetryDuration set the constant pause between retries
func WithRetryDuration(t time.Duration) Option {
	return func(s *Source) {
		s.retryDuration = t
	}
}

// NewSource returns a Fetcher for documents published by the bank
func NewSource(client *http.Client, opts ...Option) *Source {
	s := &Source{
		baseURL:       DefaultBaseURL,
		retryDuration: DefaultRetryDuration,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.retryDuration <= 0 {
		s.retryDuration = DefaultRetryDuration
	}

	s.client = httputil.NewHTTPClient(client, s.userAgent)

	return s
}

type Source struct {
	baseURL       url.URL
	userAgent     string
	retryNum      uint64
	retryDuration time.Duration
	client        httputil.SourceHTTPClient
}

// URL resolves a locator to the address of its document
func (s *Source) URL(loc provider.Locator) url.URL {
	ref := &url.URL{Path: loc.String() + ".xml"}
	return *s.baseURL.ResolveReference(ref)
}

// Fetch downloads the document of the locator. Every failure is a *provider.FetchError
func (s *Source) Fetch(ctx context.Context, loc provider.Locator) ([]byte, error) {
	u := s.URL(loc)
	logger := logging.FromContext(ctx).WithField("url", u.String())

	b, err := retry.NewConstant(s.retryDuration)
	if err != nil {
		return nil, &provider.FetchError{Locator: loc, URL: u.String(), Err: err}
	}

	b = retry.WithMaxRetries(s.retryNum, b)

	var (
		body    []byte
		attempt int
	)

	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++

		res, err := s.client.Get(ctx, u)
		if err != nil {
			if errors.Is(err, httputil.ErrNotFound) || ctx.Err() != nil {
				return err
			}

			logger.WithError(err).WithField("attempt", attempt).Warn("fetch rate document")

			return retry.RetryableError(err)
		}

		body = res

		return nil
	}); err != nil {
		return nil, &provider.FetchError{Locator: loc, URL: u.String(), Err: err}
	}

	logger.WithField("bytes", len(body)).Debug("rate document fetched")

	return body, nil
}
