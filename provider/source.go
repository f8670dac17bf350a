package provider

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateFormat is returned for a requested date that is not day-month-year
	ErrInvalidDateFormat = errors.New("invalid date format, expected day-month-year (e.g. 25-01-2023)")
	// ErrFetchFailed is returned when the document could not be retrieved
	ErrFetchFailed = errors.New("rate document could not be fetched")
	// ErrParseFailed is returned when the retrieved document is not a rate table
	ErrParseFailed = errors.New("rate document could not be parsed")
)

// Locator identifies a rate document for a Fetcher. It is either Latest or a
// date-coded path such as 202403/05032024
type Locator string

// Latest points to the most recently published table
const Latest Locator = "today"

func (l Locator) String() string {
	return string(l)
}

// Fetcher retrieves the raw bytes of a rate document. Fetcher owns every transport
// concern: timeouts, headers, retries
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Fetcher interface {
	Fetch(ctx context.Context, loc Locator) ([]byte, error)
}

// FetchError reports a failed retrieval together with what was attempted
type FetchError struct {
	Locator Locator
	URL     string
	Err     error
}

func (e *FetchError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%v: %s: %v", ErrFetchFailed, e.Locator, e.Err)
	}

	return fmt.Sprintf("%v: %s: %v", ErrFetchFailed, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
