package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFetchError(t *testing.T) {
	t.Parallel()

	cause := context.DeadlineExceeded

	testCases := []struct {
		name     string
		err      *FetchError
		contains string
	}{
		{
			name:     "test_with_url",
			err:      &FetchError{Locator: "202403/05032024", URL: "https://www.tcmb.gov.tr/kurlar/202403/05032024.xml", Err: cause},
			contains: "https://www.tcmb.gov.tr/kurlar/202403/05032024.xml",
		},
		{
			name:     "test_locator_only",
			err:      &FetchError{Locator: Latest, Err: cause},
			contains: "today",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var err error = tc.err
			if !errors.Is(err, ErrFetchFailed) {
				t.Errorf("fetch error must match %v", ErrFetchFailed)
			}

			if !errors.Is(err, cause) {
				t.Errorf("fetch error must unwrap to %v", cause)
			}

			if errors.Is(err, ErrParseFailed) {
				t.Errorf("fetch error must not match %v", ErrParseFailed)
			}

			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.contains)
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("errors.As failed")
			}

			if diff := cmp.Diff(tc.err.Locator, fetchErr.Locator); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
