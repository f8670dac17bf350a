package tcmb

import (
	"context"
	"errors"
	"fmt"

	"github.com/robotomize/kurlar/provider"
	"github.com/robotomize/kurlar/rate"
)

// Load routes the requested date, fetches its document and parses it. Nothing is
// fetched for a malformed date and nothing is parsed after a failed fetch
func Load(ctx context.Context, f provider.Fetcher, date string) (*rate.Table, error) {
	loc, err := Route(date)
	if err != nil {
		return nil, err
	}

	b, err := f.Fetch(ctx, loc)
	if err != nil {
		var fetchErr *provider.FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}

		return nil, &provider.FetchError{Locator: loc, Err: err}
	}

	t, err := Parse(b, date)
	if err != nil {
		return nil, fmt.Errorf("locator %s: %w", loc, err)
	}

	return t, nil
}
