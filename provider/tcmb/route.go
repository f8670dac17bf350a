package tcmb

import (
	"fmt"
	"strings"
	"time"

	"github.com/robotomize/kurlar/provider"
)

// DateLayout is the accepted form of a requested date: day-month-year, e.g. 25-01-2023
const DateLayout = "2-1-2006"

// Route maps a requested date onto a locator. An empty date selects the latest table.
// Dates that do not parse, including impossible ones like 31-02-2024, produce no locator
func Route(date string) (provider.Locator, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return provider.Latest, nil
	}

	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", provider.ErrInvalidDateFormat, date, err)
	}

	return LocatorFor(t), nil
}

// LocatorFor follows the archive naming of the bank: {YYYY}{MM}/{DD}{MM}{YYYY}
func LocatorFor(t time.Time) provider.Locator {
	y, m, d := t.Date()
	return provider.Locator(fmt.Sprintf("%04d%02d/%02d%02d%04d", y, int(m), d, int(m), y))
}
