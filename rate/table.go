package rate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/robotomize/kurlar/label"
)

// DateLayout is the layout used when a table has to report today's date
const DateLayout = "02.01.2006"

var (
	ErrCurrencyNotFound = errors.New("currency not found in table")
	ErrCodeNotValid     = errors.New("currency code is empty")
	ErrDuplicateCode    = errors.New("duplicate currency code")
	ErrUnitNotValid     = errors.New("unit must be positive")
)

// Meta describes where a table came from
type Meta struct {
	// DocumentDate is the Date attribute of the document root, empty when missing
	DocumentDate string
	// RequestedDate is the date the caller asked for, empty for the latest table
	RequestedDate string
	Bulletin      string
}

// Table holds every entry published for one date. It is immutable once built, so
// concurrent readers need no locking
type Table struct {
	meta    Meta
	entries map[label.Symbol]Entry
}

// NewTable builds a table, rejecting duplicate codes and non-positive units
func NewTable(meta Meta, entries []Entry) (*Table, error) {
	t := &Table{
		meta:    meta,
		entries: make(map[label.Symbol]Entry, len(entries)),
	}

	for _, e := range entries {
		code := label.Normalize(e.Code.String())
		if code == "" {
			return nil, ErrCodeNotValid
		}

		if _, ok := t.entries[code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
		}

		if e.Unit <= 0 {
			return nil, fmt.Errorf("%w: %s unit %d", ErrUnitNotValid, code, e.Unit)
		}

		e.Code = code
		t.entries[code] = e
	}

	return t, nil
}

// Lookup finds an entry by code, case-insensitively
func (t *Table) Lookup(code string) (Entry, bool) {
	e, ok := t.entries[label.Normalize(code)]
	return e, ok
}

// SellingRate returns the selling figure of the class as a float. The second result is
// false when the currency is missing or the figure was not published
func (t *Table) SellingRate(code string, c Class) (float64, bool) {
	e, ok := t.Lookup(code)
	if !ok {
		return 0, false
	}

	return e.Selling(c).Float64()
}

// BuyingRate is SellingRate for the buying side
func (t *Table) BuyingRate(code string, c Class) (float64, bool) {
	e, ok := t.Lookup(code)
	if !ok {
		return 0, false
	}

	return e.Buying(c).Float64()
}

// Selected returns entries for the requested codes in request order. Unknown codes are
// skipped and repeated codes are returned once
func (t *Table) Selected(codes ...string) []Entry {
	seen := make(map[label.Symbol]struct{}, len(codes))
	list := make([]Entry, 0, len(codes))

	for _, code := range codes {
		e, ok := t.Lookup(code)
		if !ok {
			continue
		}

		if _, dup := seen[e.Code]; dup {
			continue
		}

		seen[e.Code] = struct{}{}
		list = append(list, e)
	}

	return list
}

// All returns every entry sorted by code
func (t *Table) All() []Entry {
	list := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		list = append(list, e)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Code < list[j].Code
	})

	return list
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) DocumentDate() string {
	return t.meta.DocumentDate
}

func (t *Table) RequestedDate() string {
	return t.meta.RequestedDate
}

func (t *Table) Bulletin() string {
	return t.meta.Bulletin
}

// EffectiveDate is the document date, else the requested date, else now. The fallback
// to now can report a date the table was not published for (weekends, holidays)
func (t *Table) EffectiveDate(now time.Time) string {
	if t.meta.DocumentDate != "" {
		return t.meta.DocumentDate
	}

	if t.meta.RequestedDate != "" {
		return t.meta.RequestedDate
	}

	return now.Format(DateLayout)
}
