package kurlar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robotomize/kurlar/internal/logging"
	"github.com/robotomize/kurlar/provider"
	"github.com/robotomize/kurlar/provider/tcmb"
	"github.com/robotomize/kurlar/rate"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = provider.ErrInvalidDateFormat
	ErrFetchFailed       = provider.ErrFetchFailed
	ErrParseFailed       = provider.ErrParseFailed
	ErrRateUnavailable   = rate.ErrRateUnavailable
	ErrCurrencyNotFound  = rate.ErrCurrencyNotFound
)

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryNum       = 0
	DefaultRetryDuration  = tcmb.DefaultRetryDuration
)

type Option func(*Rates)

type Options struct {
	RetryNum       uint64
	RetryDuration  time.Duration
	RequestTimeout time.Duration
	BaseURL        string
	UserAgent      string
}

// WithHTTPClient set the client used by the default fetcher
func WithHTTPClient(client *http.Client) Option {
	return func(r *Rates) {
		r.client = client
	}
}

// WithFetcher replaces the TCMB web source, for mirrors, files or tests
func WithFetcher(f provider.Fetcher) Option {
	return func(r *Rates) {
		r.fetcher = f
	}
}

// WithBaseURL set the folder documents are fetched from
func WithBaseURL(u string) Option {
	return func(r *Rates) {
		r.opts.BaseURL = u
	}
}

// WithUserAgent set the User-Agent header of the default fetcher
func WithUserAgent(ua string) Option {
	return func(r *Rates) {
		r.opts.UserAgent = ua
	}
}

// WithRetryNum set number of repeated requests for data retrieval errors from the source
func WithRetryNum(n uint64) Option {
	return func(r *Rates) {
		r.opts.RetryNum = n
	}
}

// WithRetryDuration constant pause between retries
func WithRetryDuration(t time.Duration) Option {
	return func(r *Rates) {
		r.opts.RetryDuration = t
	}
}

// WithRequestTimeout set a timeout for the whole retrieval
func WithRequestTimeout(t time.Duration) Option {
	return func(r *Rates) {
		r.opts.RequestTimeout = t
	}
}

// WithClock set the clock used to report today's date
func WithClock(now func() time.Time) Option {
	return func(r *Rates) {
		r.now = now
	}
}

// Rates is the rate table of one date. Construction errors are kept and every query on
// an errored instance returns an empty result instead of failing again.
//
//	r := kurlar.New(ctx, "05-03-2024")
//	if r.HasError() {
//		log.Fatal(r.ErrorMessage())
//	}
//	eur, ok := r.Convert(100, "USD", "EUR", rate.ClassForex)
type Rates struct {
	opts    Options
	client  *http.Client
	fetcher provider.Fetcher
	now     func() time.Time

	date    string
	locator provider.Locator
	table   *rate.Table
	err     error
}

// New loads the table for date (day-month-year), or the latest table for an empty date
func New(ctx context.Context, date string, opts ...Option) *Rates {
	r := &Rates{
		opts: Options{
			RetryNum:       DefaultRetryNum,
			RetryDuration:  DefaultRetryDuration,
			RequestTimeout: DefaultRequestTimeout,
		},
		now:  time.Now,
		date: date,
	}

	for _, opt := range opts {
		opt(r)
	}

	logger := logging.FromContext(ctx).WithField("date", date)

	if err := r.load(ctx); err != nil {
		r.err = err
		logger.WithError(err).Warn("rate table not loaded")

		return r
	}

	logger.WithFields(logrus.Fields{
		"locator":    r.locator.String(),
		"currencies": r.table.Len(),
	}).Debug("rate table loaded")

	return r
}

func (r *Rates) load(ctx context.Context) error {
	loc, err := tcmb.Route(r.date)
	if err != nil {
		return err
	}

	r.locator = loc

	if r.fetcher == nil {
		source, err := r.source()
		if err != nil {
			return err
		}

		r.fetcher = source
	}

	if r.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.RequestTimeout)
		defer cancel()
	}

	t, err := tcmb.Load(ctx, r.fetcher, r.date)
	if err != nil {
		return err
	}

	r.table = t

	return nil
}

func (r *Rates) source() (*tcmb.Source, error) {
	opts := []tcmb.Option{
		tcmb.WithUserAgent(r.opts.UserAgent),
		tcmb.WithRetryNum(r.opts.RetryNum),
		tcmb.WithRetryDuration(r.opts.RetryDuration),
	}

	if r.opts.BaseURL != "" {
		u, err := url.Parse(r.opts.BaseURL)
		if err != nil {
			return nil, &provider.FetchError{Locator: r.locator, URL: r.opts.BaseURL, Err: fmt.Errorf("parse base url: %w", err)}
		}

		opts = append(opts, tcmb.WithBaseURL(*u))
	}

	return tcmb.NewSource(r.client, opts...), nil
}

// HasError reports whether the table failed to load
func (r *Rates) HasError() bool {
	return r.err != nil
}

// Err returns the construction error, match it with errors.Is against ErrInvalidDateFormat,
// ErrFetchFailed or ErrParseFailed
func (r *Rates) Err() error {
	return r.err
}

func (r *Rates) ErrorMessage() string {
	if r.err == nil {
		return ""
	}

	return r.err.Error()
}

// Table exposes the loaded table
func (r *Rates) Table() (*rate.Table, bool) {
	return r.table, r.table != nil
}

// Locator returns where the table was loaded from, empty when the date was invalid
func (r *Rates) Locator() provider.Locator {
	return r.locator
}

// AllCurrencies returns every entry sorted by code, nil on an errored instance
func (r *Rates) AllCurrencies() []rate.Entry {
	if r.table == nil {
		return nil
	}

	return r.table.All()
}

func (r *Rates) Currency(code string) (rate.Entry, bool) {
	if r.table == nil {
		return rate.Entry{}, false
	}

	return r.table.Lookup(code)
}

func (r *Rates) SellingRate(code string, c rate.Class) (float64, bool) {
	if r.table == nil {
		return 0, false
	}

	return r.table.SellingRate(code, c)
}

func (r *Rates) BuyingRate(code string, c rate.Class) (float64, bool) {
	if r.table == nil {
		return 0, false
	}

	return r.table.BuyingRate(code, c)
}

// Convert returns the converted amount, false when a needed rate is not published
func (r *Rates) Convert(amount float64, from, to string, c rate.Class) (float64, bool) {
	conv, err := r.Conversion(amount, from, to, c)
	if err != nil {
		return 0, false
	}

	return conv.Result, true
}

// Conversion is Convert with the reason of a failure
func (r *Rates) Conversion(amount float64, from, to string, c rate.Class) (rate.Conversion, error) {
	if r.table == nil {
		return rate.Conversion{}, fmt.Errorf("table not loaded: %w", r.err)
	}

	return r.table.Convert(amount, from, to, c)
}

// Date returns the document date, else the requested date, else today. The clock is
// read on every call
func (r *Rates) Date() (string, bool) {
	if r.table == nil {
		return "", false
	}

	return r.table.EffectiveDate(r.now()), true
}

// SelectedCurrencies returns the entries of the requested codes that the table has
func (r *Rates) SelectedCurrencies(codes ...string) []rate.Entry {
	if r.table == nil {
		return nil
	}

	return r.table.Selected(codes...)
}
