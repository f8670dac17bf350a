package tcmb

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/kurlar/internal/strutil"
	"github.com/robotomize/kurlar/label"
	"github.com/robotomize/kurlar/provider"
	"github.com/robotomize/kurlar/rate"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// Parse decodes a rate document into a table. requested is the date the caller asked
// for and is kept as the fallback effective date
func Parse(b []byte, requested string) (*rate.Table, error) {
	doc, err := decodeXML(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrParseFailed, err)
	}

	entries, err := doc.entries()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrParseFailed, err)
	}

	t, err := rate.NewTable(rate.Meta{
		DocumentDate:  strings.TrimSpace(doc.Date),
		RequestedDate: strings.TrimSpace(requested),
		Bulletin:      strings.TrimSpace(doc.Bulletin),
	}, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrParseFailed, err)
	}

	return t, nil
}

// decodeXML parses xml in streaming mode. The first element is the root of the table,
// a second root element is a markup error
func decodeXML(b []byte) (xmlTable, error) {
	var doc xmlTable
	decoder := xml.NewDecoder(bytes.NewReader(b))
	decoder.CharsetReader = charsetReader

	found := false

TokenLoop:
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break TokenLoop
			}

			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return doc, fmt.Errorf("%w: %v", errDecodeToken, syntaxErr.Error())
			}

			return doc, fmt.Errorf("decode token: %w", err)
		}

		tp, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if found {
			return doc, fmt.Errorf("%w: unexpected element %s after root", errDecodeToken, tp.Name.Local)
		}

		if err := decoder.DecodeElement(&doc, &tp); err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return doc, fmt.Errorf("%w: %v", errDecodeToken, syntaxErr.Error())
			}

			return doc, fmt.Errorf("decode element: %w", err)
		}

		found = true
	}

	if !found {
		return doc, errEmptyDocument
	}

	if len(doc.Currencies) == 0 {
		return doc, errNoCurrencies
	}

	return doc, nil
}

// entries converts every record, collecting all record errors instead of stopping at
// the first one
func (d xmlTable) entries() ([]rate.Entry, error) {
	var merr *multierror.Error

	seen := make(map[label.Symbol]struct{}, len(d.Currencies))
	list := make([]rate.Entry, 0, len(d.Currencies))

	for i, node := range d.Currencies {
		e, err := node.entry()
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("currency #%d: %w", i+1, err))
			continue
		}

		if _, ok := seen[e.Code]; ok {
			merr = multierror.Append(merr, fmt.Errorf("currency #%d: %w: %s", i+1, rate.ErrDuplicateCode, e.Code))
			continue
		}

		seen[e.Code] = struct{}{}
		list = append(list, e)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return list, nil
}

func (c xmlCurrency) entry() (rate.Entry, error) {
	code := c.Code
	if strings.TrimSpace(code) == "" {
		code = c.Kod
	}

	e := rate.Entry{
		Code:           label.Normalize(code),
		Name:           strutil.RemoveExtraSpaces(c.Name),
		LocalName:      strutil.RemoveExtraSpaces(c.Isim),
		CrossRateUSD:   strings.TrimSpace(c.CrossRateUSD),
		CrossRateOther: strings.TrimSpace(c.CrossRateOther),
	}

	if e.Code == "" {
		return e, fmt.Errorf("%w: missing CurrencyCode", errAttributeNotValid)
	}

	unit, err := strconv.Atoi(strings.TrimSpace(c.Unit))
	if err != nil {
		return e, fmt.Errorf("%w: %s Unit %q", errAttributeNotValid, e.Code, c.Unit)
	}

	if unit <= 0 {
		return e, fmt.Errorf("%w: %s Unit %d", errAttributeNotValid, e.Code, unit)
	}

	e.Unit = unit

	fields := []struct {
		name string
		text string
		dst  *rate.Value
	}{
		{name: "ForexBuying", text: c.ForexBuying, dst: &e.ForexBuying},
		{name: "ForexSelling", text: c.ForexSelling, dst: &e.ForexSelling},
		{name: "BanknoteBuying", text: c.BanknoteBuying, dst: &e.BanknoteBuying},
		{name: "BanknoteSelling", text: c.BanknoteSelling, dst: &e.BanknoteSelling},
	}

	for _, f := range fields {
		v, err := rate.ParseValue(f.text)
		if err != nil {
			return e, fmt.Errorf("%s %s: %w", e.Code, f.name, err)
		}

		*f.dst = v
	}

	return e, nil
}

// charsetReader handles the Turkish code pages of archived documents directly and hands
// every other declared charset to the html charset registry
func charsetReader(name string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iso-8859-9", "iso8859-9", "latin5":
		return charmap.ISO8859_9.NewDecoder().Reader(input), nil
	case "windows-1254", "cp1254":
		return charmap.Windows1254.NewDecoder().Reader(input), nil
	}

	r, err := charset.NewReaderLabel(name, input)
	if err != nil {
		return nil, fmt.Errorf("charset %s is not supported: %w", name, err)
	}

	return r, nil
}
