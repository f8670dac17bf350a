package rate

import (
	"errors"
	"fmt"

	"github.com/robotomize/kurlar/label"
)

// Reference is the pivot currency of every TCMB table
const Reference = label.TRY

var (
	ErrRateUnavailable = errors.New("rate is not available")
	ErrClassNotValid   = errors.New("unknown rate class")
)

// Path tells which branch of the conversion was taken
type Path string

const (
	PathIdentity      Path = "identity"
	PathFromReference Path = "from_reference"
	PathToReference   Path = "to_reference"
	PathCross         Path = "cross"
)

// Conversion is the outcome of Convert
type Conversion struct {
	Amount float64
	From   label.Symbol
	To     label.Symbol
	Class  Class
	Path   Path
	Result float64
}

func (c Conversion) String() string {
	return fmt.Sprintf(
		"Amount: %f, From: %s, To: %s, Class: %s, Result: %f",
		c.Amount,
		c.From,
		c.To,
		c.Class,
		c.Result,
	)
}

// Convert converts amount between two currencies through the reference currency.
// Selling figures are used to get into TRY and buying figures to get out of it.
// Quotation units are not applied and the result is not rounded
func (t *Table) Convert(amount float64, from, to string, c Class) (Conversion, error) {
	conv := Conversion{
		Amount: amount,
		From:   label.Normalize(from),
		To:     label.Normalize(to),
		Class:  c.orDefault(),
	}

	if conv.From == conv.To {
		conv.Path = PathIdentity
		conv.Result = amount
		return conv, nil
	}

	if !conv.Class.Valid() {
		return conv, fmt.Errorf("%w: %w: %s", ErrRateUnavailable, ErrClassNotValid, conv.Class)
	}

	switch {
	case conv.From == Reference:
		buying, err := t.divisor(conv.To, conv.Class)
		if err != nil {
			return conv, err
		}

		conv.Path = PathFromReference
		conv.Result = amount / buying
	case conv.To == Reference:
		selling, err := t.rate(conv.From, conv.Class, Entry.Selling)
		if err != nil {
			return conv, err
		}

		conv.Path = PathToReference
		conv.Result = amount * selling
	default:
		selling, err := t.rate(conv.From, conv.Class, Entry.Selling)
		if err != nil {
			return conv, err
		}

		buying, err := t.divisor(conv.To, conv.Class)
		if err != nil {
			return conv, err
		}

		conv.Path = PathCross
		conv.Result = (amount * selling) / buying
	}

	return conv, nil
}

func (t *Table) rate(code label.Symbol, c Class, side func(Entry, Class) Value) (float64, error) {
	e, ok := t.entries[code]
	if !ok {
		return 0, fmt.Errorf("%w: %w: %s", ErrRateUnavailable, ErrCurrencyNotFound, code)
	}

	f, ok := side(e, c).Float64()
	if !ok {
		return 0, fmt.Errorf("%w: %s %s", ErrRateUnavailable, code, c)
	}

	return f, nil
}

// divisor is the buying figure, which must also be non-zero to divide by
func (t *Table) divisor(code label.Symbol, c Class) (float64, error) {
	f, err := t.rate(code, c, Entry.Buying)
	if err != nil {
		return 0, err
	}

	if f == 0 {
		return 0, fmt.Errorf("%w: %s %s buying is zero", ErrRateUnavailable, code, c)
	}

	return f, nil
}
