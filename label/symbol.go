package label

import "strings"

// Symbol is a three letter currency code as published in the rate table, e.g. USD
type Symbol string

// TRY is the Turkish lira, the currency every TCMB table is quoted in
const TRY Symbol = "TRY"

const (
	USD Symbol = "USD"
	EUR Symbol = "EUR"
	GBP Symbol = "GBP"
	CHF Symbol = "CHF"
	JPY Symbol = "JPY"
	XDR Symbol = "XDR"
)

func (s Symbol) String() string {
	return string(s)
}

// Normalize returns an upper-cased symbol without surrounding whitespace
func Normalize(code string) Symbol {
	return Symbol(strings.ToUpper(strings.TrimSpace(code)))
}

// Symbols converts a list of raw codes into normalized symbols
func Symbols(codes ...string) []Symbol {
	list := make([]Symbol, 0, len(codes))
	for _, code := range codes {
		list = append(list, Normalize(code))
	}

	return list
}
