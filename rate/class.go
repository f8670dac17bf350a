package rate

import "strings"

// Class selects between interbank (forex) and cash (banknote) quotations
type Class string

const (
	ClassForex    Class = "forex"
	ClassBanknote Class = "banknote"
)

// ParseClass maps user input onto a Class. Empty input selects forex; anything unknown
// is returned as is and later yields absent rates
func ParseClass(s string) Class {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ClassForex
	}

	return c
}

func (c Class) orDefault() Class {
	if c == "" {
		return ClassForex
	}

	return c
}

// Valid reports whether the class is one published by the bank
func (c Class) Valid() bool {
	switch c.orDefault() {
	case ClassForex, ClassBanknote:
		return true
	default:
		return false
	}
}

func (c Class) String() string {
	return string(c.orDefault())
}
