package rate

import "github.com/robotomize/kurlar/label"

// Entry is one currency's figures in a table. Rates are quoted per Unit units of the
// foreign currency
type Entry struct {
	Code      label.Symbol
	Name      string
	LocalName string

	ForexBuying     Value
	ForexSelling    Value
	BanknoteBuying  Value
	BanknoteSelling Value

	Unit int

	CrossRateUSD   string
	CrossRateOther string
}

// Selling returns the selling figure for the class, absent for an unknown class
func (e Entry) Selling(c Class) Value {
	switch c.orDefault() {
	case ClassForex:
		return e.ForexSelling
	case ClassBanknote:
		return e.BanknoteSelling
	default:
		return Absent()
	}
}

// Buying returns the buying figure for the class, absent for an unknown class
func (e Entry) Buying(c Class) Value {
	switch c.orDefault() {
	case ClassForex:
		return e.ForexBuying
	case ClassBanknote:
		return e.BanknoteBuying
	default:
		return Absent()
	}
}
