package tcmb

import "errors"

var (
	errDecodeToken       = errors.New("decoding of the markup failed")
	errAttributeNotValid = errors.New("attr is not valid")
	errEmptyDocument     = errors.New("document has no root element")
	errNoCurrencies      = errors.New("document has no currency records")
)

// xmlTable is the root element, Tarih_Date in documents published by the bank
type xmlTable struct {
	Date       string        `xml:"Date,attr"`
	Bulletin   string        `xml:"Bulten_No,attr"`
	Currencies []xmlCurrency `xml:"Currency"`
}

type xmlCurrency struct {
	Code            string `xml:"CurrencyCode,attr"`
	Kod             string `xml:"Kod,attr"`
	Unit            string `xml:"Unit"`
	Isim            string `xml:"Isim"`
	Name            string `xml:"CurrencyName"`
	ForexBuying     string `xml:"ForexBuying"`
	ForexSelling    string `xml:"ForexSelling"`
	BanknoteBuying  string `xml:"BanknoteBuying"`
	BanknoteSelling string `xml:"BanknoteSelling"`
	CrossRateUSD    string `xml:"CrossRateUSD"`
	CrossRateOther  string `xml:"CrossRateOther"`
}
