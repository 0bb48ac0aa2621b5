package parser

import (
	"regexp"
	"strings"
)

// DefaultCurrencies are the foreign-currency codes that appear on
// PostFinance Visa statements as conversion annotations.
var DefaultCurrencies = []string{"USD", "EUR", "RON", "GBP", "CHF"}

var (
	// Two DD.MM.YY dates, merchant text, amount anchored at line end.
	// The merchant span is non-greedy so trailing whitespace before the
	// amount is not swallowed into it.
	txnPattern = regexp.MustCompile(`^(\d{2}\.\d{2}\.\d{2})\s+(\d{2}\.\d{2}\.\d{2})\s+(.+?)\s+(-?[\d',]+\.\d{2})$`)

	// Section header introducing the transactions of one cardholder.
	cardHolderPattern = regexp.MustCompile(`Transactions PostFinance Visa.*?/\s*(.+)$`)

	leadingDatePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}`)
)

// terminalPrefixes mark footer/summary lines that end a transaction
// block and must never be attached as a category.
var terminalPrefixes = []string{
	"Total",
	"Transaction total",
	"Card account",
	"Invoice date",
	"Page ",
}

// skipRule is one entry of the prioritized noise table. Rules are
// checked in order, first match wins.
type skipRule struct {
	name string
	re   *regexp.Regexp
}

// TxnMatch holds the raw captured fields of a matched transaction line.
type TxnMatch struct {
	EntryDate    string
	PurchaseDate string
	Merchant     string
	RawAmount    string
}

// Rules classifies single statement lines. Construct with NewRules so
// the foreign-currency set can come from configuration.
type Rules struct {
	skip []skipRule
}

// NewRules builds the classifier. currencies is the set of 3-letter
// codes recognized as bare foreign-amount lines; nil selects
// DefaultCurrencies.
func NewRules(currencies []string) *Rules {
	if len(currencies) == 0 {
		currencies = DefaultCurrencies
	}
	currencyAlt := strings.Join(currencies, "|")
	return &Rules{
		skip: []skipRule{
			{name: "carried-forward", re: regexp.MustCompile(`(?i)^Amount carried forward`)},
			{name: "exchange-rate", re: regexp.MustCompile(`(?i)^Exchange rate`)},
			{name: "processing-surcharge", re: regexp.MustCompile(`(?i)^Processing surcharge`)},
			{name: "chf-surcharge", re: regexp.MustCompile(`(?i)^Surcharge in CHF`)},
			{name: "foreign-amount", re: regexp.MustCompile(`(?i)^\s*(` + currencyAlt + `)\s+[\d.]+`)},
		},
	}
}

// MatchNoise reports whether the line is statement boilerplate that
// must be skipped, and if so which rule claimed it.
func (r *Rules) MatchNoise(line string) (string, bool) {
	for _, rule := range r.skip {
		if rule.re.MatchString(line) {
			return rule.name, true
		}
	}
	return "", false
}

// MatchCardHolder extracts the cardholder name from a section header
// line, if the line is one.
func (r *Rules) MatchCardHolder(line string) (string, bool) {
	m := cardHolderPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// MatchTransaction matches the fixed transaction-line format and
// returns the raw captured fields.
func (r *Rules) MatchTransaction(line string) (TxnMatch, bool) {
	m := txnPattern.FindStringSubmatch(line)
	if m == nil {
		return TxnMatch{}, false
	}
	return TxnMatch{
		EntryDate:    m[1],
		PurchaseDate: m[2],
		Merchant:     strings.TrimSpace(m[3]),
		RawAmount:    m[4],
	}, true
}

// IsCategory reports whether a lookahead line qualifies as the category
// of the transaction it follows: non-empty, not a new transaction or
// dated line, not a section header, not noise, and not a terminal
// marker.
func (r *Rules) IsCategory(line string) bool {
	if line == "" {
		return false
	}
	if _, ok := r.MatchTransaction(line); ok {
		return false
	}
	if _, ok := r.MatchNoise(line); ok {
		return false
	}
	if leadingDatePattern.MatchString(line) {
		return false
	}
	if _, ok := r.MatchCardHolder(line); ok {
		return false
	}
	for _, prefix := range terminalPrefixes {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}
