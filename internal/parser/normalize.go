package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const statementDateLayout = "02.01.06"

var amountCleaner = strings.NewReplacer("'", "", ",", "")

// ParseDate converts a statement-local DD.MM.YY date to YYYY-MM-DD.
// Anything that does not parse is returned unchanged so one bad date
// never drops a record.
func ParseDate(s string) string {
	t, err := time.Parse(statementDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// ParseAmount parses a statement amount token. Apostrophe and comma
// thousands separators are stripped; a leading minus sign marks a
// credit and is removed before taking the magnitude.
func ParseAmount(s string) (amount float64, isCredit bool, err error) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	isCredit = strings.HasPrefix(cleaned, "-")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return math.Abs(v), isCredit, nil
}
