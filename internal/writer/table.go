// Package writer renders query results as an aligned text table, CSV
// or JSON.
package writer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/example/visa-extractor/internal/store"
)

// Table renders rows as an aligned text table with a total line and a
// row count footer.
func Table(rows []store.Row) string {
	if len(rows) == 0 {
		return "No transactions found."
	}

	headers := [3]string{"Date", "Merchant", "Amount (CHF)"}
	widths := [3]int{len(headers[0]), len(headers[1]), len(headers[2])}
	for _, r := range rows {
		widths[0] = max(widths[0], len(r.PurchaseDate))
		widths[1] = max(widths[1], len(r.Merchant))
		widths[2] = max(widths[2], len(formatAmount(r.Amount)))
	}

	var lines []string
	header := fmt.Sprintf("%-*s  %-*s  %*s",
		widths[0], headers[0], widths[1], headers[1], widths[2], headers[2])
	lines = append(lines, header, strings.Repeat("-", len(header)))

	var total float64
	for _, r := range rows {
		total += r.Amount
		lines = append(lines, fmt.Sprintf("%-*s  %-*s  %*s",
			widths[0], r.PurchaseDate, widths[1], r.Merchant, widths[2], formatAmount(r.Amount)))
	}

	lines = append(lines, strings.Repeat("-", len(header)))
	lines = append(lines, fmt.Sprintf("%-*s  %-*s  %*s",
		widths[0], "Total", widths[1], "", widths[2], formatAmount(total)))
	lines = append(lines, fmt.Sprintf("%d transaction(s)", len(rows)))

	return strings.Join(lines, "\n")
}

// formatAmount renders a value with two decimals and comma thousands
// separators.
func formatAmount(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}
