package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/example/visa-extractor/internal/store"
)

// CSV writes rows in CSV format with a header row.
func CSV(out io.Writer, rows []store.Row) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"purchase_date", "merchant", "amount"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.PurchaseDate,
			r.Merchant,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
