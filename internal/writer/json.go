package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/visa-extractor/internal/store"
)

// JSON writes rows as an indented JSON array. An empty result is an
// empty array, not null.
func JSON(out io.Writer, rows []store.Row) error {
	if rows == nil {
		rows = []store.Row{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
