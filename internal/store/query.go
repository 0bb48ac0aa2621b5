package store

import (
	"fmt"
	"strings"
)

// Filter holds the optional query criteria. Zero values mean "no
// filter"; supplied filters combine with AND.
type Filter struct {
	Search string // case-insensitive merchant substring
	Year   string // 4-digit year of the purchase date
	Month  string // YYYY-MM of the purchase date
}

// Row is one reporting result.
type Row struct {
	PurchaseDate string  `json:"purchase_date"`
	Merchant     string  `json:"merchant"`
	Amount       float64 `json:"amount"`
}

// Search returns the matching transactions ordered by purchase date,
// newest first.
func (s *Store) Search(f Filter) ([]Row, error) {
	var conditions []string
	var params []any

	if f.Search != "" {
		conditions = append(conditions, "merchant LIKE ?")
		params = append(params, "%"+f.Search+"%")
	}
	if f.Year != "" {
		conditions = append(conditions, "strftime('%Y', purchase_date) = ?")
		params = append(params, f.Year)
	}
	if f.Month != "" {
		conditions = append(conditions, "strftime('%Y-%m', purchase_date) = ?")
		params = append(params, f.Month)
	}

	query := "SELECT purchase_date, merchant, amount FROM transactions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY purchase_date DESC"

	rows, err := s.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.PurchaseDate, &r.Merchant, &r.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
