package transaction

// Transaction represents a single charge or credit extracted from a
// Visa statement. Dates are canonical YYYY-MM-DD strings; a date that
// failed normalization keeps its raw statement form.
type Transaction struct {
	EntryDate    string  `json:"entry_date"`
	PurchaseDate string  `json:"purchase_date"`
	Merchant     string  `json:"merchant"`
	Category     string  `json:"category,omitempty"`
	Amount       float64 `json:"amount"` // non-negative magnitude in CHF
	IsCredit     bool    `json:"is_credit"`
	CardHolder   string  `json:"card_holder"`
	SourceFile   string  `json:"source_file"`
}

// Signed returns the amount with its direction applied: negative for
// credits/refunds, positive for charges.
func (t Transaction) Signed() float64 {
	if t.IsCredit {
		return -t.Amount
	}
	return t.Amount
}

// List holds the transactions extracted from one statement.
type List struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	SourceFile   string        `json:"source_file"`
}

// Add appends a transaction to the list.
func (l *List) Add(t Transaction) {
	l.Transactions = append(l.Transactions, t)
	l.Total = len(l.Transactions)
}

// NetTotal returns the signed sum over the list: charges minus credits.
func (l *List) NetTotal() float64 {
	var sum float64
	for _, t := range l.Transactions {
		sum += t.Signed()
	}
	return sum
}

// ByCardHolder returns all transactions recorded under the given holder.
func (l *List) ByCardHolder(holder string) []Transaction {
	var filtered []Transaction
	for _, t := range l.Transactions {
		if t.CardHolder == holder {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
