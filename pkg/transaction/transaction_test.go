package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_Signed(t *testing.T) {
	charge := Transaction{Amount: 45.90, IsCredit: false}
	assert.Equal(t, 45.90, charge.Signed())

	refund := Transaction{Amount: 12.00, IsCredit: true}
	assert.Equal(t, -12.00, refund.Signed())
}

func TestList_Add(t *testing.T) {
	l := &List{SourceFile: "VISA - 2024-08.pdf"}

	tx := Transaction{
		EntryDate:    "2024-03-01",
		PurchaseDate: "2024-03-03",
		Merchant:     "Coop Supermarket",
		Amount:       45.90,
		CardHolder:   "Jane Doe",
		SourceFile:   "VISA - 2024-08.pdf",
	}

	l.Add(tx)

	assert.Equal(t, 1, l.Total)
	assert.Equal(t, 1, len(l.Transactions))
	assert.Equal(t, "Coop Supermarket", l.Transactions[0].Merchant)
}

func TestList_NetTotal(t *testing.T) {
	l := &List{}
	l.Add(Transaction{Merchant: "Coop Supermarket", Amount: 45.90})
	l.Add(Transaction{Merchant: "Refund Merchant", Amount: 12.00, IsCredit: true})
	l.Add(Transaction{Merchant: "SBB Mobile", Amount: 3.20})

	assert.InDelta(t, 37.10, l.NetTotal(), 0.001)
}

func TestList_ByCardHolder(t *testing.T) {
	l := &List{}
	l.Add(Transaction{Merchant: "Coop Supermarket", CardHolder: "Jane Doe"})
	l.Add(Transaction{Merchant: "Garage Meier", CardHolder: "John Doe"})
	l.Add(Transaction{Merchant: "Migros", CardHolder: "Jane Doe"})

	jane := l.ByCardHolder("Jane Doe")
	assert.Equal(t, 2, len(jane))
	assert.Equal(t, "Coop Supermarket", jane[0].Merchant)
	assert.Equal(t, "Migros", jane[1].Merchant)

	assert.Empty(t, l.ByCardHolder("Nobody"))
}
