package models

import (
	"time"
)

// TransactionStatusCompleted is the only status a recorded transaction can
// have; the ledger records completed purchases only.
const TransactionStatusCompleted = "completed"

// Transaction is an immutable record of a completed purchase. It is the
// audit trail: transactions are never updated or deleted.
type Transaction struct {
	ID            uint      `json:"id"`
	DressID       uint      `json:"dressId"`
	BuyerID       uint      `json:"buyerId"`
	SellerID      uint      `json:"sellerId"`
	ButtonsAmount int       `json:"buttonsAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Transaction history entry types.
const (
	TransactionTypePurchase = "purchase"
	TransactionTypeSale     = "sale"
)

// TransactionDetail is a ledger entry joined with its dress and parties for
// GET /api/transactions/history. Dress is nil when the listing has since
// been deleted.
type TransactionDetail struct {
	Transaction
	Dress  *DressSummary `json:"dress"`
	Buyer  UserRef       `json:"buyer"`
	Seller UserRef       `json:"seller"`
	Type   string        `json:"type"`
}
