package repository

import (
	"context"
	"sync"
	"time"

	"dresscircle/internal/models"
)

// TransactionRepository defines the interface for the append-only trade
// ledger. Records are never updated or removed once written.
type TransactionRepository interface {
	Append(ctx context.Context, tx *models.Transaction) error
	// ListByUser returns every transaction where the user is buyer or
	// seller, oldest first.
	ListByUser(ctx context.Context, userID uint) []models.Transaction
	Count(ctx context.Context) int
}

type transactionRepository struct {
	mu     sync.RWMutex
	all    []models.Transaction
	nextID uint
}

// NewTransactionRepository creates an empty in-memory ledger.
func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{nextID: 1}
}

func (r *transactionRepository) Append(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = r.nextID
	r.nextID++
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.all = append(r.all, *tx)
	return nil
}

func (r *transactionRepository) ListByUser(_ context.Context, userID uint) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Transaction
	for _, tx := range r.all {
		if tx.BuyerID == userID || tx.SellerID == userID {
			out = append(out, tx)
		}
	}
	return out
}

func (r *transactionRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.all)
}
