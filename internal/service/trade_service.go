package service

import (
	"context"
	"sync"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"
)

// TradeService executes purchases and reports on the trade ledger. A
// single mutex serializes the purchase sequence so the status flip and
// the button transfer act as one unit.
type TradeService struct {
	mu        sync.Mutex
	userRepo  repository.UserRepository
	dressRepo repository.DressRepository
	txRepo    repository.TransactionRepository
}

func NewTradeService(
	userRepo repository.UserRepository,
	dressRepo repository.DressRepository,
	txRepo repository.TransactionRepository,
) *TradeService {
	return &TradeService{
		userRepo:  userRepo,
		dressRepo: dressRepo,
		txRepo:    txRepo,
	}
}

// Purchase buys the dress for the authenticated user. On success it
// returns the ledger record and the buyer's new balance. Checks run in
// a fixed order: listing exists, listing available, not self-purchase,
// sufficient balance.
func (s *TradeService) Purchase(ctx context.Context, buyerID, dressID uint) (*models.Transaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dress, err := s.dressRepo.GetByID(ctx, dressID)
	if err != nil {
		return nil, 0, err
	}
	if !dress.Available() {
		return nil, 0, models.NewInvalidStateError("Dress not available")
	}
	if dress.SellerID == buyerID {
		return nil, 0, models.NewValidationError("Cannot buy your own dress")
	}

	// The atomic status flip commits the sale. It runs before the
	// transfer so a listing deleted or re-marked concurrently fails the
	// purchase here, with no money moved yet.
	if err := s.dressRepo.MarkSold(ctx, dressID); err != nil {
		return nil, 0, err
	}

	newBalance, err := s.userRepo.Transfer(ctx, buyerID, dress.SellerID, dress.ButtonsPrice)
	if err != nil {
		// Unpaid, so the listing goes back on the market.
		status := models.DressStatusAvailable
		_, _ = s.dressRepo.Update(ctx, dressID, repository.DressUpdate{Status: &status})
		return nil, 0, err
	}

	tx := &models.Transaction{
		DressID:       dressID,
		BuyerID:       buyerID,
		SellerID:      dress.SellerID,
		ButtonsAmount: dress.ButtonsPrice,
		Status:        models.TransactionStatusCompleted,
	}
	if err := s.txRepo.Append(ctx, tx); err != nil {
		return nil, 0, err
	}
	return tx, newBalance, nil
}

// History returns the user's transactions enriched with dress and
// counterparty summaries. A listing deleted after the sale leaves the
// dress field null rather than dropping the record.
func (s *TradeService) History(ctx context.Context, userID uint) []models.TransactionDetail {
	txs := s.txRepo.ListByUser(ctx, userID)
	out := make([]models.TransactionDetail, 0, len(txs))
	for _, tx := range txs {
		detail := models.TransactionDetail{Transaction: tx}
		if dress, err := s.dressRepo.GetByID(ctx, tx.DressID); err == nil {
			summary := dress.Summary()
			detail.Dress = &summary
		}
		if buyer, err := s.userRepo.GetByID(ctx, tx.BuyerID); err == nil {
			detail.Buyer = models.UserRef{ID: buyer.ID, Username: buyer.Username}
		}
		if seller, err := s.userRepo.GetByID(ctx, tx.SellerID); err == nil {
			detail.Seller = models.UserRef{ID: seller.ID, Username: seller.Username}
		}
		if tx.BuyerID == userID {
			detail.Type = models.TransactionTypePurchase
		} else {
			detail.Type = models.TransactionTypeSale
		}
		out = append(out, detail)
	}
	return out
}

// Stats aggregates the user's marketplace activity.
func (s *TradeService) Stats(ctx context.Context, userID uint) (*models.UserStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{Buttons: user.Buttons}
	for _, d := range s.dressRepo.ListBySeller(ctx, userID) {
		if d.Available() {
			stats.ActiveListings++
		} else {
			stats.SoldItems++
		}
		stats.TotalViews += d.Views
		stats.TotalLikes += d.Likes
	}
	for _, tx := range s.txRepo.ListByUser(ctx, userID) {
		if tx.SellerID == userID {
			stats.TotalSales++
			stats.TotalEarned += tx.ButtonsAmount
		}
		if tx.BuyerID == userID {
			stats.TotalPurchases++
			stats.TotalSpent += tx.ButtonsAmount
		}
	}
	return stats, nil
}
