// Package repository provides in-memory data stores for the application's
// entities. Each repository guards its table with its own mutex and indexes
// records by ID; callers never reach the raw storage. All state lives in
// process memory and is lost on restart.
package repository

import (
	"context"
	"sync"
	"time"

	"dresscircle/internal/models"
)

// ProfileUpdate holds the optional fields of a profile update. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Username *string
	Bio      *string
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*models.User, error)
	// Transfer atomically moves amount buttons from buyer to seller and
	// returns the buyer's new balance. The balance check and the debit
	// happen under one lock, so the total across both accounts is
	// conserved and the buyer can never go negative.
	Transfer(ctx context.Context, buyerID, sellerID uint, amount int) (int, error)
	Count(ctx context.Context) int
}

// userRepository implements UserRepository backed by process memory.
type userRepository struct {
	mu      sync.RWMutex
	byID    map[uint]*models.User
	byEmail map[string]uint
	byName  map[string]uint
	nextID  uint
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() UserRepository {
	return &userRepository{
		byID:    make(map[uint]*models.User),
		byEmail: make(map[string]uint),
		byName:  make(map[string]uint),
		nextID:  1,
	}
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return models.NewConflictError("Email already registered")
	}
	if _, taken := r.byName[user.Username]; taken {
		return models.NewConflictError("Username taken")
	}

	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	r.byName[stored.Username] = stored.ID
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("User not found")
	}
	out := *user
	return &out, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil // not found is not an error here
	}
	out := *r.byID[id]
	return &out, nil
}

func (r *userRepository) UpdateProfile(_ context.Context, id uint, in ProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("User not found")
	}

	if in.Username != nil && *in.Username != user.Username {
		if other, taken := r.byName[*in.Username]; taken && other != id {
			return nil, models.NewConflictError("Username taken")
		}
		delete(r.byName, user.Username)
		user.Username = *in.Username
		r.byName[user.Username] = id
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	out := *user
	return &out, nil
}

func (r *userRepository) Transfer(_ context.Context, buyerID, sellerID uint, amount int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buyer, ok := r.byID[buyerID]
	if !ok {
		return 0, models.NewNotFoundError("User not found")
	}
	seller, ok := r.byID[sellerID]
	if !ok {
		return 0, models.NewNotFoundError("User not found")
	}

	if buyer.Buttons < amount {
		return 0, models.NewInsufficientFundsError(amount, buyer.Buttons)
	}

	buyer.Buttons -= amount
	seller.Buttons += amount
	return buyer.Buttons, nil
}

func (r *userRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
