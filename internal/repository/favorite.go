package repository

import (
	"context"
	"sync"
	"time"

	"dresscircle/internal/models"
)

// FavoriteRepository defines the interface for wishlist entries. The
// (user, dress) pair is unique; Create and Delete enforce that under a
// single lock so concurrent toggles cannot double-count.
type FavoriteRepository interface {
	Create(ctx context.Context, userID, dressID uint) error
	Delete(ctx context.Context, userID, dressID uint) error
	Exists(ctx context.Context, userID, dressID uint) bool
	// ListByUser returns the user's favorites oldest first.
	ListByUser(ctx context.Context, userID uint) []models.Favorite
	CountForDress(ctx context.Context, dressID uint) int
}

type favKey struct {
	userID  uint
	dressID uint
}

type favoriteRepository struct {
	mu    sync.RWMutex
	byKey map[favKey]models.Favorite
	order []favKey
}

// NewFavoriteRepository creates an empty in-memory favorite repository.
func NewFavoriteRepository() FavoriteRepository {
	return &favoriteRepository{byKey: make(map[favKey]models.Favorite)}
}

func (r *favoriteRepository) Create(_ context.Context, userID, dressID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favKey{userID: userID, dressID: dressID}
	if _, ok := r.byKey[key]; ok {
		return models.NewConflictError("Already in favorites")
	}
	r.byKey[key] = models.Favorite{
		UserID:    userID,
		DressID:   dressID,
		CreatedAt: time.Now(),
	}
	r.order = append(r.order, key)
	return nil
}

func (r *favoriteRepository) Delete(_ context.Context, userID, dressID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favKey{userID: userID, dressID: dressID}
	if _, ok := r.byKey[key]; !ok {
		return models.NewNotFoundError("Not in favorites")
	}
	delete(r.byKey, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *favoriteRepository) Exists(_ context.Context, userID, dressID uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byKey[favKey{userID: userID, dressID: dressID}]
	return ok
}

func (r *favoriteRepository) ListByUser(_ context.Context, userID uint) []models.Favorite {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Favorite
	for _, key := range r.order {
		if key.userID == userID {
			out = append(out, r.byKey[key])
		}
	}
	return out
}

func (r *favoriteRepository) CountForDress(_ context.Context, dressID uint) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, key := range r.order {
		if key.dressID == dressID {
			n++
		}
	}
	return n
}
