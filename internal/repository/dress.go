package repository

import (
	"context"
	"sync"
	"time"

	"dresscircle/internal/models"
)

// DressUpdate holds the optional fields of a partial listing update. Nil
// fields are left unchanged.
type DressUpdate struct {
	Brand         *string
	Title         *string
	Description   *string
	Category      *string
	Size          *string
	Condition     *string
	ButtonsPrice  *int
	OriginalPrice *int
	Status        *string
}

// DressRepository defines the interface for listing data operations.
// List and ListBySeller return listings in insertion order, which is the
// discovery order browse results fall back to when no sort key is given.
type DressRepository interface {
	Create(ctx context.Context, dress *models.Dress) error
	GetByID(ctx context.Context, id uint) (*models.Dress, error)
	// AddView increments the view counter and returns the updated
	// listing. Every read counts; views are not deduplicated per viewer.
	AddView(ctx context.Context, id uint) (*models.Dress, error)
	List(ctx context.Context) []models.Dress
	ListBySeller(ctx context.Context, sellerID uint) []models.Dress
	Update(ctx context.Context, id uint, in DressUpdate) (*models.Dress, error)
	Delete(ctx context.Context, id uint) error
	// MarkSold flips the status from available to sold. It fails with an
	// invalid-state error if the listing is not available, so two
	// purchases of the same dress cannot both succeed.
	MarkSold(ctx context.Context, id uint) error
	// AdjustLikes moves the like counter by delta, floored at zero.
	AdjustLikes(ctx context.Context, id uint, delta int) error
	Count(ctx context.Context) int
}

// dressRepository implements DressRepository backed by process memory.
type dressRepository struct {
	mu     sync.RWMutex
	byID   map[uint]*models.Dress
	order  []uint
	nextID uint
}

// NewDressRepository creates an empty in-memory dress repository.
func NewDressRepository() DressRepository {
	return &dressRepository{
		byID:   make(map[uint]*models.Dress),
		nextID: 1,
	}
}

func (r *dressRepository) Create(_ context.Context, dress *models.Dress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dress.ID = r.nextID
	r.nextID++
	if dress.CreatedAt.IsZero() {
		dress.CreatedAt = time.Now()
	}

	stored := *dress
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *dressRepository) GetByID(_ context.Context, id uint) (*models.Dress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dress, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("Dress not found")
	}
	out := *dress
	return &out, nil
}

func (r *dressRepository) AddView(_ context.Context, id uint) (*models.Dress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dress, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("Dress not found")
	}
	dress.Views++
	out := *dress
	return &out, nil
}

func (r *dressRepository) List(_ context.Context) []models.Dress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Dress, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

func (r *dressRepository) ListBySeller(_ context.Context, sellerID uint) []models.Dress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Dress, 0)
	for _, id := range r.order {
		if d := r.byID[id]; d.SellerID == sellerID {
			out = append(out, *d)
		}
	}
	return out
}

func (r *dressRepository) Update(_ context.Context, id uint, in DressUpdate) (*models.Dress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dress, ok := r.byID[id]
	if !ok {
		return nil, models.NewNotFoundError("Dress not found")
	}

	if in.Brand != nil {
		dress.Brand = *in.Brand
	}
	if in.Title != nil {
		dress.Title = *in.Title
	}
	if in.Description != nil {
		dress.Description = *in.Description
	}
	if in.Category != nil {
		dress.Category = *in.Category
	}
	if in.Size != nil {
		dress.Size = *in.Size
	}
	if in.Condition != nil {
		dress.Condition = *in.Condition
	}
	if in.ButtonsPrice != nil {
		dress.ButtonsPrice = *in.ButtonsPrice
	}
	if in.OriginalPrice != nil {
		dress.OriginalPrice = *in.OriginalPrice
	}
	if in.Status != nil {
		dress.Status = *in.Status
	}

	out := *dress
	return &out, nil
}

func (r *dressRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return models.NewNotFoundError("Dress not found")
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *dressRepository) MarkSold(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dress, ok := r.byID[id]
	if !ok {
		return models.NewNotFoundError("Dress not found")
	}
	if dress.Status != models.DressStatusAvailable {
		return models.NewInvalidStateError("Dress not available")
	}
	dress.Status = models.DressStatusSold
	return nil
}

func (r *dressRepository) AdjustLikes(_ context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dress, ok := r.byID[id]
	if !ok {
		return models.NewNotFoundError("Dress not found")
	}
	dress.Likes += delta
	if dress.Likes < 0 {
		dress.Likes = 0
	}
	return nil
}

func (r *dressRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
