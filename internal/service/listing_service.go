package service

import (
	"context"
	"sort"
	"strings"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"
)

// feedSize caps the trending and new-arrival feeds.
const feedSize = 12

type ListingService struct {
	dressRepo repository.DressRepository
	userRepo  repository.UserRepository
}

// BrowseInput carries the catalog query parameters. Zero values mean the
// filter is not applied.
type BrowseInput struct {
	Category   string
	Size       string
	Condition  string
	Search     string
	MinButtons *int
	MaxButtons *int
	Sort       string
}

type CreateListingInput struct {
	SellerID      uint
	Brand         string
	Title         string
	Description   string
	Category      string
	Size          string
	Condition     string
	ButtonsPrice  int
	OriginalPrice int
	Images        []string
	Tags          []string
}

type UpdateListingInput struct {
	UserID        uint
	DressID       uint
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

func NewListingService(dressRepo repository.DressRepository, userRepo repository.UserRepository) *ListingService {
	return &ListingService{dressRepo: dressRepo, userRepo: userRepo}
}

// Browse returns available listings matching the filters, each joined
// with a seller summary. Sold listings never appear here.
func (s *ListingService) Browse(ctx context.Context, in BrowseInput) ([]models.DressWithSeller, error) {
	var matched []models.Dress
	for _, d := range s.dressRepo.List(ctx) {
		if !d.Available() {
			continue
		}
		if in.Category != "" && !strings.EqualFold(d.Category, in.Category) {
			continue
		}
		if in.Size != "" && !strings.EqualFold(d.Size, in.Size) {
			continue
		}
		if in.Condition != "" && !strings.EqualFold(d.Condition, in.Condition) {
			continue
		}
		if in.MinButtons != nil && d.ButtonsPrice < *in.MinButtons {
			continue
		}
		if in.MaxButtons != nil && d.ButtonsPrice > *in.MaxButtons {
			continue
		}
		if in.Search != "" && !matchesSearch(d, in.Search) {
			continue
		}
		matched = append(matched, d)
	}

	sortListings(matched, in.Sort)
	return s.withSellers(ctx, matched), nil
}

func matchesSearch(d models.Dress, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.Title), q) ||
		strings.Contains(strings.ToLower(d.Brand), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}

func sortListings(dresses []models.Dress, key string) {
	switch key {
	case "price-low":
		sort.SliceStable(dresses, func(i, j int) bool {
			return dresses[i].ButtonsPrice < dresses[j].ButtonsPrice
		})
	case "price-high":
		sort.SliceStable(dresses, func(i, j int) bool {
			return dresses[i].ButtonsPrice > dresses[j].ButtonsPrice
		})
	case "newest":
		sort.SliceStable(dresses, func(i, j int) bool {
			return dresses[i].CreatedAt.After(dresses[j].CreatedAt)
		})
	case "popular":
		sort.SliceStable(dresses, func(i, j int) bool {
			return dresses[i].Likes > dresses[j].Likes
		})
	}
}

func (s *ListingService) withSellers(ctx context.Context, dresses []models.Dress) []models.DressWithSeller {
	out := make([]models.DressWithSeller, 0, len(dresses))
	for _, d := range dresses {
		item := models.DressWithSeller{Dress: d}
		if seller, err := s.userRepo.GetByID(ctx, d.SellerID); err == nil {
			item.Seller = seller.Summary()
		}
		out = append(out, item)
	}
	return out
}

// Detail returns a single listing with its seller profile. Each call
// counts a view.
func (s *ListingService) Detail(ctx context.Context, id uint) (*models.DressDetail, error) {
	dress, err := s.dressRepo.AddView(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &models.DressDetail{Dress: *dress}
	if seller, err := s.userRepo.GetByID(ctx, dress.SellerID); err == nil {
		detail.Seller = seller.Profile()
	}
	return detail, nil
}

func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*models.Dress, error) {
	if in.ButtonsPrice <= 0 {
		return nil, models.NewValidationError("Buttons price must be positive")
	}

	dress := &models.Dress{
		SellerID:      in.SellerID,
		Brand:         in.Brand,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Size:          in.Size,
		Condition:     in.Condition,
		ButtonsPrice:  in.ButtonsPrice,
		OriginalPrice: in.OriginalPrice,
		Images:        in.Images,
		Tags:          in.Tags,
		Status:        models.DressStatusAvailable,
	}
	if dress.Description == "" {
		dress.Description = models.DefaultDressDescription
	}
	if dress.Category == "" {
		dress.Category = models.DefaultDressCategory
	}
	if dress.Size == "" {
		dress.Size = models.DefaultDressSize
	}
	if dress.Condition == "" {
		dress.Condition = models.DefaultDressCondition
	}
	if dress.Images == nil {
		dress.Images = []string{}
	}
	if dress.Tags == nil {
		dress.Tags = []string{}
	}

	if err := s.dressRepo.Create(ctx, dress); err != nil {
		return nil, err
	}
	return dress, nil
}

func (s *ListingService) Update(ctx context.Context, in UpdateListingInput) (*models.Dress, error) {
	dress, err := s.dressRepo.GetByID(ctx, in.DressID)
	if err != nil {
		return nil, err
	}
	if dress.SellerID != in.UserID {
		return nil, models.NewForbiddenError("Can only edit your own listings")
	}
	if in.ButtonsPrice != nil && *in.ButtonsPrice <= 0 {
		return nil, models.NewValidationError("Buttons price must be positive")
	}
	if in.Status != nil && *in.Status != models.DressStatusAvailable && *in.Status != models.DressStatusSold {
		return nil, models.NewValidationError("Invalid status")
	}

	return s.dressRepo.Update(ctx, in.DressID, repository.DressUpdate{
		Brand:         in.Brand,
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Size:          in.Size,
		Condition:     in.Condition,
		ButtonsPrice:  in.ButtonsPrice,
		OriginalPrice: in.OriginalPrice,
		Status:        in.Status,
	})
}

func (s *ListingService) Delete(ctx context.Context, userID, dressID uint) error {
	dress, err := s.dressRepo.GetByID(ctx, dressID)
	if err != nil {
		return err
	}
	if dress.SellerID != userID {
		return models.NewForbiddenError("Can only delete your own listings")
	}
	return s.dressRepo.Delete(ctx, dressID)
}

// OwnListings returns every listing of the seller, sold ones included.
func (s *ListingService) OwnListings(ctx context.Context, sellerID uint) []models.Dress {
	return s.dressRepo.ListBySeller(ctx, sellerID)
}

// Trending returns the available listings with the highest engagement
// score, most engaged first.
func (s *ListingService) Trending(ctx context.Context) []models.DressWithSeller {
	var available []models.Dress
	for _, d := range s.dressRepo.List(ctx) {
		if d.Available() {
			available = append(available, d)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].TrendingScore() > available[j].TrendingScore()
	})
	if len(available) > feedSize {
		available = available[:feedSize]
	}
	return s.withSellers(ctx, available)
}

// NewArrivals returns the most recently listed available dresses,
// newest first.
func (s *ListingService) NewArrivals(ctx context.Context) []models.DressWithSeller {
	var available []models.Dress
	for _, d := range s.dressRepo.List(ctx) {
		if d.Available() {
			available = append(available, d)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].CreatedAt.After(available[j].CreatedAt)
	})
	if len(available) > feedSize {
		available = available[:feedSize]
	}
	return s.withSellers(ctx, available)
}
