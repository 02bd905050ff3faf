package service

import (
	"context"
	"errors"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"
)

type FavoriteService struct {
	favRepo   repository.FavoriteRepository
	dressRepo repository.DressRepository
	userRepo  repository.UserRepository
}

func NewFavoriteService(
	favRepo repository.FavoriteRepository,
	dressRepo repository.DressRepository,
	userRepo repository.UserRepository,
) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, dressRepo: dressRepo, userRepo: userRepo}
}

// Add favorites the dress for the user and bumps its like counter.
func (s *FavoriteService) Add(ctx context.Context, userID, dressID uint) error {
	if _, err := s.dressRepo.GetByID(ctx, dressID); err != nil {
		return err
	}
	if err := s.favRepo.Create(ctx, userID, dressID); err != nil {
		return err
	}
	return s.dressRepo.AdjustLikes(ctx, dressID, 1)
}

// Remove drops the favorite and decrements the like counter. The
// counter never goes below zero. Removing a favorite whose dress has
// since been deleted still succeeds; only the pair must exist.
func (s *FavoriteService) Remove(ctx context.Context, userID, dressID uint) error {
	if err := s.favRepo.Delete(ctx, userID, dressID); err != nil {
		return err
	}
	if err := s.dressRepo.AdjustLikes(ctx, dressID, -1); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil
		}
		return err
	}
	return nil
}

// List returns the user's favorited dresses with seller summaries,
// oldest favorite first. Entries whose dress has since been deleted
// are skipped.
func (s *FavoriteService) List(ctx context.Context, userID uint) []models.DressWithSeller {
	favorites := s.favRepo.ListByUser(ctx, userID)
	out := make([]models.DressWithSeller, 0, len(favorites))
	for _, fav := range favorites {
		dress, err := s.dressRepo.GetByID(ctx, fav.DressID)
		if err != nil {
			continue
		}
		item := models.DressWithSeller{Dress: *dress}
		if seller, err := s.userRepo.GetByID(ctx, dress.SellerID); err == nil {
			item.Seller = seller.Summary()
		}
		out = append(out, item)
	}
	return out
}
