package service

import (
	"context"
	"strings"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"
)

type UserService struct {
	userRepo  repository.UserRepository
	dressRepo repository.DressRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username *string
	Bio      *string
}

func NewUserService(userRepo repository.UserRepository, dressRepo repository.DressRepository) *UserService {
	return &UserService{userRepo: userRepo, dressRepo: dressRepo}
}

// PublicProfile returns the user's public view plus their count of
// available listings.
func (s *UserService) PublicProfile(ctx context.Context, id uint) (*models.PublicProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewNotFoundError("User not found")
	}

	profile := &models.PublicProfile{
		ID:        user.ID,
		Username:  user.Username,
		Buttons:   user.Buttons,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Followers: user.Followers,
		Following: user.Following,
		CreatedAt: user.CreatedAt,
	}
	for _, d := range s.dressRepo.ListBySeller(ctx, id) {
		if d.Available() {
			profile.DressCount++
		}
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.Username != nil && strings.TrimSpace(*in.Username) == "" {
		return nil, models.NewValidationError("Username cannot be empty")
	}
	return s.userRepo.UpdateProfile(ctx, in.UserID, repository.ProfileUpdate{
		Username: in.Username,
		Bio:      in.Bio,
	})
}
