package server

import (
	"dresscircle/internal/models"
	"dresscircle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.PublicProfile(c.Context(), id)
	if err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/users/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Username *string `json:"username"`
		Bio      *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		return models.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user,
	})
}

// GetMyDresses handles GET /api/users/me/dresses and returns the caller's
// listings regardless of status.
func (s *Server) GetMyDresses(c *fiber.Ctx) error {
	dresses := s.listingService.OwnListings(c.Context(), currentUserID(c))
	return c.JSON(fiber.Map{"dresses": dresses})
}

// GetStats handles GET /api/stats
func (s *Server) GetStats(c *fiber.Ctx) error {
	stats, err := s.tradeService.Stats(c.Context(), currentUserID(c))
	if err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(stats)
}
