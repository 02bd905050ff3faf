package server

import (
	"dresscircle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite handles POST /api/favorites/:dressId
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	dressID, err := s.parseID(c, "dressId")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.Add(c.Context(), currentUserID(c), dressID); err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Added to favorites"})
}

// RemoveFavorite handles DELETE /api/favorites/:dressId
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	dressID, err := s.parseID(c, "dressId")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.Remove(c.Context(), currentUserID(c), dressID); err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}

// GetFavorites handles GET /api/favorites
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	favorites := s.favoriteService.List(c.Context(), currentUserID(c))
	return c.JSON(fiber.Map{"favorites": favorites})
}
