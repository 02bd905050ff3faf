package server

import (
	"dresscircle/internal/cache"
	"dresscircle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PurchaseDress handles POST /api/transactions/purchase
func (s *Server) PurchaseDress(c *fiber.Ctx) error {
	var req struct {
		DressID uint `json:"dressId"`
	}
	if err := c.BodyParser(&req); err != nil || req.DressID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Dress ID required"))
	}

	tx, newBalance, err := s.tradeService.Purchase(c.Context(), currentUserID(c), req.DressID)
	if err != nil {
		return models.Respond(c, err)
	}

	// The listing just flipped to sold, so the discovery feeds are stale.
	cache.InvalidateFeeds(c.Context())

	return c.JSON(fiber.Map{
		"message":          "Purchase successful!",
		"transaction":      tx,
		"newButtonBalance": newBalance,
	})
}

// GetTransactionHistory handles GET /api/transactions/history
func (s *Server) GetTransactionHistory(c *fiber.Ctx) error {
	history := s.tradeService.History(c.Context(), currentUserID(c))
	return c.JSON(fiber.Map{"transactions": history})
}
