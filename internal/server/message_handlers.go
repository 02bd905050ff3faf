package server

import (
	"dresscircle/internal/models"
	"dresscircle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req struct {
		RecipientID uint   `json:"recipientId"`
		Content     string `json:"content"`
		DressID     *uint  `json:"dressId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Recipient and content required"))
	}

	msg, err := s.messageService.Send(c.Context(), service.SendMessageInput{
		SenderID:    currentUserID(c),
		RecipientID: req.RecipientID,
		Content:     req.Content,
		DressID:     req.DressID,
	})
	if err != nil {
		return models.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent",
		"data":    msg,
	})
}

// GetConversations handles GET /api/messages/conversations
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations := s.messageService.Conversations(c.Context(), currentUserID(c))
	return c.JSON(fiber.Map{"conversations": conversations})
}

// GetThread handles GET /api/messages/:userId. Fetching a thread marks the
// caller's received messages in it as read.
func (s *Server) GetThread(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	thread := s.messageService.Thread(c.Context(), currentUserID(c), otherID)
	return c.JSON(fiber.Map{"messages": thread})
}
