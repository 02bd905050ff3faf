package service

import (
	"context"
	"strings"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"
)

type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

type SendMessageInput struct {
	SenderID    uint
	RecipientID uint
	Content     string
	DressID     *uint
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{msgRepo: msgRepo, userRepo: userRepo}
}

func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.RecipientID); err != nil {
		return nil, models.NewNotFoundError("Recipient not found")
	}

	msg := &models.Message{
		SenderID:    in.SenderID,
		RecipientID: in.RecipientID,
		Content:     in.Content,
		DressID:     in.DressID,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Conversations groups the user's messages by counterparty, in order of
// first contact. Each entry carries the most recent message and the count
// of unread messages addressed to the user.
func (s *MessageService) Conversations(ctx context.Context, userID uint) []models.ConversationSummary {
	type bucket struct {
		last   models.Message
		unread int
	}
	byPartner := make(map[uint]*bucket)
	var order []uint

	for _, m := range s.msgRepo.ListByUser(ctx, userID) {
		partnerID := m.SenderID
		if partnerID == userID {
			partnerID = m.RecipientID
		}
		b, ok := byPartner[partnerID]
		if !ok {
			b = &bucket{last: m}
			byPartner[partnerID] = b
			order = append(order, partnerID)
		}
		if !m.CreatedAt.Before(b.last.CreatedAt) {
			b.last = m
		}
		if m.RecipientID == userID && !m.Read {
			b.unread++
		}
	}

	out := make([]models.ConversationSummary, 0, len(order))
	for _, partnerID := range order {
		b := byPartner[partnerID]
		summary := models.ConversationSummary{
			LastMessage: b.last,
			UnreadCount: b.unread,
		}
		if partner, err := s.userRepo.GetByID(ctx, partnerID); err == nil {
			summary.User = partner.Summary()
		}
		out = append(out, summary)
	}
	return out
}

// Thread returns the conversation with the other user oldest first and
// marks the caller's received messages as read. A counterparty the
// caller never exchanged messages with yields an empty thread.
func (s *MessageService) Thread(ctx context.Context, userID, otherID uint) []models.Message {
	return s.msgRepo.Thread(ctx, userID, otherID, true)
}
