package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"dresscircle/internal/models"
)

// MessageRepository defines the interface for direct messages between
// users.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// ListByUser returns every message the user sent or received, in
	// insertion order.
	ListByUser(ctx context.Context, userID uint) []models.Message
	// Thread returns the conversation between two users oldest first.
	// When markRead is set, messages addressed to userID are flagged
	// read in the same critical section, so a concurrent unread count
	// sees either all of them or none.
	Thread(ctx context.Context, userID, otherID uint, markRead bool) []models.Message
}

type messageRepository struct {
	mu     sync.RWMutex
	all    []*models.Message
	nextID uint
}

// NewMessageRepository creates an empty in-memory message repository.
func NewMessageRepository() MessageRepository {
	return &messageRepository{nextID: 1}
}

func (r *messageRepository) Create(_ context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = r.nextID
	r.nextID++
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	stored := *msg
	r.all = append(r.all, &stored)
	return nil
}

func (r *messageRepository) ListByUser(_ context.Context, userID uint) []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Message
	for _, m := range r.all {
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, *m)
		}
	}
	return out
}

func (r *messageRepository) Thread(_ context.Context, userID, otherID uint, markRead bool) []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Message, 0)
	for _, m := range r.all {
		between := (m.SenderID == userID && m.RecipientID == otherID) ||
			(m.SenderID == otherID && m.RecipientID == userID)
		if !between {
			continue
		}
		if markRead && m.RecipientID == userID {
			m.Read = true
		}
		out = append(out, *m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
