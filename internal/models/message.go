package models

import (
	"time"
)

// Message is a direct message between two users, optionally referencing a
// listing. The read flag flips when the recipient fetches the thread.
type Message struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"senderId"`
	RecipientID uint      `json:"recipientId"`
	Content     string    `json:"content"`
	DressID     *uint     `json:"dressId"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ConversationSummary is the per-counterparty view returned by
// GET /api/messages/conversations: the counterparty, the most recent
// message exchanged with them, and how many of their messages the caller
// has not read yet.
type ConversationSummary struct {
	User        UserSummary `json:"user"`
	LastMessage Message     `json:"lastMessage"`
	UnreadCount int         `json:"unreadCount"`
}
