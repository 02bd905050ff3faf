package models

import (
	"time"
)

// Favorite records that a user favorited a listing. At most one favorite
// exists per (user, dress) pair; the listing's like counter moves in
// lockstep with favorite creation and removal.
type Favorite struct {
	UserID    uint      `json:"userId"`
	DressID   uint      `json:"dressId"`
	CreatedAt time.Time `json:"createdAt"`
}
