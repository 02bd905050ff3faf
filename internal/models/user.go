// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// StartingButtons is the balance granted to every newly registered user.
const StartingButtons = 100

// User represents a marketplace account with its button balance.
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Buttons   int       `json:"buttons"`
	Avatar    *string   `json:"avatar"`
	Bio       string    `json:"bio"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the minimal identity attached to transaction parties.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserSummary is the reduced public view joined onto listings and
// conversations. Seller data can change, so it is always derived from the
// current user record at read time, never stored.
type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

// SellerProfile extends UserSummary with the follower count shown on the
// listing detail page.
type SellerProfile struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Avatar    *string `json:"avatar"`
	Followers int     `json:"followers"`
}

// PublicProfile is the response shape of GET /api/users/:id.
type PublicProfile struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Buttons    int       `json:"buttons"`
	Avatar     *string   `json:"avatar"`
	Bio        string    `json:"bio"`
	Followers  int       `json:"followers"`
	Following  int       `json:"following"`
	CreatedAt  time.Time `json:"createdAt"`
	DressCount int       `json:"dressCount"`
}

// Summary returns the reduced public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

// Profile returns the extended public view of the user.
func (u *User) Profile() SellerProfile {
	return SellerProfile{ID: u.ID, Username: u.Username, Avatar: u.Avatar, Followers: u.Followers}
}

// UserStats aggregates a user's marketplace activity for GET /api/stats.
type UserStats struct {
	Buttons        int `json:"buttons"`
	ActiveListings int `json:"activeListings"`
	SoldItems      int `json:"soldItems"`
	TotalSales     int `json:"totalSales"`
	TotalPurchases int `json:"totalPurchases"`
	TotalEarned    int `json:"totalEarned"`
	TotalSpent     int `json:"totalSpent"`
	TotalViews     int `json:"totalViews"`
	TotalLikes     int `json:"totalLikes"`
}
