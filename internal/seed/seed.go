package seed

import (
	"context"
	"log"
	"time"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Demo seeds the stores with the showcase account and its catalog so a
// fresh instance has something to browse. Not run in production.
func Demo(ctx context.Context, users repository.UserRepository, dresses repository.DressRepository) error {
	if users.Count(ctx) > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sarah := &models.User{
		Username:  "fashionista_sarah",
		Email:     "sarah@example.com",
		Password:  string(hashedPassword),
		Buttons:   250,
		Bio:       "Fashion lover & sustainable style advocate",
		Followers: 145,
		Following: 98,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := users.Create(ctx, sarah); err != nil {
		return err
	}

	catalog := []models.Dress{
		{
			SellerID:      sarah.ID,
			Brand:         "Reformation",
			Title:         "Silk Midi Dress",
			Description:   "Beautiful silk midi dress in perfect condition. Worn only twice.",
			Category:      "Cocktail",
			Size:          "M",
			Condition:     "Like New",
			ButtonsPrice:  85,
			OriginalPrice: 298,
			Images:        []string{"https://images.pexels.com/photos/1926769/pexels-photo-1926769.jpeg"},
			Status:        models.DressStatusAvailable,
			Views:         234,
			Likes:         42,
			Tags:          []string{"silk", "midi", "cocktail"},
			CreatedAt:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			SellerID:      sarah.ID,
			Brand:         "Zimmermann",
			Title:         "Floral Maxi Dress",
			Description:   "Stunning floral maxi dress, perfect for summer events.",
			Category:      "Evening",
			Size:          "S",
			Condition:     "Excellent",
			ButtonsPrice:  120,
			OriginalPrice: 550,
			Images:        []string{"https://images.pexels.com/photos/1055691/pexels-photo-1055691.jpeg"},
			Status:        models.DressStatusAvailable,
			Views:         189,
			Likes:         56,
			Tags:          []string{"floral", "maxi", "evening"},
			CreatedAt:     time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			SellerID:      sarah.ID,
			Brand:         "Self Portrait",
			Title:         "Lace Mini Dress",
			Description:   "Intricate lace details, perfect for weddings.",
			Category:      "Cocktail",
			Size:          "S",
			Condition:     "Good",
			ButtonsPrice:  95,
			OriginalPrice: 350,
			Images:        []string{"https://images.pexels.com/photos/291759/pexels-photo-291759.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Status:        models.DressStatusAvailable,
			Views:         120,
			Likes:         30,
			Tags:          []string{"lace", "mini"},
			CreatedAt:     time.Now(),
		},
		{
			SellerID:      sarah.ID,
			Brand:         "Ganni",
			Title:         "Summer Wrap Dress",
			Description:   "Lightweight and flowy, great for casual days.",
			Category:      "Casual",
			Size:          "L",
			Condition:     "Like New",
			ButtonsPrice:  55,
			OriginalPrice: 180,
			Images:        []string{"https://images.pexels.com/photos/985635/pexels-photo-985635.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Status:        models.DressStatusAvailable,
			Views:         85,
			Likes:         15,
			Tags:          []string{"summer", "wrap"},
			CreatedAt:     time.Now(),
		},
	}
	for i := range catalog {
		if err := dresses.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded demo catalog: %d users, %d dresses", users.Count(ctx), dresses.Count(ctx))
	return nil
}
