// Package seed provides helpers to create demo and test data for the
// in-memory stores. These helpers are intended for development and testing
// only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

var (
	brands     = []string{"Reformation", "Zimmermann", "Self Portrait", "Ganni", "Rixo", "Realisation Par", "Faithfull"}
	categories = []string{"Cocktail", "Evening", "Casual", "Formal", "Vintage"}
	sizes      = []string{"XS", "S", "M", "L", "XL"}
	conditions = []string{"Like New", "Excellent", "Good", "Fair"}
)

// Factory builds domain entities and persists them to the repositories.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	users   repository.UserRepository
	dresses repository.DressRepository
	rng     *rand.Rand
}

// NewFactory creates a new Factory bound to the provided repositories.
func NewFactory(users repository.UserRepository, dresses repository.DressRepository) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		users:   users,
		dresses: dresses,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	avatar := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID())
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Buttons:  models.StartingButtons,
		Avatar:   &avatar,
		Bio:      gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateDress constructs and persists a sample listing for the seller.
// Optional override functions may modify the generated dress before saving.
func (f *Factory) CreateDress(ctx context.Context, seller *models.User, overrides ...func(*models.Dress)) (*models.Dress, error) {
	price := gofakeit.Number(20, 150)
	daysBack := f.rng.Intn(60)

	dress := &models.Dress{
		SellerID:      seller.ID,
		Brand:         brands[f.rng.Intn(len(brands))],
		Title:         gofakeit.Sentence(3),
		Description:   gofakeit.Paragraph(1, 2, 8, " "),
		Category:      categories[f.rng.Intn(len(categories))],
		Size:          sizes[f.rng.Intn(len(sizes))],
		Condition:     conditions[f.rng.Intn(len(conditions))],
		ButtonsPrice:  price,
		OriginalPrice: price * gofakeit.Number(3, 6),
		Images:        []string{fmt.Sprintf("https://picsum.photos/seed/%s/600/800", gofakeit.UUID())},
		Status:        models.DressStatusAvailable,
		Views:         gofakeit.Number(0, 300),
		Likes:         gofakeit.Number(0, 60),
		Tags:          []string{gofakeit.Word(), gofakeit.Word()},
		CreatedAt:     time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour),
	}

	for _, override := range overrides {
		override(dress)
	}

	if err := f.dresses.Create(ctx, dress); err != nil {
		return nil, err
	}
	return dress, nil
}
