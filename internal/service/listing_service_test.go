package service

import (
	"context"
	"testing"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture(t *testing.T) (*ListingService, repository.DressRepository, repository.UserRepository) {
	t.Helper()
	dresses := repository.NewDressRepository()
	users := repository.NewUserRepository()
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "seller",
		Email:    "seller@example.com",
		Password: "hashed",
		Buttons:  100,
	}))
	return NewListingService(dresses, users), dresses, users
}

func listTitles(items []models.DressWithSeller) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func createListing(t *testing.T, svc *ListingService, in CreateListingInput) *models.Dress {
	t.Helper()
	if in.SellerID == 0 {
		in.SellerID = 1
	}
	dress, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return dress
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _, _ := newListingFixture(t)

	dress := createListing(t, svc, CreateListingInput{
		Brand:        "Ganni",
		Title:        "Summer Wrap",
		ButtonsPrice: 55,
	})

	assert.Equal(t, models.DefaultDressDescription, dress.Description)
	assert.Equal(t, models.DefaultDressCategory, dress.Category)
	assert.Equal(t, models.DefaultDressSize, dress.Size)
	assert.Equal(t, models.DefaultDressCondition, dress.Condition)
	assert.NotNil(t, dress.Images)
	assert.NotNil(t, dress.Tags)
	assert.Equal(t, models.DressStatusAvailable, dress.Status)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newListingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateListingInput{SellerID: 1, Brand: "Ganni", Title: "free", ButtonsPrice: 0})
	require.Error(t, err)

	_, err = svc.Create(ctx, CreateListingInput{SellerID: 1, Brand: "Ganni", Title: "negative", ButtonsPrice: -5})
	require.Error(t, err)
}

func TestCreatePriceOnly(t *testing.T) {
	svc, _, _ := newListingFixture(t)

	// Brand and title are descriptive; only the price is required
	dress, err := svc.Create(context.Background(), CreateListingInput{SellerID: 1, ButtonsPrice: 50})
	require.NoError(t, err)
	assert.Empty(t, dress.Brand)
	assert.Empty(t, dress.Title)
	assert.Equal(t, models.DefaultDressDescription, dress.Description)
}

func TestBrowseFilters(t *testing.T) {
	svc, _, _ := newListingFixture(t)
	ctx := context.Background()

	createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "Wrap", Category: "casual", Size: "S", ButtonsPrice: 55})
	createListing(t, svc, CreateListingInput{Brand: "Zimmermann", Title: "Maxi", Category: "formal", Size: "M", ButtonsPrice: 120})
	createListing(t, svc, CreateListingInput{Brand: "Reformation", Title: "Midi", Category: "casual", Size: "M", ButtonsPrice: 85})

	byCategory, err := svc.Browse(ctx, BrowseInput{Category: "Casual"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wrap", "Midi"}, listTitles(byCategory))

	min, max := 60, 100
	byPrice, err := svc.Browse(ctx, BrowseInput{MinButtons: &min, MaxButtons: &max})
	require.NoError(t, err)
	assert.Equal(t, []string{"Midi"}, listTitles(byPrice))

	bySearch, err := svc.Browse(ctx, BrowseInput{Search: "zimmer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Maxi"}, listTitles(bySearch))
}

func TestBrowseSortsByPrice(t *testing.T) {
	svc, _, _ := newListingFixture(t)
	ctx := context.Background()

	createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "mid", ButtonsPrice: 85})
	createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "cheap", ButtonsPrice: 55})
	createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "dear", ButtonsPrice: 120})

	low, err := svc.Browse(ctx, BrowseInput{Sort: "price-low"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "mid", "dear"}, listTitles(low))

	high, err := svc.Browse(ctx, BrowseInput{Sort: "price-high"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dear", "mid", "cheap"}, listTitles(high))
}

func TestBrowseJoinsSeller(t *testing.T) {
	svc, _, _ := newListingFixture(t)

	createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "Wrap", ButtonsPrice: 55})

	items, err := svc.Browse(context.Background(), BrowseInput{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "seller", items[0].Seller.Username)
}

func TestDetailCountsViews(t *testing.T) {
	svc, _, _ := newListingFixture(t)
	ctx := context.Background()
	dress := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "Wrap", ButtonsPrice: 55})

	detail, err := svc.Detail(ctx, dress.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Views)
	assert.Equal(t, "seller", detail.Seller.Username)

	detail, err = svc.Detail(ctx, dress.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Views)
}

func TestTrendingRanksByScore(t *testing.T) {
	svc, dresses, _ := newListingFixture(t)
	ctx := context.Background()

	quiet := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "quiet", ButtonsPrice: 55})
	loved := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "loved", ButtonsPrice: 55})
	viewed := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "viewed", ButtonsPrice: 55})

	require.NoError(t, dresses.AdjustLikes(ctx, loved.ID, 10))
	for i := 0; i < 30; i++ {
		_, err := dresses.AddView(ctx, viewed.ID)
		require.NoError(t, err)
	}
	require.NoError(t, dresses.AdjustLikes(ctx, quiet.ID, 1))

	feed := svc.Trending(ctx)
	assert.Equal(t, []string{"loved", "viewed", "quiet"}, listTitles(feed))
}

func TestTrendingExcludesSoldAndCaps(t *testing.T) {
	svc, dresses, _ := newListingFixture(t)
	ctx := context.Background()

	for i := 0; i < feedSize+3; i++ {
		createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "bulk", ButtonsPrice: 55})
	}
	sold := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "gone", ButtonsPrice: 55})
	require.NoError(t, dresses.AdjustLikes(ctx, sold.ID, 100))
	require.NoError(t, dresses.MarkSold(ctx, sold.ID))

	feed := svc.Trending(ctx)
	assert.Len(t, feed, feedSize)
	assert.NotContains(t, listTitles(feed), "gone")
}

func TestUpdateOwnershipAndValidation(t *testing.T) {
	svc, _, users := newListingFixture(t)
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &models.User{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "hashed",
		Buttons:  100,
	}))
	dress := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "Wrap", ButtonsPrice: 55})

	price := 60
	_, err := svc.Update(ctx, UpdateListingInput{UserID: 2, DressID: dress.ID, ButtonsPrice: &price})
	require.Error(t, err)

	bad := "pending"
	_, err = svc.Update(ctx, UpdateListingInput{UserID: 1, DressID: dress.ID, Status: &bad})
	require.Error(t, err)

	updated, err := svc.Update(ctx, UpdateListingInput{UserID: 1, DressID: dress.ID, ButtonsPrice: &price})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.ButtonsPrice)
}

func TestDeleteOwnershipEnforced(t *testing.T) {
	svc, dresses, users := newListingFixture(t)
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &models.User{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "hashed",
		Buttons:  100,
	}))
	dress := createListing(t, svc, CreateListingInput{Brand: "Ganni", Title: "Wrap", ButtonsPrice: 55})

	require.Error(t, svc.Delete(ctx, 2, dress.ID))
	require.NoError(t, svc.Delete(ctx, 1, dress.ID))
	assert.Equal(t, 0, dresses.Count(ctx))
}
