package service

import (
	"context"
	"testing"

	"dresscircle/internal/models"
	"dresscircle/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, repository.DressRepository) {
	t.Helper()
	favs := repository.NewFavoriteRepository()
	dresses := repository.NewDressRepository()
	users := repository.NewUserRepository()
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "seller",
		Email:    "seller@example.com",
		Password: "hashed",
		Buttons:  100,
	}))
	require.NoError(t, dresses.Create(context.Background(), &models.Dress{
		SellerID:     1,
		Brand:        "Ganni",
		Title:        "Summer Wrap",
		ButtonsPrice: 55,
		Status:       models.DressStatusAvailable,
	}))
	return NewFavoriteService(favs, dresses, users), dresses
}

func TestFavoriteAddRemoveAdjustsLikes(t *testing.T) {
	svc, dresses := newFavoriteFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, 1))
	dress, _ := dresses.GetByID(ctx, 1)
	assert.Equal(t, 1, dress.Likes)

	// A duplicate favorite does not double-count
	require.Error(t, svc.Add(ctx, 1, 1))
	dress, _ = dresses.GetByID(ctx, 1)
	assert.Equal(t, 1, dress.Likes)

	require.NoError(t, svc.Remove(ctx, 1, 1))
	dress, _ = dresses.GetByID(ctx, 1)
	assert.Equal(t, 0, dress.Likes)

	require.Error(t, svc.Remove(ctx, 1, 1))
}

func TestFavoriteRemoveAfterDressDeleted(t *testing.T) {
	svc, dresses := newFavoriteFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, 1))
	require.NoError(t, dresses.Delete(ctx, 1))

	// Only the pair has to exist for removal; the dress may be gone
	require.NoError(t, svc.Remove(ctx, 1, 1))
	assert.Empty(t, svc.List(ctx, 1))

	// The pair is gone now, so a second removal fails
	require.Error(t, svc.Remove(ctx, 1, 1))
}

func TestFavoriteAddUnknownDress(t *testing.T) {
	svc, _ := newFavoriteFixture(t)

	err := svc.Add(context.Background(), 1, 99)
	require.Error(t, err)
}

func TestFavoriteListSkipsDeletedDresses(t *testing.T) {
	svc, dresses := newFavoriteFixture(t)
	ctx := context.Background()
	require.NoError(t, dresses.Create(ctx, &models.Dress{
		SellerID:     1,
		Brand:        "Zimmermann",
		Title:        "Floral Maxi",
		ButtonsPrice: 120,
		Status:       models.DressStatusAvailable,
	}))

	require.NoError(t, svc.Add(ctx, 1, 1))
	require.NoError(t, svc.Add(ctx, 1, 2))
	require.NoError(t, dresses.Delete(ctx, 1))

	list := svc.List(ctx, 1)
	require.Len(t, list, 1)
	assert.Equal(t, "Floral Maxi", list[0].Title)
	assert.Equal(t, "seller", list[0].Seller.Username)
}
