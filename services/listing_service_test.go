package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
)

func TestCreateListing(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")

	listing := env.createListing(t, host, "150.5")
	assert.NotEqual(t, uuid.Nil, listing.ID)
	assert.Equal(t, host.ID, listing.HostID)
	assert.Equal(t, "150.50", listing.PricePerNight.StringFixed(2))

	got, err := env.listings.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "host@example.com", got.Listing.Host.Email)
	assert.Nil(t, got.AverageRating)
}

func TestCreateListingValidation(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")
	ctx := context.Background()

	newReq := func(price string) dto.ListingRequest {
		p := decimal.RequireFromString(price)
		return dto.ListingRequest{
			HostID:        host.ID.String(),
			Name:          "Cabin",
			Description:   "Quiet",
			Location:      "Nairobi",
			PricePerNight: &p,
		}
	}

	for _, price := range []string{"0", "-10", "10.555", "100000000"} {
		_, err := env.listings.Create(ctx, newReq(price))
		require.Error(t, err, price)
		appErr := errors.GetAppError(err)
		assert.Equal(t, errors.ErrCodeValidation, appErr.Code, price)
		assert.Equal(t, "pricePerNight", appErr.Field, price)
	}

	req := newReq("10")
	req.HostID = uuid.NewString()
	_, err := env.listings.Create(ctx, req)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	assert.Equal(t, "hostId", errors.GetAppError(err).Field)

	req = newReq("10")
	req.Name = ""
	req.PricePerNight = nil
	_, err = env.listings.Create(ctx, req)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)
	assert.Equal(t, []errors.FieldError{
		{Field: "name", Message: "This field is required."},
		{Field: "pricePerNight", Message: "This field is required."},
	}, appErr.FieldErrors())

	assert.Zero(t, env.count(t, &models.Listing{}))
}

func TestListingAverageRating(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")
	listing := env.createListing(t, host, "100.00")
	other := env.createListing(t, host, "100.00")

	for i, rating := range []int{5, 4, 4} {
		user := env.createUser(t, uuid.NewString()+"@example.com")
		_, err := env.review(listing, user, rating)
		require.NoError(t, err, i)
	}

	got, err := env.listings.Get(context.Background(), listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AverageRating)
	assert.Equal(t, 4.33, *got.AverageRating)

	ratings, err := env.listings.AverageRatings(context.Background(), []uuid.UUID{listing.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, 4.33, *ratings[listing.ID])
	assert.Nil(t, ratings[other.ID])
}

func TestListListingsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")
	otherHost := env.createUser(t, "other@example.com")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, env.db.Create(&models.Listing{
			HostID:        host.ID,
			Name:          name,
			Description:   "d",
			Location:      "l",
			PricePerNight: decimal.NewFromInt(10),
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}
	env.createListing(t, otherHost, "20.00")

	listings, total, err := env.listings.List(context.Background(), dto.ListingQuery{HostID: host.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, listings, 3)
	assert.Equal(t, "newest", listings[0].Listing.Name)
	assert.Equal(t, "oldest", listings[2].Listing.Name)
	assert.Equal(t, host.ID, listings[0].Listing.Host.ID)

	_, total, err = env.listings.List(context.Background(), dto.ListingQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	_, _, err = env.listings.List(context.Background(), dto.ListingQuery{HostID: "not-a-uuid"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestPatchAndUpdateListing(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")
	newHost := env.createUser(t, "new@example.com")
	listing := env.createListing(t, host, "100.00")
	ctx := context.Background()

	price := decimal.RequireFromString("75.25")
	patched, err := env.listings.Patch(ctx, listing.ID, dto.PatchListingRequest{
		Location:      strPtr("Lamu"),
		PricePerNight: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lamu", patched.Listing.Location)
	assert.Equal(t, "Beach House", patched.Listing.Name)
	assert.Equal(t, "75.25", patched.Listing.PricePerNight.StringFixed(2))

	newPrice := decimal.RequireFromString("90")
	updated, err := env.listings.Update(ctx, listing.ID, dto.ListingRequest{
		HostID:        newHost.ID.String(),
		Name:          "Villa",
		Description:   "Pool",
		Location:      "Diani",
		PricePerNight: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, newHost.ID, updated.Listing.HostID)
	assert.Equal(t, "new@example.com", updated.Listing.Host.Email)

	_, err = env.listings.Patch(ctx, uuid.New(), dto.PatchListingRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, errors.ErrListingNotFound)
}

func TestDeleteListingCascades(t *testing.T) {
	env := newTestEnv(t)
	host := env.createUser(t, "host@example.com")
	guest := env.createUser(t, "guest@example.com")
	listing := env.createListing(t, host, "100.00")
	kept := env.createListing(t, host, "100.00")

	_, err := env.book(listing, guest, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	_, err = env.review(listing, guest, 5)
	require.NoError(t, err)
	_, err = env.book(kept, guest, "2024-01-01", "2024-01-03")
	require.NoError(t, err)

	require.NoError(t, env.listings.Delete(context.Background(), listing.ID))

	assert.EqualValues(t, 1, env.count(t, &models.Listing{}))
	assert.EqualValues(t, 1, env.count(t, &models.Booking{}))
	assert.Zero(t, env.count(t, &models.Review{}))

	err = env.listings.Delete(context.Background(), listing.ID)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}
