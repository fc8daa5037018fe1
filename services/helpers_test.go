package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tricyvic/alx-travel-app-0x00/config"
	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

type testEnv struct {
	db       *gorm.DB
	users    *UserService
	listings *ListingService
	bookings *BookingService
	reviews  *ReviewService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	opts := Options{DB: db, Logger: logger.NewWithWriter(io.Discard, logger.ErrorLevel)}
	return &testEnv{
		db:       db,
		users:    NewUserService(opts, bcrypt.MinCost),
		listings: NewListingService(opts),
		bookings: NewBookingService(opts),
		reviews:  NewReviewService(opts),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := e.users.Create(context.Background(), dto.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "supersecret",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createListing(t *testing.T, host *models.User, price string) *models.Listing {
	t.Helper()
	p := decimal.RequireFromString(price)
	listing, err := e.listings.Create(context.Background(), dto.ListingRequest{
		HostID:        host.ID.String(),
		Name:          "Beach House",
		Description:   "Two bedrooms by the sea",
		Location:      "Mombasa",
		PricePerNight: &p,
	})
	require.NoError(t, err)
	return &listing.Listing
}

func (e *testEnv) book(listing *models.Listing, user *models.User, start, end string) (*models.Booking, error) {
	return e.bookings.Create(context.Background(), dto.BookingRequest{
		ListingID: listing.ID.String(),
		UserID:    user.ID.String(),
		StartDate: start,
		EndDate:   end,
	})
}

func (e *testEnv) review(listing *models.Listing, user *models.User, rating int) (*models.Review, error) {
	return e.reviews.Create(context.Background(), dto.ReviewRequest{
		ListingID: listing.ID.String(),
		UserID:    user.ID.String(),
		Rating:    &rating,
		Comment:   "Lovely stay",
	})
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func passwordMatches(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func strPtr(s string) *string {
	return &s
}
