package builders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

func TestBookingBuilder(t *testing.T) {
	listing := models.Listing{ID: uuid.New(), Name: "Loft"}
	user := models.User{ID: uuid.New(), Email: "a@example.com"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	b := NewBookingBuilder().
		WithListing(listing).
		WithUser(user).
		WithDates(start, start.AddDate(0, 0, 2)).
		WithStatus("").
		WithTotalPrice(decimal.NewFromInt(200)).
		Build()

	assert.Equal(t, listing.ID, b.ListingID)
	assert.Equal(t, user.ID, b.UserID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.True(t, decimal.NewFromInt(200).Equal(b.TotalPrice))
}

func TestFromBookingWorksOnCopy(t *testing.T) {
	original := models.Booking{ID: uuid.New(), Status: models.BookingStatusPending}

	b := FromBooking(original).WithStatus(models.BookingStatusConfirmed).Build()

	assert.Equal(t, original.ID, b.ID)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, models.BookingStatusPending, original.Status)
}
