package builders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo booking mới, mặc định pending
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: models.BookingStatusPending},
	}
}

// FromBooking sửa trên bản sao của booking có sẵn
func FromBooking(b models.Booking) *BookingBuilder {
	return &BookingBuilder{booking: &b}
}

// WithListing gán listing và listing id
func (b *BookingBuilder) WithListing(listing models.Listing) *BookingBuilder {
	b.booking.ListingID = listing.ID
	b.booking.Listing = listing
	return b
}

// WithUser gán người đặt
func (b *BookingBuilder) WithUser(user models.User) *BookingBuilder {
	b.booking.UserID = user.ID
	b.booking.User = user
	return b
}

// WithDates gán ngày nhận và trả phòng
func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.booking.StartDate = start
	b.booking.EndDate = end
	return b
}

// WithStatus gán trạng thái, bỏ qua giá trị rỗng
func (b *BookingBuilder) WithStatus(status models.BookingStatus) *BookingBuilder {
	if status != "" {
		b.booking.Status = status
	}
	return b
}

// WithTotalPrice gán tổng giá đã tính
func (b *BookingBuilder) WithTotalPrice(totalPrice decimal.Decimal) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Current cho phép đọc booking đang dựng
func (b *BookingBuilder) Current() *models.Booking {
	return b.booking
}

// Build trả về booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
