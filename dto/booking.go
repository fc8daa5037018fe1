package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

// BookingRequest dùng cho POST và PUT. totalPrice không nhận từ client.
type BookingRequest struct {
	ListingID string  `json:"listingId" binding:"required,uuid"`
	UserID    string  `json:"userId" binding:"required,uuid"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending confirmed canceled"`
}

type PatchBookingRequest struct {
	ListingID *string `json:"listingId" binding:"omitempty,uuid"`
	UserID    *string `json:"userId" binding:"omitempty,uuid"`
	StartDate *string `json:"startDate" binding:"omitempty,min=1"`
	EndDate   *string `json:"endDate" binding:"omitempty,min=1"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending confirmed canceled"`
}

type BookingQuery struct {
	ListQuery
	ListingID string `form:"listingId" binding:"omitempty,uuid"`
	UserID    string `form:"userId" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed canceled"`
}

type BookingResponse struct {
	ID         uuid.UUID            `json:"bookingId"`
	Listing    SimpleListing        `json:"listing"`
	User       SimpleUser           `json:"user"`
	StartDate  Date                 `json:"startDate"`
	EndDate    Date                 `json:"endDate"`
	TotalPrice string               `json:"totalPrice"`
	Status     models.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Listing:    ToSimpleListing(b.Listing),
		User:       ToSimpleUser(b.User),
		StartDate:  NewDate(b.StartDate),
		EndDate:    NewDate(b.EndDate),
		TotalPrice: FormatMoney(b.TotalPrice),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}
