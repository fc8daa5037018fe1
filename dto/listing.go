package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

// ListingRequest dùng cho POST và PUT, host được truyền bằng id
type ListingRequest struct {
	HostID        string           `json:"hostId" binding:"required,uuid"`
	Name          string           `json:"name" binding:"required,max=255"`
	Description   string           `json:"description" binding:"required"`
	Location      string           `json:"location" binding:"required,max=255"`
	PricePerNight *decimal.Decimal `json:"pricePerNight" binding:"required"`
}

// PatchListingRequest: field nil nghĩa là giữ nguyên
type PatchListingRequest struct {
	HostID        *string          `json:"hostId" binding:"omitempty,uuid"`
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string          `json:"description" binding:"omitempty,min=1"`
	Location      *string          `json:"location" binding:"omitempty,min=1,max=255"`
	PricePerNight *decimal.Decimal `json:"pricePerNight"`
}

type ListingQuery struct {
	ListQuery
	HostID string `form:"hostId" binding:"omitempty,uuid"`
}

type ListingResponse struct {
	ID            uuid.UUID  `json:"listingId"`
	Host          SimpleUser `json:"host"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	PricePerNight string     `json:"pricePerNight"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	AverageRating *float64   `json:"averageRating"` // null khi chưa có review
}

// SimpleListing là projection tối thiểu khi lồng listing vào booking
type SimpleListing struct {
	ID            uuid.UUID `json:"listingId"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"pricePerNight"`
}

func ToListingResponse(l models.Listing, averageRating *float64) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		Host:          ToSimpleUser(l.Host),
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: FormatMoney(l.PricePerNight),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
		AverageRating: averageRating,
	}
}

func ToSimpleListing(l models.Listing) SimpleListing {
	return SimpleListing{
		ID:            l.ID,
		Name:          l.Name,
		Location:      l.Location,
		PricePerNight: FormatMoney(l.PricePerNight),
	}
}
