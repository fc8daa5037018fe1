package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/tricyvic/alx-travel-app-0x00/models"
)

type ReviewRequest struct {
	ListingID string `json:"listingId" binding:"required,uuid"`
	UserID    string `json:"userId" binding:"required,uuid"`
	Rating    *int   `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type PatchReviewRequest struct {
	ListingID *string `json:"listingId" binding:"omitempty,uuid"`
	UserID    *string `json:"userId" binding:"omitempty,uuid"`
	Rating    *int    `json:"rating"`
	Comment   *string `json:"comment" binding:"omitempty,min=1"`
}

type ReviewQuery struct {
	ListQuery
	ListingID string `form:"listingId" binding:"omitempty,uuid"`
	UserID    string `form:"userId" binding:"omitempty,uuid"`
}

type ReviewResponse struct {
	ID        uuid.UUID  `json:"reviewId"`
	ListingID uuid.UUID  `json:"listingId"`
	User      SimpleUser `json:"user"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
}

func ToReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ListingID: r.ListingID,
		User:      ToSimpleUser(r.User),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
