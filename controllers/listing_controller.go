package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/response"
	"github.com/tricyvic/alx-travel-app-0x00/services"
)

type ListingController struct {
	service *services.ListingService
	reviews *services.ReviewService
}

func NewListingController(service *services.ListingService, reviews *services.ReviewService) ListingController {
	return ListingController{service: service, reviews: reviews}
}

func toListingResponse(l services.ListingWithRating) dto.ListingResponse {
	return dto.ToListingResponse(l.Listing, l.AverageRating)
}

// GetListings godoc
// @Summary  List listings, newest first
// @Tags     listings
// @Produce  json
// @Param    hostId query string false "Filter by host"
// @Param    page   query int    false "Page, starting at 0"
// @Param    limit  query int    false "Page size"
// @Success  200 {object} response.Response{data=[]dto.ListingResponse}
// @Router   /listings [get]
func (l ListingController) GetListings(c *gin.Context) {
	var query dto.ListingQuery
	if !bindQuery(c, &query) {
		return
	}

	listings, total, err := l.service.List(c.Request.Context(), query)
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.ListingResponse, 0, len(listings))
	for _, listing := range listings {
		data = append(data, toListingResponse(listing))
	}
	respondList(c, data, query.ListQuery, total)
}

// CreateListing godoc
// @Summary  Create a listing
// @Tags     listings
// @Accept   json
// @Produce  json
// @Param    body body dto.ListingRequest true "Listing"
// @Success  201 {object} response.Response{data=dto.ListingResponse}
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /listings [post]
func (l ListingController) CreateListing(c *gin.Context) {
	var req dto.ListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := l.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, toListingResponse(*listing))
}

// GetListingDetail godoc
// @Summary  Get a listing with its average rating
// @Tags     listings
// @Produce  json
// @Param    id path string true "Listing ID"
// @Success  200 {object} response.Response{data=dto.ListingResponse}
// @Failure  404 {object} ErrorResponse
// @Router   /listings/{id} [get]
func (l ListingController) GetListingDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	listing, err := l.service.Get(c.Request.Context(), id)
	l.respond(c, listing, err)
}

// UpdateListing godoc
// @Summary  Replace a listing
// @Tags     listings
// @Accept   json
// @Produce  json
// @Param    id   path string             true "Listing ID"
// @Param    body body dto.ListingRequest true "Listing"
// @Success  200 {object} response.Response{data=dto.ListingResponse}
// @Router   /listings/{id} [put]
func (l ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := l.service.Update(c.Request.Context(), id, req)
	l.respond(c, listing, err)
}

// PatchListing godoc
// @Summary  Partially update a listing
// @Tags     listings
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "Listing ID"
// @Param    body body dto.PatchListingRequest true "Fields to change"
// @Success  200 {object} response.Response{data=dto.ListingResponse}
// @Router   /listings/{id} [patch]
func (l ListingController) PatchListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.PatchListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := l.service.Patch(c.Request.Context(), id, req)
	l.respond(c, listing, err)
}

// DeleteListing godoc
// @Summary  Delete a listing with its bookings and reviews
// @Tags     listings
// @Param    id path string true "Listing ID"
// @Success  200 {object} response.Response
// @Failure  404 {object} ErrorResponse
// @Router   /listings/{id} [delete]
func (l ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := l.service.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Deleted(c)
}

// GetListingReviews godoc
// @Summary  List the reviews of a listing
// @Tags     listings
// @Produce  json
// @Param    id    path  string true  "Listing ID"
// @Param    page  query int    false "Page, starting at 0"
// @Param    limit query int    false "Page size"
// @Success  200 {object} response.Response{data=[]dto.ReviewResponse}
// @Failure  404 {object} ErrorResponse
// @Router   /listings/{id}/reviews [get]
func (l ListingController) GetListingReviews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var page dto.ListQuery
	if !bindQuery(c, &page) {
		return
	}

	reviews, total, err := l.reviews.ListForListing(c.Request.Context(), id, page)
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, dto.ToReviewResponse(review))
	}
	respondList(c, data, page, total)
}

func (l ListingController) respond(c *gin.Context, listing *services.ListingWithRating, err error) {
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, toListingResponse(*listing))
}
