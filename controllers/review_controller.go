package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/response"
	"github.com/tricyvic/alx-travel-app-0x00/services"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) ReviewController {
	return ReviewController{service: service}
}

// GetReviews godoc
// @Summary  List reviews
// @Tags     reviews
// @Produce  json
// @Param    listingId query string false "Filter by listing"
// @Param    userId    query string false "Filter by author"
// @Param    page      query int    false "Page, starting at 0"
// @Param    limit     query int    false "Page size"
// @Success  200 {object} response.Response{data=[]dto.ReviewResponse}
// @Router   /reviews [get]
func (r ReviewController) GetReviews(c *gin.Context) {
	var query dto.ReviewQuery
	if !bindQuery(c, &query) {
		return
	}

	reviews, total, err := r.service.List(c.Request.Context(), query)
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		data = append(data, dto.ToReviewResponse(review))
	}
	respondList(c, data, query.ListQuery, total)
}

// CreateReview godoc
// @Summary  Review a listing, one review per user and listing
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    body body dto.ReviewRequest true "Review"
// @Success  201 {object} response.Response{data=dto.ReviewResponse}
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /reviews [post]
func (r ReviewController) CreateReview(c *gin.Context) {
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := r.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, dto.ToReviewResponse(*review))
}

// GetReviewDetail godoc
// @Summary  Get a review
// @Tags     reviews
// @Produce  json
// @Param    id path string true "Review ID"
// @Success  200 {object} response.Response{data=dto.ReviewResponse}
// @Failure  404 {object} ErrorResponse
// @Router   /reviews/{id} [get]
func (r ReviewController) GetReviewDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	review, err := r.service.Get(c.Request.Context(), id)
	r.respond(c, review, err)
}

// UpdateReview godoc
// @Summary  Replace a review
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    id   path string            true "Review ID"
// @Param    body body dto.ReviewRequest true "Review"
// @Success  200 {object} response.Response{data=dto.ReviewResponse}
// @Router   /reviews/{id} [put]
func (r ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := r.service.Update(c.Request.Context(), id, req)
	r.respond(c, review, err)
}

// PatchReview godoc
// @Summary  Partially update a review
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "Review ID"
// @Param    body body dto.PatchReviewRequest true "Fields to change"
// @Success  200 {object} response.Response{data=dto.ReviewResponse}
// @Router   /reviews/{id} [patch]
func (r ReviewController) PatchReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.PatchReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := r.service.Patch(c.Request.Context(), id, req)
	r.respond(c, review, err)
}

// DeleteReview godoc
// @Summary  Delete a review
// @Tags     reviews
// @Param    id path string true "Review ID"
// @Success  200 {object} response.Response
// @Failure  404 {object} ErrorResponse
// @Router   /reviews/{id} [delete]
func (r ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := r.service.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Deleted(c)
}

func (r ReviewController) respond(c *gin.Context, review *models.Review, err error) {
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.ToReviewResponse(*review))
}
