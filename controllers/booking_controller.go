package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/response"
	"github.com/tricyvic/alx-travel-app-0x00/services"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) BookingController {
	return BookingController{service: service}
}

// GetBookings godoc
// @Summary  List bookings
// @Tags     bookings
// @Produce  json
// @Param    listingId query string false "Filter by listing"
// @Param    userId    query string false "Filter by booker"
// @Param    status    query string false "pending, confirmed or canceled"
// @Param    page      query int    false "Page, starting at 0"
// @Param    limit     query int    false "Page size"
// @Success  200 {object} response.Response{data=[]dto.BookingResponse}
// @Router   /bookings [get]
func (b BookingController) GetBookings(c *gin.Context) {
	var query dto.BookingQuery
	if !bindQuery(c, &query) {
		return
	}

	bookings, total, err := b.service.List(c.Request.Context(), query)
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		data = append(data, dto.ToBookingResponse(booking))
	}
	respondList(c, data, query.ListQuery, total)
}

// CreateBooking godoc
// @Summary  Create a booking, total price is computed by the server
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body body dto.BookingRequest true "Booking"
// @Success  201 {object} response.Response{data=dto.BookingResponse}
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /bookings [post]
func (b BookingController) CreateBooking(c *gin.Context) {
	var req dto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := b.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, dto.ToBookingResponse(*booking))
}

// GetBookingDetail godoc
// @Summary  Get a booking
// @Tags     bookings
// @Produce  json
// @Param    id path string true "Booking ID"
// @Success  200 {object} response.Response{data=dto.BookingResponse}
// @Failure  404 {object} ErrorResponse
// @Router   /bookings/{id} [get]
func (b BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := b.service.Get(c.Request.Context(), id)
	b.respond(c, booking, err)
}

// UpdateBooking godoc
// @Summary  Replace a booking
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id   path string             true "Booking ID"
// @Param    body body dto.BookingRequest true "Booking"
// @Success  200 {object} response.Response{data=dto.BookingResponse}
// @Router   /bookings/{id} [put]
func (b BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := b.service.Update(c.Request.Context(), id, req)
	b.respond(c, booking, err)
}

// PatchBooking godoc
// @Summary  Partially update a booking, e.g. confirm or cancel it
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id   path string                  true "Booking ID"
// @Param    body body dto.PatchBookingRequest true "Fields to change"
// @Success  200 {object} response.Response{data=dto.BookingResponse}
// @Router   /bookings/{id} [patch]
func (b BookingController) PatchBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.PatchBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := b.service.Patch(c.Request.Context(), id, req)
	b.respond(c, booking, err)
}

// DeleteBooking godoc
// @Summary  Delete a booking
// @Tags     bookings
// @Param    id path string true "Booking ID"
// @Success  200 {object} response.Response
// @Failure  404 {object} ErrorResponse
// @Router   /bookings/{id} [delete]
func (b BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := b.service.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Deleted(c)
}

func (b BookingController) respond(c *gin.Context, booking *models.Booking, err error) {
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.ToBookingResponse(*booking))
}
