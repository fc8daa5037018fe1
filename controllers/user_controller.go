package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/response"
	"github.com/tricyvic/alx-travel-app-0x00/services"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) UserController {
	return UserController{service: service}
}

// GetUsers godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Param    email query string false "Filter by email"
// @Param    page  query int    false "Page, starting at 0"
// @Param    limit query int    false "Page size"
// @Success  200 {object} response.Response{data=[]dto.UserResponse}
// @Router   /users [get]
func (u UserController) GetUsers(c *gin.Context) {
	var query dto.UserQuery
	if !bindQuery(c, &query) {
		return
	}

	users, total, err := u.service.List(c.Request.Context(), query)
	if err != nil {
		response.AppError(c, err)
		return
	}

	data := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, dto.ToUserResponse(user))
	}
	respondList(c, data, query.ListQuery, total)
}

// CreateUser godoc
// @Summary  Create a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body dto.CreateUserRequest true "User"
// @Success  201 {object} response.Response{data=dto.UserResponse}
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /users [post]
func (u UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Created(c, dto.ToUserResponse(*user))
}

// GetUserByID godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id path string true "User ID"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Failure  404 {object} ErrorResponse
// @Router   /users/{id} [get]
func (u UserController) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := u.service.Get(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.ToUserResponse(*user))
}

// UpdateUser godoc
// @Summary  Replace a user's profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id   path string                true "User ID"
// @Param    body body dto.UpdateUserRequest true "User"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Router   /users/{id} [put]
func (u UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.service.Update(c.Request.Context(), id, req)
	u.respond(c, user, err)
}

// PatchUser godoc
// @Summary  Partially update a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id   path string               true "User ID"
// @Param    body body dto.PatchUserRequest true "Fields to change"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Router   /users/{id} [patch]
func (u UserController) PatchUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.PatchUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.service.Patch(c.Request.Context(), id, req)
	u.respond(c, user, err)
}

// DeleteUser godoc
// @Summary  Delete a user with their listings, bookings and reviews
// @Tags     users
// @Param    id path string true "User ID"
// @Success  200 {object} response.Response
// @Failure  404 {object} ErrorResponse
// @Router   /users/{id} [delete]
func (u UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := u.service.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}
	response.Deleted(c)
}

func (u UserController) respond(c *gin.Context, user *models.User, err error) {
	if err != nil {
		response.AppError(c, err)
		return
	}
	response.Success(c, dto.ToUserResponse(*user))
}
