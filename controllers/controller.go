package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/response"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

// parseIDParam đọc :id trên path, trả 404 nếu không phải UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON bind body và trả lỗi dạng field nếu không hợp lệ
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.AppError(c, validator.BindingError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, query interface{}) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		response.AppError(c, validator.BindingError(err))
		return false
	}
	return true
}

func respondList(c *gin.Context, data interface{}, q dto.ListQuery, total int64) {
	q = q.Normalize()
	response.SuccessWithPagination(c, data, q.Page, q.Limit, total)
}

// ErrorResponse chỉ dùng cho tài liệu swagger
type ErrorResponse struct {
	Code      int                 `json:"code"`
	Mess      string              `json:"mess"`
	ErrorCode errors.ErrorCode    `json:"errorCode"`
	Errors    []errors.FieldError `json:"errors"`
}
