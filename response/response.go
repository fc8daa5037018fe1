package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tricyvic/alx-travel-app-0x00/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int                 `json:"code"`
	Mess       string              `json:"mess"`
	ErrorCode  errors.ErrorCode    `json:"errorCode,omitempty"`
	Errors     []errors.FieldError `json:"errors,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Pagination *Pagination         `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về 201 kèm bản ghi vừa tạo
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Tạo thành công",
		Data: data,
	})
}

// Deleted dùng cho DELETE thành công
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Xóa thành công",
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// StatusFor ánh xạ mã lỗi nghiệp vụ sang HTTP status
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUniqueConflict, errors.ErrCodeBookingOverlap:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// AppError trả lỗi nghiệp vụ kèm errorCode và danh sách field lỗi
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code == errors.ErrCodeDBError {
		_ = c.Error(err)
		ServerError(c)
		return
	}

	c.JSON(StatusFor(appErr.Code), Response{
		Code:      0,
		Mess:      appErr.Message,
		ErrorCode: appErr.Code,
		Errors:    appErr.FieldErrors(),
	})
}

// ServerError trả về response lỗi server, không lộ chi tiết lỗi DB
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:      0,
		Mess:      "Lỗi server",
		ErrorCode: errors.ErrCodeDBError,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code:      0,
		Mess:      "Không tìm thấy",
		ErrorCode: errors.ErrCodeNotFound,
	})
}
