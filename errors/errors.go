package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định danh loại lỗi trả về cho client
type ErrorCode string

const (
	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Conflict errors
	ErrCodeUniqueConflict ErrorCode = "UNIQUENESS_CONFLICT"
	ErrCodeBookingOverlap ErrorCode = "BOOKING_OVERLAP"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// FieldError gắn một thông báo lỗi với một field của request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError là lỗi nghiệp vụ, luôn gắn với một thao tác duy nhất
type AppError struct {
	Code    ErrorCode
	Message string
	Field   string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldErrors trả về danh sách lỗi theo field, kể cả khi lỗi chỉ gắn một field
func (e *AppError) FieldErrors() []FieldError {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	if e.Field != "" {
		return []FieldError{{Field: e.Field, Message: e.Message}}
	}
	return nil
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewFieldError tạo AppError gắn với một field cụ thể
func NewFieldError(code ErrorCode, field, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// NotFound: bản ghi được tham chiếu không tồn tại
func NotFound(field, message string) *AppError {
	return NewFieldError(ErrCodeNotFound, field, message)
}

// Validation: vi phạm ràng buộc của một field
func Validation(field, message string) *AppError {
	return NewFieldError(ErrCodeValidation, field, message)
}

// Conflict: vi phạm ràng buộc unique
func Conflict(field, message string, err error) *AppError {
	appErr := NewFieldError(ErrCodeUniqueConflict, field, message)
	appErr.Err = err
	return appErr
}

// DBError bọc lỗi từ tầng lưu trữ
func DBError(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ chuỗi error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra mã lỗi của err
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")
)
