package validator

import (
	stdjson "encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/tricyvic/alx-travel-app-0x00/constants"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
)

const (
	MsgEndBeforeStart  = "End date must be after start date."
	MsgAtLeastOneNight = "Booking must be for at least one night."
)

var maxIntegerPart = decimal.New(1, constants.PriceIntegerDigits)

// Setup đăng ký tên field theo tag json/form cho validator của gin
func Setup() {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		RegisterTagNames(v)
	}
}

// RegisterTagNames để lỗi trả về dùng tên field giống request
func RegisterTagNames(v *playground.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// ParseDate đọc ngày dạng YYYY-MM-DD
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		appErr := errors.NewFieldError(errors.ErrCodeInvalidFormat, field, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		appErr.Err = err
		return time.Time{}, appErr
	}
	return t, nil
}

// TruncateDate bỏ phần giờ, giữ ngày theo lịch
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// Nights là số đêm nguyên giữa hai ngày.
// Đếm theo ngày lịch trên Unix seconds, không qua time.Duration (bị chặn ở ~292 năm).
func Nights(start, end time.Time) int {
	return int((TruncateDate(end).Unix() - TruncateDate(start).Unix()) / secondsPerDay)
}

// ValidateBookingDates kiểm tra khoảng ngày và trả về số đêm
func ValidateBookingDates(start, end time.Time) (int, error) {
	start, end = TruncateDate(start), TruncateDate(end)
	if start.After(end) {
		return 0, errors.Validation("endDate", MsgEndBeforeStart)
	}

	nights := Nights(start, end)
	if nights <= 0 {
		return 0, errors.Validation("endDate", MsgAtLeastOneNight)
	}
	return nights, nil
}

func ValidateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return errors.Validation("rating", fmt.Sprintf("Ensure this value is between %d and %d.", models.MinRating, models.MaxRating))
	}
	return nil
}

// ValidatePricePerNight: giá phải dương và vừa cột decimal(10,2)
func ValidatePricePerNight(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errors.Validation("pricePerNight", "Ensure this value is greater than 0.")
	}
	if !price.Equal(price.Round(constants.PriceDecimalPlaces)) {
		return errors.Validation("pricePerNight", fmt.Sprintf("Ensure that there are no more than %d decimal places.", constants.PriceDecimalPlaces))
	}
	if price.Truncate(0).GreaterThanOrEqual(maxIntegerPart) {
		return errors.Validation("pricePerNight", fmt.Sprintf("Ensure that there are no more than %d digits in total.", constants.PriceMaxDigits))
	}
	return nil
}

func ValidateStatus(status string) error {
	if !models.BookingStatus(status).Valid() {
		return errors.Validation("status", fmt.Sprintf("%q is not a valid choice.", status))
	}
	return nil
}

// BindingError chuyển lỗi bind/validate của gin sang AppError có danh sách field
func BindingError(err error) *errors.AppError {
	var validationErrs playground.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		appErr := errors.NewAppError(errors.ErrCodeValidation, "Invalid input.", err)
		for _, fe := range validationErrs {
			appErr.Fields = append(appErr.Fields, errors.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		if allRequired(validationErrs) {
			appErr.Code = errors.ErrCodeRequiredField
		}
		return appErr
	}

	var typeErr *stdjson.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return wrongType(typeErr.Field, typeErr.Value, err)
	}
	var goccyTypeErr *json.UnmarshalTypeError
	if stderrors.As(err, &goccyTypeErr) {
		return wrongType(goccyTypeErr.Field, goccyTypeErr.Value, err)
	}

	return errors.NewAppError(errors.ErrCodeInvalidFormat, "Malformed request body.", err)
}

func wrongType(field, value string, err error) *errors.AppError {
	appErr := errors.NewFieldError(errors.ErrCodeInvalidFormat, field, fmt.Sprintf("Incorrect type. Got %s.", value))
	appErr.Err = err
	return appErr
}

func allRequired(errs playground.ValidationErrors) bool {
	for _, fe := range errs {
		if fe.Tag() != "required" {
			return false
		}
	}
	return true
}

func fieldMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "uuid":
		return "Must be a valid UUID."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return "This field may not be blank."
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return "Invalid value."
}
