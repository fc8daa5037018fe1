package services

import (
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

// Options là dependency chung của các service
type Options struct {
	DB     *gorm.DB
	Logger logger.Logger
}

const pqUniqueViolation = "23505"

// isUniqueViolation nhận lỗi unique từ gorm (TranslateError), lib/pq hoặc sqlite
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type requiredField struct {
	name   string
	absent bool
}

// requireFields gom tất cả field còn thiếu vào một lỗi REQUIRED_FIELD
func requireFields(fields ...requiredField) error {
	var missing []errors.FieldError
	for _, f := range fields {
		if f.absent {
			missing = append(missing, errors.FieldError{Field: f.name, Message: "This field is required."})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	appErr := errors.NewAppError(errors.ErrCodeRequiredField, "This field is required.", nil)
	appErr.Fields = missing
	return appErr
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		appErr := errors.NewFieldError(errors.ErrCodeInvalidFormat, field, "Must be a valid UUID.")
		appErr.Err = err
		return uuid.Nil, appErr
	}
	return id, nil
}

// paginate áp dụng page/limit cho query
func paginate(q dto.ListQuery) func(*gorm.DB) *gorm.DB {
	q = q.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// findUser trả NOT_FOUND gắn với field khi user không tồn tại
func findUser(tx *gorm.DB, id uuid.UUID, field string) (*models.User, error) {
	var user models.User
	if err := tx.Where("id = ?", id).Take(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound(field, "Invalid pk \""+id.String()+"\" - user does not exist.")
		}
		return nil, errors.DBError("could not load user", err)
	}
	return &user, nil
}

// findListing có thể khóa dòng listing (FOR UPDATE) khi lock = true
func findListing(tx *gorm.DB, id uuid.UUID, field string, lock bool) (*models.Listing, error) {
	var listing models.Listing
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.Where("id = ?", id).Take(&listing).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound(field, "Invalid pk \""+id.String()+"\" - listing does not exist.")
		}
		return nil, errors.DBError("could not load listing", err)
	}
	return &listing, nil
}

// deleteListingsCascade xóa bookings, reviews rồi tới listings thỏa điều kiện
func deleteListingsCascade(tx *gorm.DB, query string, args ...interface{}) (int64, error) {
	ids := tx.Model(&models.Listing{}).Select("id").Where(query, args...)
	if err := tx.Where("listing_id IN (?)", ids).Delete(&models.Booking{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Where("listing_id IN (?)", ids).Delete(&models.Review{}).Error; err != nil {
		return 0, err
	}
	res := tx.Where(query, args...).Delete(&models.Listing{})
	return res.RowsAffected, res.Error
}
