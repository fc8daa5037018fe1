package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tricyvic/alx-travel-app-0x00/builders"
	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

const msgBookingOverlap = "Listing is already booked for the selected dates."

type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewBookingService(opts Options) *BookingService {
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger.WithField("service", "booking"),
	}
}

type bookingInput struct {
	ListingID *string
	UserID    *string
	StartDate *string
	EndDate   *string
	Status    *string
}

func (s *BookingService) Create(ctx context.Context, req dto.BookingRequest) (*models.Booking, error) {
	return s.save(ctx, nil, bookingInput{
		ListingID: &req.ListingID,
		UserID:    &req.UserID,
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
		Status:    req.Status,
	}, true)
}

func (s *BookingService) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Listing").
		Preload("User").
		Where("id = ?", id).
		Take(&booking).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
		}
		return nil, errors.DBError("could not load booking", err)
	}
	return &booking, nil
}

func (s *BookingService) List(ctx context.Context, query dto.BookingQuery) ([]models.Booking, int64, error) {
	var conds []func(*gorm.DB) *gorm.DB
	if query.ListingID != "" {
		listingID, err := parseID("listingId", query.ListingID)
		if err != nil {
			return nil, 0, err
		}
		conds = append(conds, func(db *gorm.DB) *gorm.DB { return db.Where("listing_id = ?", listingID) })
	}
	if query.UserID != "" {
		userID, err := parseID("userId", query.UserID)
		if err != nil {
			return nil, 0, err
		}
		conds = append(conds, func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) })
	}
	if query.Status != "" {
		if err := validator.ValidateStatus(query.Status); err != nil {
			return nil, 0, err
		}
		conds = append(conds, func(db *gorm.DB) *gorm.DB { return db.Where("status = ?", query.Status) })
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).Scopes(conds...).Count(&total).Error; err != nil {
		return nil, 0, errors.DBError("could not count bookings", err)
	}

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Scopes(conds...).
		Scopes(newestFirst, paginate(query.ListQuery)).
		Preload("Listing").
		Preload("User").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, errors.DBError("could not list bookings", err)
	}
	return bookings, total, nil
}

func (s *BookingService) Update(ctx context.Context, id uuid.UUID, req dto.BookingRequest) (*models.Booking, error) {
	return s.save(ctx, &id, bookingInput{
		ListingID: &req.ListingID,
		UserID:    &req.UserID,
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
		Status:    req.Status,
	}, true)
}

func (s *BookingService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchBookingRequest) (*models.Booking, error) {
	return s.save(ctx, &id, bookingInput(req), false)
}

// save tạo (id == nil) hoặc cập nhật booking trong một transaction.
// Listing bị khóa FOR UPDATE trong lúc kiểm tra trùng lịch.
func (s *BookingService) save(ctx context.Context, id *uuid.UUID, in bookingInput, full bool) (*models.Booking, error) {
	if full {
		if err := requireFields(
			requiredField{"listingId", in.ListingID == nil},
			requiredField{"userId", in.UserID == nil},
			requiredField{"startDate", in.StartDate == nil},
			requiredField{"endDate", in.EndDate == nil},
		); err != nil {
			return nil, err
		}
	}

	var saved uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		builder := builders.NewBookingBuilder()
		if id != nil {
			var existing models.Booking
			if err := tx.Where("id = ?", *id).Take(&existing).Error; err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
				}
				return errors.DBError("could not load booking", err)
			}
			builder = builders.FromBooking(existing)
		}
		current := builder.Current()

		listingID := current.ListingID
		if in.ListingID != nil {
			parsed, err := parseID("listingId", *in.ListingID)
			if err != nil {
				return err
			}
			listingID = parsed
		}
		listing, err := findListing(tx, listingID, "listingId", true)
		if err != nil {
			return err
		}
		builder.WithListing(*listing)

		if in.UserID != nil {
			userID, err := parseID("userId", *in.UserID)
			if err != nil {
				return err
			}
			user, err := findUser(tx, userID, "userId")
			if err != nil {
				return err
			}
			builder.WithUser(*user)
		}

		start, end := current.StartDate, current.EndDate
		if in.StartDate != nil {
			if start, err = validator.ParseDate("startDate", *in.StartDate); err != nil {
				return err
			}
		}
		if in.EndDate != nil {
			if end, err = validator.ParseDate("endDate", *in.EndDate); err != nil {
				return err
			}
		}
		start, end = validator.TruncateDate(start), validator.TruncateDate(end)

		_, total, err := Quote(listing.PricePerNight, start, end)
		if err != nil {
			return err
		}
		builder.WithDates(start, end).WithTotalPrice(total)

		if in.Status != nil {
			if err := validator.ValidateStatus(*in.Status); err != nil {
				return err
			}
			target := models.BookingStatus(*in.Status)
			if id == nil {
				builder.WithStatus(target)
			} else if err := current.TransitionTo(target); err != nil {
				return errors.Validation("status", err.Error())
			}
		}

		booking := builder.Build()
		if booking.Status != models.BookingStatusCanceled {
			if err := s.ensureAvailable(tx, booking.ListingID, start, end, id); err != nil {
				return err
			}
		}

		q := tx.Omit(clause.Associations)
		if id == nil {
			err = q.Create(booking).Error
		} else {
			err = q.Save(booking).Error
		}
		if err != nil {
			return errors.DBError("could not save booking", err)
		}
		saved = booking.ID
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) || errors.HasCode(err, errors.ErrCodeDBError) {
			s.logger.Error("save booking failed: %v", err)
		}
		return nil, err
	}

	if id == nil {
		s.logger.Info("booking %s created", saved)
	}
	return s.Get(ctx, saved)
}

// ensureAvailable: không cho hai booking chưa hủy giao nhau trên [start, end)
func (s *BookingService) ensureAvailable(tx *gorm.DB, listingID uuid.UUID, start, end time.Time, exclude *uuid.UUID) error {
	q := tx.Model(&models.Booking{}).
		Where("listing_id = ?", listingID).
		Where("status <> ?", models.BookingStatusCanceled).
		Where("start_date < ? AND end_date > ?", end, start)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return errors.DBError("could not check availability", err)
	}
	if count > 0 {
		return errors.NewFieldError(errors.ErrCodeBookingOverlap, "startDate", msgBookingOverlap)
	}
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		s.logger.Error("delete booking %s failed: %v", id, res.Error)
		return errors.DBError("could not delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
	}
	s.logger.Info("booking %s deleted", id)
	return nil
}
