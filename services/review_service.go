package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

const msgReviewExists = "The fields listing, user must make a unique set."

type ReviewService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReviewService(opts Options) *ReviewService {
	return &ReviewService{
		db:     opts.DB,
		logger: opts.Logger.WithField("service", "review"),
	}
}

type reviewInput struct {
	ListingID *string
	UserID    *string
	Rating    *int
	Comment   *string
}

func (s *ReviewService) Create(ctx context.Context, req dto.ReviewRequest) (*models.Review, error) {
	return s.save(ctx, nil, reviewInput{
		ListingID: &req.ListingID,
		UserID:    &req.UserID,
		Rating:    req.Rating,
		Comment:   &req.Comment,
	}, true)
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).Preload("User").Where("id = ?", id).Take(&review).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Review not found.", errors.ErrReviewNotFound)
		}
		return nil, errors.DBError("could not load review", err)
	}
	return &review, nil
}

func (s *ReviewService) List(ctx context.Context, query dto.ReviewQuery) ([]models.Review, int64, error) {
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

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Review{}).Scopes(conds...).Count(&total).Error; err != nil {
		return nil, 0, errors.DBError("could not count reviews", err)
	}

	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Scopes(conds...).
		Scopes(newestFirst, paginate(query.ListQuery)).
		Preload("User").
		Find(&reviews).Error
	if err != nil {
		return nil, 0, errors.DBError("could not list reviews", err)
	}
	return reviews, total, nil
}

// ListForListing trả review của một listing, listing phải tồn tại
func (s *ReviewService) ListForListing(ctx context.Context, listingID uuid.UUID, page dto.ListQuery) ([]models.Review, int64, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&models.Listing{}).Where("id = ?", listingID).Count(&exists).Error; err != nil {
		return nil, 0, errors.DBError("could not load listing", err)
	}
	if exists == 0 {
		return nil, 0, errors.NewAppError(errors.ErrCodeNotFound, "Listing not found.", errors.ErrListingNotFound)
	}
	return s.List(ctx, dto.ReviewQuery{ListQuery: page, ListingID: listingID.String()})
}

func (s *ReviewService) Update(ctx context.Context, id uuid.UUID, req dto.ReviewRequest) (*models.Review, error) {
	return s.save(ctx, &id, reviewInput{
		ListingID: &req.ListingID,
		UserID:    &req.UserID,
		Rating:    req.Rating,
		Comment:   &req.Comment,
	}, true)
}

func (s *ReviewService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchReviewRequest) (*models.Review, error) {
	return s.save(ctx, &id, reviewInput(req), false)
}

func (s *ReviewService) save(ctx context.Context, id *uuid.UUID, in reviewInput, full bool) (*models.Review, error) {
	if full {
		if err := requireFields(
			requiredField{"listingId", in.ListingID == nil},
			requiredField{"userId", in.UserID == nil},
			requiredField{"rating", in.Rating == nil},
			requiredField{"comment", in.Comment == nil || *in.Comment == ""},
		); err != nil {
			return nil, err
		}
	}

	var review models.Review
	db := s.db.WithContext(ctx)
	if id != nil {
		if err := db.Where("id = ?", *id).Take(&review).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.NewAppError(errors.ErrCodeNotFound, "Review not found.", errors.ErrReviewNotFound)
			}
			return nil, errors.DBError("could not load review", err)
		}
	}

	if in.ListingID != nil {
		listingID, err := parseID("listingId", *in.ListingID)
		if err != nil {
			return nil, err
		}
		listing, err := findListing(db, listingID, "listingId", false)
		if err != nil {
			return nil, err
		}
		review.ListingID = listing.ID
	}
	if in.UserID != nil {
		userID, err := parseID("userId", *in.UserID)
		if err != nil {
			return nil, err
		}
		user, err := findUser(db, userID, "userId")
		if err != nil {
			return nil, err
		}
		review.UserID = user.ID
	}
	if in.Rating != nil {
		if err := validator.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}

	if err := s.ensureUnique(ctx, review.ListingID, review.UserID, id); err != nil {
		return nil, err
	}

	q := db.Omit(clause.Associations)
	var err error
	if id == nil {
		err = q.Create(&review).Error
	} else {
		err = q.Save(&review).Error
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Conflict("userId", msgReviewExists, err)
		}
		s.logger.Error("save review failed: %v", err)
		return nil, errors.DBError("could not save review", err)
	}

	if id == nil {
		s.logger.Info("review %s created for listing %s", review.ID, review.ListingID)
	}
	return s.Get(ctx, review.ID)
}

// ensureUnique: mỗi cặp (listing, user) chỉ có một review
func (s *ReviewService) ensureUnique(ctx context.Context, listingID, userID uuid.UUID, exclude *uuid.UUID) error {
	q := s.db.WithContext(ctx).Model(&models.Review{}).
		Where("listing_id = ? AND user_id = ?", listingID, userID)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return errors.DBError("could not check review uniqueness", err)
	}
	if count > 0 {
		return errors.Conflict("userId", msgReviewExists, nil)
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		s.logger.Error("delete review %s failed: %v", id, res.Error)
		return errors.DBError("could not delete review", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Review not found.", errors.ErrReviewNotFound)
	}
	s.logger.Info("review %s deleted", id)
	return nil
}
