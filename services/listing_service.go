package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tricyvic/alx-travel-app-0x00/constants"
	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
	"github.com/tricyvic/alx-travel-app-0x00/validator"
)

type ListingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewListingService(opts Options) *ListingService {
	return &ListingService{
		db:     opts.DB,
		logger: opts.Logger.WithField("service", "listing"),
	}
}

// ListingWithRating là listing kèm điểm trung bình để dựng response
type ListingWithRating struct {
	Listing       models.Listing
	AverageRating *float64
}

type ratingAggregate struct {
	ListingID uuid.UUID
	Total     int64
	Count     int64
}

type listingInput struct {
	HostID        *string
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *decimal.Decimal
}

func (s *ListingService) Create(ctx context.Context, req dto.ListingRequest) (*ListingWithRating, error) {
	listing, err := s.apply(ctx, models.Listing{}, listingInput{
		HostID:        &req.HostID,
		Name:          &req.Name,
		Description:   &req.Description,
		Location:      &req.Location,
		PricePerNight: req.PricePerNight,
	}, true)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error; err != nil {
		s.logger.Error("create listing failed: %v", err)
		return nil, errors.DBError("could not create listing", err)
	}
	s.logger.Info("listing %s created by host %s", listing.ID, listing.HostID)
	return &ListingWithRating{Listing: *listing}, nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*ListingWithRating, error) {
	var listing models.Listing
	if err := s.db.WithContext(ctx).Preload("Host").Where("id = ?", id).Take(&listing).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Listing not found.", errors.ErrListingNotFound)
		}
		return nil, errors.DBError("could not load listing", err)
	}

	ratings, err := s.AverageRatings(ctx, []uuid.UUID{listing.ID})
	if err != nil {
		return nil, err
	}
	return &ListingWithRating{Listing: listing, AverageRating: ratings[listing.ID]}, nil
}

// List trả về listing mới nhất trước, kèm tổng số bản ghi
func (s *ListingService) List(ctx context.Context, query dto.ListingQuery) ([]ListingWithRating, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB { return db }
	if query.HostID != "" {
		hostID, err := parseID("hostId", query.HostID)
		if err != nil {
			return nil, 0, err
		}
		filter = func(db *gorm.DB) *gorm.DB { return db.Where("host_id = ?", hostID) }
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Listing{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errors.DBError("could not count listings", err)
	}

	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Scopes(filter, newestFirst, paginate(query.ListQuery)).
		Preload("Host").
		Find(&listings).Error
	if err != nil {
		return nil, 0, errors.DBError("could not list listings", err)
	}

	ids := make([]uuid.UUID, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	ratings, err := s.AverageRatings(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]ListingWithRating, 0, len(listings))
	for _, l := range listings {
		result = append(result, ListingWithRating{Listing: l, AverageRating: ratings[l.ID]})
	}
	return result, total, nil
}

// AverageRatings tính điểm trung bình cho nhiều listing bằng một query GROUP BY
func (s *ListingService) AverageRatings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*float64, error) {
	result := make(map[uuid.UUID]*float64, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []ratingAggregate
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Select("listing_id, SUM(rating) AS total, COUNT(*) AS count").
		Where("listing_id IN ?", ids).
		Group("listing_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.DBError("could not aggregate ratings", err)
	}

	for _, row := range rows {
		result[row.ListingID] = AverageRating(row.Total, row.Count)
	}
	return result, nil
}

func (s *ListingService) Update(ctx context.Context, id uuid.UUID, req dto.ListingRequest) (*ListingWithRating, error) {
	return s.update(ctx, id, listingInput{
		HostID:        &req.HostID,
		Name:          &req.Name,
		Description:   &req.Description,
		Location:      &req.Location,
		PricePerNight: req.PricePerNight,
	}, true)
}

func (s *ListingService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchListingRequest) (*ListingWithRating, error) {
	return s.update(ctx, id, listingInput(req), false)
}

func (s *ListingService) update(ctx context.Context, id uuid.UUID, in listingInput, full bool) (*ListingWithRating, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := s.apply(ctx, current.Listing, in, full)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(listing).Error; err != nil {
		s.logger.Error("update listing %s failed: %v", id, err)
		return nil, errors.DBError("could not update listing", err)
	}
	return &ListingWithRating{Listing: *listing, AverageRating: current.AverageRating}, nil
}

// apply kiểm tra input và gán vào listing; full = true thì mọi field đều bắt buộc
func (s *ListingService) apply(ctx context.Context, listing models.Listing, in listingInput, full bool) (*models.Listing, error) {
	if full {
		if err := requireFields(
			requiredField{"hostId", in.HostID == nil},
			requiredField{"name", in.Name == nil || *in.Name == ""},
			requiredField{"description", in.Description == nil || *in.Description == ""},
			requiredField{"location", in.Location == nil || *in.Location == ""},
			requiredField{"pricePerNight", in.PricePerNight == nil},
		); err != nil {
			return nil, err
		}
	}

	if in.HostID != nil {
		hostID, err := parseID("hostId", *in.HostID)
		if err != nil {
			return nil, err
		}
		host, err := findUser(s.db.WithContext(ctx), hostID, "hostId")
		if err != nil {
			return nil, err
		}
		listing.HostID = host.ID
		listing.Host = *host
	}
	if in.Name != nil {
		listing.Name = *in.Name
	}
	if in.Description != nil {
		listing.Description = *in.Description
	}
	if in.Location != nil {
		listing.Location = *in.Location
	}
	if in.PricePerNight != nil {
		if err := validator.ValidatePricePerNight(*in.PricePerNight); err != nil {
			return nil, err
		}
		listing.PricePerNight = in.PricePerNight.Round(constants.PriceDecimalPlaces)
	}
	return &listing, nil
}

// Delete xóa listing cùng bookings và reviews của nó
func (s *ListingService) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deleteListingsCascade(tx, "id = ?", id)
		affected = n
		return err
	})
	if err != nil {
		s.logger.Error("delete listing %s failed: %v", id, err)
		return errors.DBError("could not delete listing", err)
	}
	if affected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Listing not found.", errors.ErrListingNotFound)
	}
	s.logger.Info("listing %s deleted", id)
	return nil
}
