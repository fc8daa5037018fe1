package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tricyvic/alx-travel-app-0x00/dto"
	"github.com/tricyvic/alx-travel-app-0x00/errors"
	"github.com/tricyvic/alx-travel-app-0x00/models"
	"github.com/tricyvic/alx-travel-app-0x00/services/logger"
)

const msgEmailTaken = "User with this email already exists."

type UserService struct {
	db         *gorm.DB
	logger     logger.Logger
	bcryptCost int
}

// NewUserService; cost <= 0 thì dùng bcrypt.DefaultCost
func NewUserService(opts Options, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		db:         opts.DB,
		logger:     opts.Logger.WithField("service", "user"),
		bcryptCost: bcryptCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeValidation, "could not hash password", err)
	}
	return string(hashed), nil
}

// ensureEmailFree kiểm tra email chưa được user khác dùng
func (s *UserService) ensureEmailFree(ctx context.Context, email string, exclude uuid.UUID) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return errors.DBError("could not check email", err)
	}
	if count > 0 {
		return errors.Conflict("email", msgEmailTaken, nil)
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  hashed,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Conflict("email", msgEmailTaken, err)
		}
		s.logger.Error("create user failed: %v", err)
		return nil, errors.DBError("could not create user", err)
	}
	s.logger.Info("user %s created", user.ID)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return nil, errors.DBError("could not load user", err)
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context, query dto.UserQuery) ([]models.User, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB { return db }
	if query.Email != "" {
		email := normalizeEmail(query.Email)
		filter = func(db *gorm.DB) *gorm.DB { return db.Where("email = ?", email) }
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errors.DBError("could not count users", err)
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Scopes(filter, newestFirst, paginate(query.ListQuery)).Find(&users).Error; err != nil {
		return nil, 0, errors.DBError("could not list users", err)
	}
	return users, total, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*models.User, error) {
	return s.update(ctx, id, dto.PatchUserRequest{
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
		Email:     &req.Email,
	})
}

func (s *UserService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchUserRequest) (*models.User, error) {
	return s.update(ctx, id, req)
}

func (s *UserService) update(ctx context.Context, id uuid.UUID, in dto.PatchUserRequest) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if in.Password != nil {
		hashed, err := s.hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Conflict("email", msgEmailTaken, err)
		}
		s.logger.Error("update user %s failed: %v", id, err)
		return nil, errors.DBError("could not update user", err)
	}
	return user, nil
}

// Delete xóa user cùng mọi listing (khi là host), booking và review của họ
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if _, err := deleteListingsCascade(tx, "host_id = ?", id); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.User{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		s.logger.Error("delete user %s failed: %v", id, err)
		return errors.DBError("could not delete user", err)
	}
	if affected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
	}
	s.logger.Info("user %s deleted", id)
	return nil
}
