package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User là tài khoản người dùng: chủ nhà (host) hoặc khách đặt phòng (booker)
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	FirstName string    `gorm:"type:varchar(150);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(150);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
