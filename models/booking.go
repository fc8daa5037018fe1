package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingStatus string

// Booking status
const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"bookingId"`
	ListingID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"listingId"`
	Listing    Listing         `gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"listing"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	User       User            `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"startDate"`
	EndDate    time.Time       `gorm:"type:date;not null" json:"endDate"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalPrice"` // Luôn do server tính
	Status     BookingStatus   `gorm:"type:varchar(10);not null;default:pending" json:"status"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}
