package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Listing struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"listingId"`
	HostID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"hostId"`
	Host          User            `gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"host"` // Chủ nhà, xóa user thì xóa luôn listing
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Location      string          `gorm:"type:varchar(255);not null" json:"location"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"pricePerNight"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
