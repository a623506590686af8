package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Brand       string         `gorm:"type:varchar(100);not null;index"`
	ProductType string         `gorm:"type:varchar(50);not null;index"`
	Category    string         `gorm:"type:varchar(100);not null;index"`
	Price       float64        `gorm:"not null;index"`
	Stock       int            `gorm:"not null;default:0;index"`
	Specs       datatypes.JSON `gorm:"type:jsonb"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
