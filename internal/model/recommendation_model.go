package model

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductId       uuid.UUID  `gorm:"type:uuid;not null"`
	UpsellProductId *uuid.UUID `gorm:"type:uuid"`
	CustomerType    string     `gorm:"type:varchar(50);not null"`
	Message         string     `gorm:"type:text;not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
