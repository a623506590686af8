package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation records one product recommendation given to a customer,
// including the upsell that rode along with it, if any.
type Recommendation struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	ProductId       uuid.UUID
	UpsellProductId *uuid.UUID
	CustomerType    string
	Message         string
	CreatedAt       time.Time
}
