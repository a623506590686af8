package contract

import (
	"context"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/repository/specification"
)

type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.Recommendation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
