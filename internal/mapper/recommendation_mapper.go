package mapper

import (
	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/model"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(r *model.Recommendation) *entity.Recommendation {
	if r == nil {
		return nil
	}

	return &entity.Recommendation{
		Id:              r.Id,
		SessionId:       r.SessionId,
		ProductId:       r.ProductId,
		UpsellProductId: r.UpsellProductId,
		CustomerType:    r.CustomerType,
		Message:         r.Message,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RecommendationMapper) ToModel(r *entity.Recommendation) *model.Recommendation {
	if r == nil {
		return nil
	}

	return &model.Recommendation{
		Id:              r.Id,
		SessionId:       r.SessionId,
		ProductId:       r.ProductId,
		UpsellProductId: r.UpsellProductId,
		CustomerType:    r.CustomerType,
		Message:         r.Message,
		CreatedAt:       r.CreatedAt,
	}
}
