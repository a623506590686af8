package implementation

import (
	"context"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/mapper"
	"smartbyte-be/internal/model"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *RecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecommendationRepositoryImpl) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	m := r.mapper.ToModel(recommendation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recommendation = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	var models []*model.Recommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Recommendation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RecommendationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Recommendation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
