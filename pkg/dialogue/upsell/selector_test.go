package upsell

import (
	"context"
	"testing"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepository struct {
	products []*entity.Product
}

func (f *fakeProductRepository) Filter(_ context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	var cheapest *entity.Product
	for _, p := range f.products {
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.PriceMax > 0 && p.Price > filter.PriceMax {
			continue
		}
		if p.Stock < filter.StockMin {
			continue
		}
		if cheapest == nil || p.Price < cheapest.Price {
			cheapest = p
		}
	}
	if cheapest == nil {
		return nil, nil
	}
	return []*entity.Product{cheapest}, nil
}

func (f *fakeProductRepository) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepository) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepository) Delete(context.Context, uuid.UUID) error       { return nil }
func (f *fakeProductRepository) UpsertBySKU(context.Context, *entity.Product) (bool, error) {
	return false, nil
}
func (f *fakeProductRepository) FindOne(context.Context, ...specification.Specification) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepository) FindAll(context.Context, ...specification.Specification) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepository) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

func accessory(sku, category string, price float64, stock int) *entity.Product {
	return &entity.Product{
		SKU: sku, Name: sku, Brand: "Logitech",
		ProductType: entity.ProductTypeAccessory, Category: category,
		Price: price, Stock: stock,
	}
}

func laptop() *entity.Product {
	return &entity.Product{
		SKU: "LT-1", Name: "IdeaPad", Brand: "Lenovo",
		ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
		Price: 3000, Stock: 3,
	}
}

func newSelector(products ...*entity.Product) *Selector {
	return NewSelector(&fakeProductRepository{products: products}, slots.NewExtractor(), logger.NopLogger{})
}

func TestRequestedAccessoryWinsFirst(t *testing.T) {
	s := newSelector(
		accessory("AC-MOUSE", "mouse", 150, 10),
		accessory("AC-BAG", "bag", 100, 10),
	)

	state := slots.SlotState{RequestedAccessory: "mouse"}
	item, err := s.Select(context.Background(), laptop(), archetype.Student, state, nil, 1000)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "AC-MOUSE", item.SKU)
}

func TestHistoryMentionIsSecondTier(t *testing.T) {
	s := newSelector(
		accessory("AC-HS", "headset", 400, 5),
		accessory("AC-MOUSE", "mouse", 150, 10),
	)

	history := []dialogue.Turn{
		{Role: dialogue.RoleUser, Text: "אני מחפש גם אוזניות"},
		{Role: dialogue.RoleAssistant, Text: "בטח"},
	}

	item, err := s.Select(context.Background(), laptop(), archetype.Other, slots.SlotState{}, history, 1000)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "AC-HS", item.SKU)
}

func TestPreferenceListByProductTypeAndArchetype(t *testing.T) {
	// Laptop defaults start with mouse; no mouse in stock, so bag is next
	// for a student.
	s := newSelector(
		accessory("AC-BAG", "bag", 120, 8),
		accessory("AC-HS", "headset", 300, 8),
	)

	item, err := s.Select(context.Background(), laptop(), archetype.Student, slots.SlotState{}, nil, 1000)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "AC-BAG", item.SKU)
}

func TestGamerPromotesHeadsetOverBag(t *testing.T) {
	s := newSelector(
		accessory("AC-BAG", "bag", 100, 8),
		accessory("AC-HS", "headset", 300, 8),
	)

	item, err := s.Select(context.Background(), laptop(), archetype.Gamer, slots.SlotState{}, nil, 1000)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "AC-HS", item.SKU)
}

func TestFallbackToCheapestAccessory(t *testing.T) {
	desktop := &entity.Product{
		SKU: "DT-1", Name: "Tower", Brand: "Dell",
		ProductType: entity.ProductTypeDesktop, Category: entity.CategoryComputer,
		Price: 5000, Stock: 2,
	}
	// Nothing from the desktop preference list is stocked, only a monitor.
	s := newSelector(accessory("AC-MON", "monitor", 900, 4))

	item, err := s.Select(context.Background(), desktop, archetype.Business, slots.SlotState{}, nil, 1000)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "AC-MON", item.SKU)
}

func TestBudgetAndStockExcludeCandidates(t *testing.T) {
	s := newSelector(
		accessory("AC-EXPENSIVE", "mouse", 1500, 10),
		accessory("AC-OUT", "bag", 100, 0),
	)

	item, err := s.Select(context.Background(), laptop(), archetype.Student, slots.SlotState{}, nil, 1000)
	require.NoError(t, err)
	assert.Nil(t, item)
}
