package catalogfilter

import (
	"context"
	"testing"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepository serves a canned product list and records the last
// filter it was asked to run.
type fakeProductRepository struct {
	products   []*entity.Product
	lastFilter contract.ProductFilter
}

func (f *fakeProductRepository) Filter(_ context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	f.lastFilter = filter
	var out []*entity.Product
	for _, p := range f.products {
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.PriceMax > 0 && p.Price > filter.PriceMax {
			continue
		}
		if filter.PriceMin > 0 && p.Price < filter.PriceMin {
			continue
		}
		if p.Stock < filter.StockMin {
			continue
		}
		out = append(out, p)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
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

func computer(sku string, price float64, ramGB int, gpu string) *entity.Product {
	return &entity.Product{
		SKU: sku, Name: sku, Brand: "Lenovo",
		ProductType: entity.ProductTypeLaptop,
		Category:    entity.CategoryComputer,
		Price:       price, Stock: 5,
		Specs: map[string]interface{}{"ram_gb": float64(ramGB), "gpu": gpu},
	}
}

func newFilter(products ...*entity.Product) (*Filter, *fakeProductRepository) {
	repo := &fakeProductRepository{products: products}
	return NewFilter(repo, logger.NopLogger{}), repo
}

func TestFindBuildsFilterFromSlots(t *testing.T) {
	f, repo := newFilter(computer("LT-1", 3000, 16, "Intel UHD"))

	state := slots.SlotState{
		HasBudget: true, BudgetAmount: 4000,
		HasProductType: true, ProductType: "laptop",
		HasCategory: true, Category: "computer",
		HasBrand: true, Brand: "Lenovo",
	}

	products, err := f.Find(context.Background(), archetype.Student, "מחשב נייד", state, 5)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, repo.lastFilter.StockMin)
	assert.Equal(t, float64(4000), repo.lastFilter.PriceMax)
	assert.Equal(t, "laptop", repo.lastFilter.ProductType)
	assert.Equal(t, "Lenovo", repo.lastFilter.Brand)
}

func TestMinimumBudgetSetsPriceFloor(t *testing.T) {
	f, repo := newFilter()

	state := slots.SlotState{HasBudget: true, BudgetAmount: 30000, IsMinimumBudget: true}
	_, err := f.Find(context.Background(), archetype.Other, "", state, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(30000), repo.lastFilter.PriceMax)
	assert.Equal(t, float64(3000), repo.lastFilter.PriceMin)
}

func TestEngineerRAMGate(t *testing.T) {
	f, _ := newFilter(
		computer("LT-LOW", 2000, 8, "Intel UHD"),
		computer("LT-HIGH", 4000, 16, "Intel UHD"),
	)

	products, err := f.Find(context.Background(), archetype.Engineer, "מחשב לפיתוח", slots.SlotState{}, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "LT-HIGH", products[0].SKU)
}

func TestGamerGPUGate(t *testing.T) {
	f, _ := newFilter(
		computer("LT-VEGA", 3000, 16, "AMD Radeon Vega 8"),
		computer("LT-RTX", 6000, 16, "NVIDIA RTX 4060"),
		computer("LT-NOSPEC", 2500, 16, ""),
	)

	products, err := f.Find(context.Background(), archetype.Gamer, "מחשב", slots.SlotState{}, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	// Vega is integrated even though "Radeon" appears in the name.
	assert.Equal(t, "LT-RTX", products[0].SKU)
}

func TestGamingMentionTriggersGPUGateForOthers(t *testing.T) {
	f, _ := newFilter(
		computer("LT-UHD", 3000, 16, "Intel UHD"),
		computer("LT-RTX", 6000, 16, "GeForce RTX 4060"),
	)

	products, err := f.Find(context.Background(), archetype.Student, "מחשב שטוב גם לגיימינג", slots.SlotState{}, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "LT-RTX", products[0].SKU)
}

func TestEngineerExemptFromGPUGate(t *testing.T) {
	f, _ := newFilter(
		computer("LT-UHD", 4000, 32, "Intel UHD"),
	)

	// An engineer who mentions gaming still gets integrated-GPU machines;
	// only the RAM floor applies.
	products, err := f.Find(context.Background(), archetype.Engineer, "מחשב לפיתוח וקצת גיימינג", slots.SlotState{}, 5)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestNonComputersAndSpeclessItemsPassGates(t *testing.T) {
	mouse := &entity.Product{
		SKU: "AC-1", Name: "G305", Brand: "Logitech",
		ProductType: entity.ProductTypeAccessory, Category: "mouse",
		Price: 200, Stock: 10,
	}
	bare := &entity.Product{
		SKU: "LT-BARE", Name: "Bare", Brand: "HP",
		ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
		Price: 3000, Stock: 2,
	}
	f, _ := newFilter(mouse, bare)

	products, err := f.Find(context.Background(), archetype.Gamer, "גיימינג", slots.SlotState{}, 5)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestExplicitRAMRequirementRaisesFloor(t *testing.T) {
	f, _ := newFilter(
		computer("LT-16", 3000, 16, "RTX 3050"),
		computer("LT-32", 6000, 32, "RTX 4060"),
	)

	state := slots.SlotState{HasSpecs: true, Specs: slots.SpecRequirements{MinRAMGB: 32}}
	products, err := f.Find(context.Background(), archetype.Gamer, "", state, 5)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "LT-32", products[0].SKU)
}

func TestEmptyResultReturnedAsIs(t *testing.T) {
	f, _ := newFilter()

	products, err := f.Find(context.Background(), archetype.Student, "מחשב", slots.SlotState{}, 5)
	require.NoError(t, err)
	assert.Empty(t, products)
}
