// Package catalogfilter narrows the product catalog to the items worth
// showing a specific customer. The generation layer only ever sees what
// passes this filter, which is the main guardrail against recommending
// out-of-stock or unsuitable hardware.
package catalogfilter

import (
	"context"
	"strings"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"
)

var gamingKeywords = []string{
	"gaming", "gamer", "game", "games",
	"גיימינג", "גיימר", "משחקים", "משחק",
}

var integratedGPUMarkers = []string{"vega", "uhd", "iris"}
var dedicatedGPUMarkers = []string{"rtx", "radeon", "nvidia", "geforce"}

// Filter matches catalog items against a customer's archetype and slots.
type Filter struct {
	products contract.ProductRepository
	log      logger.ILogger
}

func NewFilter(products contract.ProductRepository, log logger.ILogger) *Filter {
	return &Filter{products: products, log: log}
}

// Find returns up to limit in-stock products for this customer, cheapest
// first. An empty result is returned as-is: suggesting something unsuitable
// is worse than admitting we have nothing.
func (f *Filter) Find(ctx context.Context, arch archetype.Archetype, message string, state slots.SlotState, limit int) ([]*entity.Product, error) {
	filter := contract.ProductFilter{
		StockMin: 1,
	}

	if state.HasBudget {
		filter.PriceMax = state.BudgetAmount
		if state.IsMinimumBudget {
			// "X and up" keeps the original floor as a lower bound too.
			filter.PriceMin = state.BudgetAmount / 10
		}
	}
	if state.HasProductType {
		filter.ProductType = state.ProductType
	}
	if state.HasCategory {
		filter.Category = state.Category
	}
	if state.HasBrand {
		filter.Brand = state.Brand
	}

	candidates, err := f.products.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}

	matched := f.applySpecGates(candidates, arch, message, state)

	f.log.Debug("CatalogFilter", "catalog filtered", map[string]interface{}{
		"archetype":  string(arch),
		"candidates": len(candidates),
		"matched":    len(matched),
		"filter":     filter,
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// applySpecGates enforces hardware floors for demanding archetypes. Gates
// only judge computers; accessories and anything without specs pass through
// untouched.
func (f *Filter) applySpecGates(products []*entity.Product, arch archetype.Archetype, message string, state slots.SlotState) []*entity.Product {
	gamingMentioned := containsAny(strings.ToLower(message), gamingKeywords)
	if arch != archetype.Engineer && arch != archetype.Gamer && !gamingMentioned {
		return products
	}

	ramFloor := 0
	if arch == archetype.Engineer {
		ramFloor = 16
	}
	if state.HasSpecs && state.Specs.MinRAMGB > ramFloor {
		ramFloor = state.Specs.MinRAMGB
	}
	needsGPU := arch == archetype.Gamer || gamingMentioned

	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !p.IsComputer() || p.Specs == nil {
			matched = append(matched, p)
			continue
		}
		if ramFloor > 0 && p.RAMGB() < ramFloor {
			continue
		}
		if needsGPU && arch != archetype.Engineer && !hasDedicatedGPU(p.GPU()) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// hasDedicatedGPU recognizes discrete cards by vendor markers and rejects
// integrated chips even when a vendor name appears in the string
// ("AMD Radeon Vega 8" is integrated).
func hasDedicatedGPU(gpu string) bool {
	g := strings.ToLower(gpu)
	for _, marker := range integratedGPUMarkers {
		if strings.Contains(g, marker) {
			return false
		}
	}
	for _, marker := range dedicatedGPUMarkers {
		if strings.Contains(g, marker) {
			return true
		}
	}
	return false
}

func containsAny(t string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
