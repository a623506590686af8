// Package upsell picks the one accessory that rides along with a computer
// recommendation. Selection is a fixed cascade, most specific signal first,
// and every tier only considers in-stock items within the accessory budget.
package upsell

import (
	"context"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"
)

// Selector chooses the accessory to bundle with a main recommendation.
type Selector struct {
	products  contract.ProductRepository
	extractor *slots.Extractor
	log       logger.ILogger
}

func NewSelector(products contract.ProductRepository, extractor *slots.Extractor, log logger.ILogger) *Selector {
	return &Selector{products: products, extractor: extractor, log: log}
}

// Select walks the cascade: the accessory the customer asked for outright,
// then one mentioned anywhere in the conversation, then the preference list
// for the main product and archetype, then the cheapest accessory at all.
// nil means skip the upsell entirely.
func (s *Selector) Select(ctx context.Context, mainProduct *entity.Product, arch archetype.Archetype, state slots.SlotState, history []dialogue.Turn, maxPrice float64) (*entity.Product, error) {
	if state.RequestedAccessory != "" {
		item, err := s.cheapestInCategory(ctx, state.RequestedAccessory, maxPrice)
		if err != nil || item != nil {
			s.logPick("requested accessory", item)
			return item, err
		}
	}

	if kind := s.accessoryFromHistory(history); kind != "" && kind != state.RequestedAccessory {
		item, err := s.cheapestInCategory(ctx, kind, maxPrice)
		if err != nil || item != nil {
			s.logPick("history mention", item)
			return item, err
		}
	}

	for _, category := range preferredCategories(mainProduct, arch) {
		item, err := s.cheapestInCategory(ctx, category, maxPrice)
		if err != nil {
			return nil, err
		}
		if item != nil {
			s.logPick("preference list", item)
			return item, nil
		}
	}

	item, err := s.cheapestAccessory(ctx, maxPrice)
	if err != nil {
		return nil, err
	}
	s.logPick("any accessory", item)
	return item, nil
}

// accessoryFromHistory scans past user turns for an accessory mention,
// oldest first.
func (s *Selector) accessoryFromHistory(history []dialogue.Turn) string {
	for _, turn := range history {
		if turn.Role != dialogue.RoleUser {
			continue
		}
		state := s.extractor.Extract(turn.Text)
		if state.RequestedAccessory != "" {
			return state.RequestedAccessory
		}
		if slots.IsAccessoryCategory(state.Category) {
			return state.Category
		}
	}
	return ""
}

func (s *Selector) cheapestInCategory(ctx context.Context, category string, maxPrice float64) (*entity.Product, error) {
	return s.firstMatch(ctx, contract.ProductFilter{
		ProductType: entity.ProductTypeAccessory,
		Category:    category,
		PriceMax:    maxPrice,
		StockMin:    1,
		Limit:       1,
	})
}

func (s *Selector) cheapestAccessory(ctx context.Context, maxPrice float64) (*entity.Product, error) {
	return s.firstMatch(ctx, contract.ProductFilter{
		ProductType: entity.ProductTypeAccessory,
		PriceMax:    maxPrice,
		StockMin:    1,
		Limit:       1,
	})
}

func (s *Selector) firstMatch(ctx context.Context, filter contract.ProductFilter) (*entity.Product, error) {
	items, err := s.products.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (s *Selector) logPick(tier string, item *entity.Product) {
	details := map[string]interface{}{"tier": tier}
	if item != nil {
		details["sku"] = item.SKU
		details["price"] = item.Price
	}
	s.log.Debug("UpsellSelector", "upsell selected", details)
}

// preferredCategories orders accessory categories by fit: archetype
// preferences get promoted ahead of the product-type defaults.
func preferredCategories(mainProduct *entity.Product, arch archetype.Archetype) []string {
	var categories []string

	switch mainProduct.ProductType {
	case entity.ProductTypeLaptop:
		categories = append(categories, "mouse", "bag", "headset")
	case entity.ProductTypeDesktop:
		categories = append(categories, "keyboard", "mouse", "headset")
	}

	switch arch {
	case archetype.Gamer:
		categories = promote(categories, "mouse", "headset")
	case archetype.Student:
		categories = promote(categories, "mouse", "bag")
	}

	return dedupe(categories)
}

func promote(categories []string, first, second string) []string {
	return append([]string{first, second}, categories...)
}

func dedupe(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := categories[:0]
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
