package prompt

import (
	"strings"
	"testing"

	"smartbyte-be/internal/entity"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"

	"github.com/stretchr/testify/assert"
)

func sampleLaptop() *entity.Product {
	return &entity.Product{
		SKU: "LT-1", Name: "IdeaPad Slim 3", Brand: "Lenovo",
		ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
		Price: 2290, Stock: 14,
		Specs: map[string]interface{}{
			"cpu": "Core i5-1235U", "ram_gb": float64(16), "storage_gb": float64(512),
		},
	}
}

func TestGuardedPromptContainsOnlyCatalogFacts(t *testing.T) {
	b := NewBuilder()
	main := sampleLaptop()
	upsell := &entity.Product{
		SKU: "AC-1", Name: "G305", Brand: "Logitech",
		ProductType: entity.ProductTypeAccessory, Category: "mouse",
		Price: 199, Stock: 30,
	}

	p := b.Guarded(archetype.Student, archetype.Profile(archetype.Student), []*entity.Product{main}, main, upsell)

	assert.Contains(t, p, "Lenovo IdeaPad Slim 3")
	assert.Contains(t, p, "LT-1")
	assert.Contains(t, p, "2290")
	assert.Contains(t, p, "Logitech G305")
	assert.Contains(t, p, "ONLY recommend products from the list below")
	assert.Contains(t, p, archetype.Profile(archetype.Student).Description)
}

func TestGuardedPromptWithoutUpsell(t *testing.T) {
	b := NewBuilder()
	main := sampleLaptop()

	p := b.Guarded(archetype.Other, archetype.Profile(archetype.Other), []*entity.Product{main}, main, nil)
	assert.Contains(t, p, "No accessory available")
}

func TestClarifyingPromptEmbedsQuestion(t *testing.T) {
	b := NewBuilder()

	p := b.Clarifying(archetype.Other, []string{"budget"}, "מה התקציב שלך?")
	assert.Contains(t, p, "מה התקציב שלך?")
	assert.Contains(t, p, "budget")
}

func TestNoMatchReplyMentionsBudgetAndNoun(t *testing.T) {
	b := NewBuilder()

	state := slots.SlotState{
		HasBudget: true, BudgetAmount: 4000,
		HasProductType: true, ProductType: "laptop",
	}
	reply := b.NoMatchReply(state)
	assert.Contains(t, reply, "מחשב נייד")
	assert.Contains(t, reply, "4000")

	// Without a budget the price clause is dropped.
	reply = b.NoMatchReply(slots.SlotState{})
	assert.NotContains(t, reply, "₪,")
	assert.Contains(t, reply, "מחשב")
}

func TestTemplateRecommendationStatesFacts(t *testing.T) {
	b := NewBuilder()
	main := sampleLaptop()
	upsell := &entity.Product{
		SKU: "AC-1", Name: "G305", Brand: "Logitech",
		ProductType: entity.ProductTypeAccessory, Category: "mouse",
		Price: 199, Stock: 30,
	}

	msg := b.TemplateRecommendation(main, upsell, archetype.Student, archetype.Profile(archetype.Student))

	assert.Contains(t, msg, "Lenovo IdeaPad Slim 3")
	assert.Contains(t, msg, "2290 ₪")
	assert.Contains(t, msg, "16GB")
	assert.Contains(t, msg, "512GB")
	assert.Contains(t, msg, "G305")
	assert.Contains(t, msg, "199 ₪")
}

func TestTemplateRecommendationWithoutSpecsOrUpsell(t *testing.T) {
	b := NewBuilder()
	main := sampleLaptop()
	main.Specs = nil

	msg := b.TemplateRecommendation(main, nil, archetype.Other, archetype.Profile(archetype.Other))
	assert.Contains(t, msg, "2290 ₪")
	assert.False(t, strings.Contains(msg, "כדי להשלים"))
}
