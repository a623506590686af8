package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBudgetPatterns(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name   string
		text   string
		amount float64
	}{
		{"currency suffix", "אני מחפש מחשב עד 4000 שח", 4000},
		{"shekel sign", "יש לי 3,500 ₪", 3500},
		{"hebrew budget word", "התקציב שלי הוא 5000", 5000},
		{"english budget word", "my budget is 4500", 4500},
		{"up to", "up to 3000 for a laptop", 3000},
		{"around", "בסביבות 6000 למחשב", 6000},
		{"bare number", "מחשב נייד 4000", 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := e.Extract(tt.text)
			assert.True(t, state.HasBudget)
			assert.Equal(t, tt.amount, state.BudgetAmount)
			assert.False(t, state.IsMinimumBudget)
		})
	}
}

func TestExtractMinimumBudget(t *testing.T) {
	e := NewExtractor()

	state := e.Extract("מחשב גיימינג 3000 ומעלה")
	assert.True(t, state.HasBudget)
	assert.True(t, state.IsMinimumBudget)
	assert.Equal(t, float64(30000), state.BudgetAmount)

	// A small floor still widens to the cap.
	state = e.Extract("משהו 500 ומעלה")
	assert.True(t, state.IsMinimumBudget)
	assert.Equal(t, float64(10000), state.BudgetAmount)
}

func TestExtractBudgetMaximumForms(t *testing.T) {
	e := NewExtractor()

	// Each text carries a decoy in-range number before the real amount, so
	// only the anchored maximum pattern can pick the right one.
	tests := []struct {
		name   string
		text   string
		amount float64
	}{
		{"full form", "ראיתי 100 דגמים, מקסימום 5000", 5000},
		{"short form", "אוכל להוסיף 200 אם צריך, מקס 4000", 4000},
		{"adjective form", "יש בערך 100 דגמים, מחיר מקסימלי של 4500", 4500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := e.Extract(tt.text)
			assert.True(t, state.HasBudget)
			assert.Equal(t, tt.amount, state.BudgetAmount)
		})
	}
}

func TestBareNumberGuards(t *testing.T) {
	e := NewExtractor()

	// A number glued to a technical unit is a spec, not a price.
	state := e.Extract("laptop with 512 gb storage")
	assert.False(t, state.HasBudget)

	// Out-of-range numbers are ignored.
	state = e.Extract("מחשב 20")
	assert.False(t, state.HasBudget)
}

func TestExtractProductTypeAndCategory(t *testing.T) {
	e := NewExtractor()

	state := e.Extract("אני צריך מחשב נייד ללימודים")
	assert.True(t, state.HasProductType)
	assert.Equal(t, "laptop", state.ProductType)
	assert.True(t, state.HasCategory)
	assert.Equal(t, "computer", state.Category)

	state = e.Extract("מחשב נייח לגיימינג")
	assert.Equal(t, "desktop", state.ProductType)

	// A pure accessory request keeps the accessory as the category.
	state = e.Extract("אני מחפש עכבר")
	assert.True(t, state.HasCategory)
	assert.Equal(t, "mouse", state.Category)
	assert.Empty(t, state.RequestedAccessory)
}

func TestAccessoryBundledWithComputer(t *testing.T) {
	e := NewExtractor()

	state := e.Extract("מחשב נייד לסטודנט ועכבר בתקציב 4000")
	assert.Equal(t, "computer", state.Category)
	assert.Equal(t, "mouse", state.RequestedAccessory)
}

func TestExtractUseCases(t *testing.T) {
	e := NewExtractor()

	state := e.Extract("אני סטודנט וגם אוהב משחקים")
	assert.True(t, state.HasUseCase)
	assert.Contains(t, state.UseCases, "student")
	assert.Contains(t, state.UseCases, "gaming")
}

func TestExtractBrandAndSpecs(t *testing.T) {
	e := NewExtractor()

	state := e.Extract("מחשב של לנובו עם 16gb ram")
	assert.True(t, state.HasBrand)
	assert.Equal(t, "Lenovo", state.Brand)
	assert.True(t, state.HasSpecs)
	assert.Equal(t, 16, state.Specs.MinRAMGB)

	state = e.Extract("something with an rtx card")
	assert.True(t, state.Specs.NeedsGPU)
}

func TestMergePrecedence(t *testing.T) {
	primary := SlotState{HasBudget: true, BudgetAmount: 3000}
	fallback := SlotState{
		HasBudget: true, BudgetAmount: 9000, IsMinimumBudget: true,
		HasUseCase: true, UseCases: []string{"student"},
		HasProductType: true, ProductType: "laptop",
	}

	merged := Merge(primary, fallback)

	// The fresh budget wins, gaps fill from history.
	assert.Equal(t, float64(3000), merged.BudgetAmount)
	assert.False(t, merged.IsMinimumBudget)
	assert.Equal(t, []string{"student"}, merged.UseCases)
	assert.Equal(t, "laptop", merged.ProductType)
}

func TestIsAccessoryCategory(t *testing.T) {
	assert.True(t, IsAccessoryCategory("mouse"))
	assert.False(t, IsAccessoryCategory("computer"))
	assert.False(t, IsAccessoryCategory(""))
}
