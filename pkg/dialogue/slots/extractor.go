package slots

import (
	"regexp"
	"strconv"
	"strings"
)

// SpecRequirements holds explicit hardware constraints found in the text.
type SpecRequirements struct {
	MinRAMGB int
	NeedsGPU bool
}

// SlotState is the structured intent extracted from one blob of text.
// It is transient: recomputed every turn, never persisted on its own.
type SlotState struct {
	HasUseCase bool
	UseCases   []string

	HasBudget       bool
	BudgetAmount    float64
	IsMinimumBudget bool

	HasProductType bool
	ProductType    string // "laptop" | "desktop"

	HasCategory bool
	Category    string // "computer" or an accessory kind

	// RequestedAccessory is set only when a computer request bundles an
	// accessory mention; the accessory never becomes the primary category.
	RequestedAccessory string

	HasBrand bool
	Brand    string

	HasSpecs bool
	Specs    SpecRequirements
}

const (
	bareBudgetMin    = 50
	bareBudgetMax    = 50000
	minimumBudgetCap = 10000
)

var (
	numGroup = `(\d{1,3}(?:,\d{3})+|\d{2,6})`
	currency = `(?:₪|ש"ח|ש״ח|שח|שקלים|שקל|shekels|shekel|nis|ils)`

	// Most specific first; the first matching template wins.
	minimumBudgetRe = regexp.MustCompile(numGroup + `\s*` + currency + `?\s*(?:ומעלה|and up)`)
	budgetPatterns  = []*regexp.Regexp{
		regexp.MustCompile(numGroup + `\s*` + currency),
		regexp.MustCompile(`תקציב\D{0,16}` + numGroup),
		regexp.MustCompile(`עד\s*` + numGroup),
		regexp.MustCompile(`בסביבות\s*` + numGroup),
		regexp.MustCompile(`סביב\s*` + numGroup),
		regexp.MustCompile(`מקס(?:ימום|ימלי)?\s*(?:של\s*)?` + numGroup),
		regexp.MustCompile(`budget\D{0,16}` + numGroup),
		regexp.MustCompile(`up to\s*` + numGroup),
		regexp.MustCompile(`around\s*` + numGroup),
		regexp.MustCompile(`max(?:imum)?\s*` + numGroup),
	}
	bareNumberRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d{2,6}`)

	// Both orderings: "16GB RAM" and "RAM 16GB".
	ramRe = regexp.MustCompile(`(\d+)\s*(?:gb|גיגה)\s*(?:ram|ראם)|(?:ram|ראם)\s*(\d+)\s*(?:gb|גיגה)`)
)

// Extractor turns free text into a SlotState. It is pure and total: any
// string input yields a state, absent information degrades to unset slots.
// The same instance is shared by the stage and archetype classifiers so
// both sides read from one vocabulary.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses one lower-cased view of the text into a SlotState.
func (e *Extractor) Extract(text string) SlotState {
	t := strings.ToLower(text)

	var state SlotState
	e.extractUseCases(t, &state)
	e.extractBudget(t, &state)
	e.extractProductType(t, &state)
	e.extractCategory(t, &state)
	e.extractBrand(t, &state)
	e.extractSpecs(t, &state)
	return state
}

func (e *Extractor) extractUseCases(t string, state *SlotState) {
	for _, bucket := range UseCaseBuckets {
		if containsAny(t, bucket.Keywords) {
			state.HasUseCase = true
			state.UseCases = append(state.UseCases, bucket.ID)
		}
	}
}

func (e *Extractor) extractBudget(t string, state *SlotState) {
	if m := minimumBudgetRe.FindStringSubmatch(t); m != nil {
		amount, ok := parseAmount(m[1])
		if ok {
			// "X and up" widens the search: the ceiling becomes ten times
			// the stated floor, never below the minimum-budget cap.
			amount *= 10
			if amount < minimumBudgetCap {
				amount = minimumBudgetCap
			}
			state.HasBudget = true
			state.BudgetAmount = amount
			state.IsMinimumBudget = true
			return
		}
	}

	for _, re := range budgetPatterns {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if amount, ok := parseAmount(m[1]); ok {
			state.HasBudget = true
			state.BudgetAmount = amount
			return
		}
	}

	// Bare numbers are budget candidates only inside a sane price range and
	// only when they are not glued to a technical unit (16GB is not a price).
	for _, loc := range bareNumberRe.FindAllStringIndex(t, -1) {
		raw := t[loc[0]:loc[1]]
		amount, ok := parseAmount(raw)
		if !ok || amount < bareBudgetMin || amount > bareBudgetMax {
			continue
		}
		if adjacentToTechnicalUnit(t, loc[0], loc[1]) {
			continue
		}
		state.HasBudget = true
		state.BudgetAmount = amount
		return
	}
}

func (e *Extractor) extractProductType(t string, state *SlotState) {
	// Laptop keywords are checked first; the first family hit wins.
	if containsAny(t, laptopKeywords) {
		state.HasProductType = true
		state.ProductType = "laptop"
		return
	}
	if containsAny(t, desktopKeywords) {
		state.HasProductType = true
		state.ProductType = "desktop"
	}
}

func (e *Extractor) extractCategory(t string, state *SlotState) {
	accessory := ""
	for _, kind := range AccessoryKinds {
		if containsAny(t, kind.Keywords) {
			accessory = kind.Category
			break
		}
	}

	if containsAny(t, computerKeywords) {
		state.HasCategory = true
		state.Category = "computer"
		// An accessory mentioned alongside a computer request is an upsell
		// hint, never the primary category.
		state.RequestedAccessory = accessory
		return
	}

	if accessory != "" {
		state.HasCategory = true
		state.Category = accessory
	}
}

func (e *Extractor) extractBrand(t string, state *SlotState) {
	for _, brand := range brandVocabulary {
		if containsAny(t, brand.Keywords) {
			state.HasBrand = true
			state.Brand = brand.Name
			return
		}
	}
}

func (e *Extractor) extractSpecs(t string, state *SlotState) {
	if m := ramRe.FindStringSubmatch(t); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if ram, err := strconv.Atoi(raw); err == nil {
			state.Specs.MinRAMGB = ram
			state.HasSpecs = true
		}
	}

	if containsAny(t, gpuNeedKeywords) {
		state.Specs.NeedsGPU = true
		state.HasSpecs = true
	}
}

// IsAccessoryCategory reports whether the category is a pure accessory kind
// (as opposed to "computer" or unset).
func IsAccessoryCategory(category string) bool {
	for _, kind := range AccessoryKinds {
		if kind.Category == category {
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

func parseAmount(raw string) (float64, bool) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(raw)
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func adjacentToTechnicalUnit(t string, start, end int) bool {
	after := strings.TrimLeft(t[end:], " ")
	for _, unit := range technicalUnitTokens {
		if strings.HasPrefix(after, unit) {
			return true
		}
	}

	before := strings.TrimRight(t[:start], " ")
	for _, unit := range technicalUnitTokens {
		if strings.HasSuffix(before, unit) {
			return true
		}
	}
	return false
}
