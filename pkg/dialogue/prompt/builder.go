// Package prompt builds the system prompts and canned Hebrew replies of the
// sales assistant. Everything the generator is allowed to say about a product
// is injected here from catalog rows; the prompts forbid anything else.
package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"smartbyte-be/internal/entity"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/slots"
)

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Clarifying builds the system prompt for turns where information is still
// missing and the assistant should ask exactly one question.
func (b *Builder) Clarifying(arch archetype.Archetype, missing []string, question string) string {
	return fmt.Sprintf(`You are a friendly and professional computer store sales assistant.

CRITICAL: You MUST respond in Hebrew (עברית). All your responses must be in Hebrew language.

SITUATION: You're helping a customer find the right computer, but you need more information.

CUSTOMER TYPE: %s

MISSING INFORMATION: %s

YOUR TASK:
1. Acknowledge the customer's message warmly IN HEBREW
2. Ask the clarifying question naturally IN HEBREW: "%s"
3. Keep it conversational and friendly IN HEBREW
4. Don't overwhelm them - just ask ONE question
5. Make it feel like a helpful conversation, not an interrogation

REMEMBER:
- Respond ONLY in Hebrew
- Be warm, professional, and helpful
- Ask only what you need to know`, arch, strings.Join(missing, ", "), question)
}

// Guarded builds the recommendation system prompt. Only the products passed
// in may be named, at exactly the prices and specs shown.
func (b *Builder) Guarded(arch archetype.Archetype, profile archetype.RequirementProfile, products []*entity.Product, main, upsell *entity.Product) string {
	upsellSection := "No accessory available"
	if upsell != nil {
		upsellSection = fmt.Sprintf("%s\nPrice: %s ILS\nStock: %d units\nCategory: %s",
			upsell.DisplayName(), FormatPrice(upsell.Price), upsell.Stock, upsell.Category)
	}

	return fmt.Sprintf(`You are a professional computer store sales assistant helping a %s.

==================== CRITICAL RULES - YOU MUST OBEY ====================
1. You MUST respond in Hebrew (עברית) - this is mandatory
2. ONLY recommend products from the list below
3. ONLY mention the exact prices shown
4. ONLY mention the exact specifications shown
5. NEVER invent product names, prices, or specs
6. If asked about products not in the list, say "לא זמין במלאי" (not available in stock)
7. Stay focused on computers - redirect other topics politely IN HEBREW

AVAILABLE PRODUCTS IN STOCK:
%s

YOUR PRIMARY RECOMMENDATION:
Product: %s
SKU: %s
Price: %s ILS (exactly this price - do not round or change)
Stock: %d units available
Specifications:
%s

SUGGESTED ACCESSORY (optional upsell):
%s

CUSTOMER REQUIREMENTS:
%s

YOUR TASK (respond in Hebrew):
1. Explain why %s is perfect for this %s - IN HEBREW
2. Highlight 2-3 key specs that match their needs - IN HEBREW
3. State the exact price: %s ₪ (use ₪ symbol, not ILS)
4. Mention the accessory naturally if available - IN HEBREW
5. Keep response under 120 words
6. Sound natural and helpful, not robotic - IN HEBREW

REMEMBER:
- Respond ONLY in Hebrew
- Use ONLY the information provided above
- Do not create any information
- Use ₪ symbol for prices`,
		arch,
		b.productContext(products),
		main.DisplayName(),
		main.SKU,
		FormatPrice(main.Price),
		main.Stock,
		specsBlock(main),
		upsellSection,
		profile.Description,
		main.Name,
		arch,
		FormatPrice(main.Price),
	)
}

// productContext renders the allowed-products list, one numbered block per
// item, specs inlined as JSON.
func (b *Builder) productContext(products []*entity.Product) string {
	lines := make([]string, 0, len(products))
	for i, p := range products {
		specs := "N/A"
		if p.Specs != nil {
			if raw, err := json.Marshal(p.Specs); err == nil {
				specs = string(raw)
			}
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %s\n   Price: %s ILS | Stock: %d units\n   Specs: %s",
			i+1, p.SKU, p.DisplayName(), FormatPrice(p.Price), p.Stock, specs))
	}
	return strings.Join(lines, "\n")
}

func specsBlock(p *entity.Product) string {
	if p.Specs == nil {
		return "Standard specifications"
	}
	raw, err := json.MarshalIndent(p.Specs, "", "  ")
	if err != nil {
		return "Standard specifications"
	}
	return string(raw)
}

// OffTopicReply is the fixed redirection for conversations that drifted away
// from the store's business.
func (b *Builder) OffTopicReply() string {
	return "אני מעריך את ההודעה שלך! עם זאת, אני מתמחה בעזרה ללקוחות למצוא " +
		"את המחשב או האביזר המושלם לצרכים שלהם. " +
		"אשמח לעזור לך בכך! האם אתה מחפש מחשב נייד, מחשב נייח, " +
		"או אולי אביזר כלשהו היום?"
}

// NoMatchReply admits the catalog has nothing suitable and offers the
// customer concrete ways forward, phrased from what we know about them.
func (b *Builder) NoMatchReply(state slots.SlotState) string {
	productName := dialogue.HebrewNoun(state.ProductType, state.Category)

	var sb strings.Builder
	sb.WriteString("תודה על שיתוף הדרישות שלך! ")
	if state.HasBudget {
		sb.WriteString(fmt.Sprintf("בדקתי את המלאי הנוכחי שלנו עבור %s בטווח של %d ₪, ", productName, int(state.BudgetAmount)))
	} else {
		sb.WriteString(fmt.Sprintf("בדקתי את המלאי הנוכחי שלנו עבור %s, ", productName))
	}
	sb.WriteString("אבל למרבה הצער אין לי כרגע מוצרים במלאי שמתאימים בדיוק לכל הדרישות שלך.\n\n")
	sb.WriteString("עם זאת, יש לי כמה אפשרויות:\n")
	sb.WriteString("1. אוכל להראות לך מוצרים דומים שקרובים לצרכים שלך\n")
	sb.WriteString("2. נוכל להתאים את התקציב מעט כדי לראות יותר אפשרויות\n")
	sb.WriteString("3. נוכל לשקול סוג מוצר אחר (נייד מול נייח)\n\n")
	sb.WriteString("מה תעדיף?")
	return sb.String()
}

// TemplateRecommendation is the deterministic fallback used when generation
// fails. It states only catalog facts, so it needs no validation pass.
func (b *Builder) TemplateRecommendation(main, upsell *entity.Product, arch archetype.Archetype, profile archetype.RequirementProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("בהתבסס על הצרכים שלך כ%s, ", arch))
	sb.WriteString(fmt.Sprintf("אני ממליץ על %s ", main.DisplayName()))
	sb.WriteString(fmt.Sprintf("במחיר של %s ₪. ", FormatPrice(main.Price)))

	if main.Specs != nil {
		var keySpecs []string
		if cpu, ok := main.Specs["cpu"].(string); ok && cpu != "" {
			keySpecs = append(keySpecs, "מעבד "+cpu)
		}
		if ram := main.RAMGB(); ram > 0 {
			keySpecs = append(keySpecs, fmt.Sprintf("%dGB זיכרון RAM", ram))
		}
		if storage := storageGB(main); storage > 0 {
			keySpecs = append(keySpecs, fmt.Sprintf("%dGB אחסון", storage))
		}
		if len(keySpecs) > 0 {
			sb.WriteString(fmt.Sprintf("הוא כולל %s, שמספקים %s. ", strings.Join(keySpecs, ", "), profile.Description))
		}
	}

	if upsell != nil {
		sb.WriteString(fmt.Sprintf("\n\nכדי להשלים את המערכת שלך, אמליץ להוסיף את %s ", upsell.Name))
		sb.WriteString(fmt.Sprintf("(%s ₪). זה השלמה מצוינת למחשב החדש שלך!", FormatPrice(upsell.Price)))
	}

	return sb.String()
}

func storageGB(p *entity.Product) int {
	if p.Specs == nil {
		return 0
	}
	switch v := p.Specs["storage_gb"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// FormatPrice renders a price without trailing zeros: 2999 not 2999.00,
// 2999.5 kept as is.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
