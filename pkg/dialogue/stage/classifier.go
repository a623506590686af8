// Package stage decides where the conversation stands: what the customer
// already told us, what is still missing, and which question to ask next.
package stage

import (
	"regexp"
	"strings"

	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/slots"
)

// Stage is the dialogue state-machine position. Derived each turn, never
// stored.
type Stage string

const (
	StageGreeting              Stage = "greeting"
	StageUnderstandingNeeds    Stage = "understanding_needs"
	StageClarifyingBudget      Stage = "clarifying_budget"
	StageClarifyingPreferences Stage = "clarifying_preferences"
	StageReadyToRecommend      Stage = "ready_to_recommend"
	StageRecommendationGiven   Stage = "recommendation_given"
	StageOffTopic              Stage = "off_topic"
)

// Slot names used in MissingSlots, in priority order.
const (
	SlotUseCase     = "use_case"
	SlotBudget      = "budget"
	SlotProductType = "product_type"
)

// Analysis is the outcome of one turn's state classification.
type Analysis struct {
	Stage              Stage
	MissingSlots       []string
	HasEnoughInfo      bool
	SuggestedQuestion  string
	IsProductInquiry   bool
	NeedsClarification bool
	RedirectNeeded     bool
	Slots              slots.SlotState
}

// Topic-gate vocabulary: any hit keeps the turn in scope. A 3-6 digit run
// also passes, because it is almost certainly an answer to a numeric
// question we just asked.
var topicKeywords = []string{
	// computers
	"computer", "laptop", "desktop", "pc", "notebook", "tower",
	"מחשב", "לפטופ", "נייד", "נייח",
	// purchase intent
	"buy", "purchase", "need", "looking for", "want", "recommend",
	"קנייה", "צריך", "מחפש", "רוצה", "המלצה",
	// specs
	"ram", "cpu", "gpu", "processor", "graphics", "storage",
	"זיכרון", "מעבד", "כרטיס מסך",
	// use cases
	"gaming", "work", "study", "office", "development",
	"גיימינג", "עבודה", "לימודים", "משרד", "פיתוח",
	// price
	"price", "cost", "budget", "cheap", "expensive",
	"מחיר", "תקציב", "זול", "יקר",
	// accessories
	"mouse", "keyboard", "monitor", "headset", "bag",
	"עכבר", "מקלדת", "מסך", "אוזניות", "תיק",
}

var (
	numericAnswerRe       = regexp.MustCompile(`\d{3,6}`)
	recommendationMarkers = []string{"recommend", "ממליץ", "המלצה"}
)

// Classifier merges current-turn and history-derived slot states and maps
// the result onto a conversation stage.
type Classifier struct {
	extractor *slots.Extractor
	log       logger.ILogger
}

func NewClassifier(extractor *slots.Extractor, log logger.ILogger) *Classifier {
	return &Classifier{extractor: extractor, log: log}
}

// Analyze runs one turn of state classification. The topic gate looks at the
// current message alone, so a customer drifting off-topic is caught even when
// the history is full of product talk.
func (c *Classifier) Analyze(currentMessage string, history []dialogue.Turn, priorArchetype string) Analysis {
	if !c.isProductRelated(currentMessage) {
		c.log.Debug("StageClassifier", "off-topic turn", map[string]interface{}{
			"prior_archetype": priorArchetype,
		})
		return Analysis{
			Stage:            StageOffTopic,
			IsProductInquiry: false,
			RedirectNeeded:   true,
		}
	}

	current := c.extractor.Extract(currentMessage)

	// History only fills the gaps the current message left open; a value
	// stated this turn always wins.
	merged := current
	if !current.HasBudget || !current.HasUseCase || !current.HasProductType || !current.HasCategory {
		merged = slots.Merge(current, c.extractor.Extract(dialogue.UserText(history)))
	}

	missing := missingSlots(merged)
	stage := c.deriveStage(merged, missing, history)

	question := ""
	if len(missing) > 0 {
		question = clarifyingQuestion(missing, merged)
	}

	c.log.Debug("StageClassifier", "turn analyzed", map[string]interface{}{
		"stage":           string(stage),
		"missing":         missing,
		"use_cases":       merged.UseCases,
		"budget":          merged.BudgetAmount,
		"product_type":    merged.ProductType,
		"category":        merged.Category,
		"prior_archetype": priorArchetype,
	})

	return Analysis{
		Stage:              stage,
		MissingSlots:       missing,
		HasEnoughInfo:      len(missing) == 0,
		SuggestedQuestion:  question,
		IsProductInquiry:   true,
		NeedsClarification: len(missing) > 0,
		Slots:              merged,
	}
}

func (c *Classifier) isProductRelated(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range topicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	// "3000" alone answers the budget question we just asked.
	return numericAnswerRe.MatchString(message)
}

// missingSlots applies the required-slot rule: a pure accessory request never
// needs a laptop/desktop choice.
func missingSlots(state slots.SlotState) []string {
	var missing []string
	if !state.HasUseCase {
		missing = append(missing, SlotUseCase)
	}
	if !state.HasBudget {
		missing = append(missing, SlotBudget)
	}
	if slots.IsAccessoryCategory(state.Category) {
		return missing
	}
	if !state.HasProductType {
		missing = append(missing, SlotProductType)
	}
	return missing
}

func (c *Classifier) deriveStage(state slots.SlotState, missing []string, history []dialogue.Turn) Stage {
	if len(history) == 0 {
		return StageGreeting
	}

	for _, turn := range history {
		if turn.Role != dialogue.RoleAssistant {
			continue
		}
		lower := strings.ToLower(turn.Text)
		for _, marker := range recommendationMarkers {
			if strings.Contains(lower, marker) {
				return StageRecommendationGiven
			}
		}
	}

	if len(missing) == 0 {
		return StageReadyToRecommend
	}

	switch missing[0] {
	case SlotUseCase:
		return StageUnderstandingNeeds
	case SlotBudget:
		return StageClarifyingBudget
	case SlotProductType:
		return StageClarifyingPreferences
	}
	return StageUnderstandingNeeds
}
