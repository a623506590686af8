package archetype

import (
	"strings"

	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/slots"
)

// minConfidentScore is the score floor below which we refuse to guess and
// fall back to Other with a clarifying question.
const minConfidentScore = 2

// Result is one classification outcome.
type Result struct {
	Archetype          Archetype
	Profile            RequirementProfile
	ClarifyingQuestion string
}

// Classifier scores a transcript against the archetype keyword tables. It
// shares the slot extractor with the stage classifier so both read the same
// vocabulary when deciding what is still unknown.
type Classifier struct {
	extractor *slots.Extractor
	log       logger.ILogger
}

func NewClassifier(extractor *slots.Extractor, log logger.ILogger) *Classifier {
	return &Classifier{extractor: extractor, log: log}
}

// Classify scores the whole conversation, history and current turn together.
// Ties break in favor of the archetype listed first in All.
func (c *Classifier) Classify(currentMessage string, history []dialogue.Turn) Result {
	text := strings.ToLower(strings.TrimSpace(dialogue.UserText(history) + " " + currentMessage))

	best, bestScore := Other, 0
	for _, a := range All {
		score := scoreText(text, keywords[a])
		if score > bestScore {
			best, bestScore = a, score
		}
	}

	c.log.Debug("ArchetypeClassifier", "conversation scored", map[string]interface{}{
		"archetype": string(best),
		"score":     bestScore,
	})

	if bestScore < minConfidentScore {
		return Result{
			Archetype:          Other,
			Profile:            Profile(Other),
			ClarifyingQuestion: c.clarifyingQuestion(text),
		}
	}

	return Result{
		Archetype:          best,
		Profile:            Profile(best),
		ClarifyingQuestion: c.clarifyingQuestion(text),
	}
}

func scoreText(text string, set keywordSet) int {
	score := 0
	for _, kw := range set.strong {
		if strings.Contains(text, kw) {
			score += 3
		}
	}
	for _, kw := range set.medium {
		if strings.Contains(text, kw) {
			score += 1
		}
	}
	return score
}

// clarifyingQuestion asks about the highest-value gap, use case first, then
// laptop-vs-desktop, then budget. Empty string means nothing is missing.
func (c *Classifier) clarifyingQuestion(text string) string {
	state := c.extractor.Extract(text)

	if !state.HasUseCase {
		return "מעולה! אשמח לעזור לך למצוא את המחשב המושלם. " +
			"למה בעיקר תשתמש במחשב? לדוגמה: לימודים, עבודה, גיימינג, או שימוש כללי בבית?"
	}
	if !state.HasProductType && !slots.IsAccessoryCategory(state.Category) {
		return "האם תעדיף מחשב נייד או מחשב נייח (יותר כוח תמורת המחיר)?"
	}
	if !state.HasBudget {
		return "מעולה! מה טווח התקציב שלך? זה יעזור לי להראות לך את האפשרויות הטובות ביותר."
	}
	return ""
}
