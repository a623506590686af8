package stage

import (
	"fmt"

	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/slots"
)

// clarifyingQuestion picks one Hebrew question for the highest-priority
// missing slot. One question per turn keeps the dialogue from feeling like
// an interrogation form.
func clarifyingQuestion(missing []string, state slots.SlotState) string {
	if len(missing) == 0 {
		return ""
	}

	noun := dialogue.HebrewNoun(state.ProductType, state.Category)

	switch missing[0] {
	case SlotUseCase:
		if slots.IsAccessoryCategory(state.Category) {
			return fmt.Sprintf("לאיזה שימוש עיקרי אתה מחפש %s? (גיימינג, עבודה, לימודים)", noun)
		}
		return fmt.Sprintf("לאיזה שימוש עיקרי אתה מחפש את ה%s? (לימודים, גיימינג, עבודה, פיתוח)", noun)
	case SlotBudget:
		return fmt.Sprintf("מה התקציב שמתאים לך ל%s?", noun)
	case SlotProductType:
		return productTypeQuestion(state)
	}
	return ""
}

// productTypeQuestion frames laptop-vs-desktop around what we already know
// about the customer.
func productTypeQuestion(state slots.SlotState) string {
	for _, uc := range state.UseCases {
		switch uc {
		case "student":
			return "אתה מעדיף מחשב נייד שקל לקחת ללימודים, או מחשב נייח לבית?"
		case "gaming":
			return "אתה מחפש מחשב נייח חזק לגיימינג, או מחשב נייד לשחק מכל מקום?"
		}
	}
	return "אתה מחפש מחשב נייד או מחשב נייח?"
}
