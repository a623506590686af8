// Package dialogue holds the shared vocabulary of the sales-dialogue
// pipeline: conversation turns and the bilingual product nouns used when
// talking back to the customer.
package dialogue

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is one message in a conversation, oldest first in histories.
type Turn struct {
	Role      string
	Text      string
	Timestamp time.Time
}

// UserText concatenates the text of all user turns, space separated.
func UserText(history []Turn) string {
	out := ""
	for _, turn := range history {
		if turn.Role != RoleUser {
			continue
		}
		if out != "" {
			out += " "
		}
		out += turn.Text
	}
	return out
}

var hebrewNouns = map[string]string{
	"laptop":   "מחשב נייד",
	"desktop":  "מחשב נייח",
	"computer": "מחשב",
	"headset":  "אוזניות",
	"mouse":    "עכבר",
	"keyboard": "מקלדת",
	"monitor":  "מסך",
	"bag":      "תיק",
}

// HebrewNoun names the product the customer is shopping for. Product type
// wins over category, and anything unknown falls back to "מחשב".
func HebrewNoun(productType, category string) string {
	if noun, ok := hebrewNouns[productType]; ok {
		return noun
	}
	if noun, ok := hebrewNouns[category]; ok {
		return noun
	}
	return hebrewNouns["computer"]
}
