// Package dialog extracts conversation identity from Dialogflow payloads.
package dialog

import (
	"regexp"

	"food-agent/internal/domain"
)

// Context names look like
// projects/<p>/agent/sessions/<session-id>/contexts/<ctx>.
var sessionIDPattern = regexp.MustCompile(`sessions/([0-9a-f-]+)/contexts/`)

// SessionID returns the conversation id embedded in the first output
// context, or "" when there is none. Absence is a normal outcome (first
// turn, or a differently shaped context), never an error.
func SessionID(contexts []domain.OutputContext) string {
	if len(contexts) == 0 {
		return ""
	}
	m := sessionIDPattern.FindStringSubmatch(contexts[0].Name)
	if m == nil {
		return ""
	}
	return m[1]
}
