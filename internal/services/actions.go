package services

import (
	"regexp"
	"strings"
)

type ActionKind int

const (
	ActionRemove ActionKind = iota
	ActionAdd
	ActionRegenerate
	ActionReplaceHotel
	ActionReplaceItem
)

// EditAction is one structured mutation resolved from user text or from a
// pending-suggestion selection. Actions are transient; they are never
// persisted.
type EditAction struct {
	Kind        ActionKind
	Target      string // existing item name (Remove, ReplaceItem)
	Name        string // new item name (Add, ReplaceHotel, ReplaceItem)
	AddressHint string // optional location hint for Add
	DayRef      string // day reference text for Regenerate
}

var (
	replaceHotelRe = regexp.MustCompile(`(?i)^(?:please\s+)?(?:replace|change|switch)\s+(?:the\s+|my\s+)?hotel\s+(?:with|to)\s+(.+)$`)
	replaceWithRe  = regexp.MustCompile(`(?i)^(?:please\s+)?replace\s+(?:the\s+)?(.+?)\s+with\s+(?:a\s+|an\s+|the\s+)?(.+)$`)
	insteadOfRe    = regexp.MustCompile(`(?i)^instead of\s+(?:the\s+)?(.+?),?\s+(?:add|do|have|visit)\s+(?:a\s+|an\s+|the\s+)?(.+)$`)
	regenerateRe   = regexp.MustCompile(`(?i)^(?:please\s+)?(?:regenerate|redo|refresh|replan)\s+(?:the\s+)?(day\s*\d+|\d+\w*\s+day|.+day\s*\d+.*)$`)
	removeRe       = regexp.MustCompile(`(?i)^(?:please\s+)?(?:remove|delete|drop)\s+(?:the\s+)?(.+)$`)
	addRe          = regexp.MustCompile(`(?i)^(?:please\s+)?add\s+(?:a\s+|an\s+|the\s+)?(.+?)(?:\s+(?:near|at|around|in)\s+(.+))?$`)
)

// ParseEditActions turns an explicit edit command into structured actions.
// "replace X with Y" becomes remove X plus add Y, which the engine later
// collapses into a positional replacement. An empty slice means the text is
// not a recognized command.
func ParseEditActions(text string) []EditAction {
	trimmed := strings.TrimRight(strings.TrimSpace(text), ".!")
	if trimmed == "" {
		return nil
	}

	if m := replaceHotelRe.FindStringSubmatch(trimmed); m != nil {
		return []EditAction{{Kind: ActionReplaceHotel, Name: cleanCapture(m[1])}}
	}
	if m := replaceWithRe.FindStringSubmatch(trimmed); m != nil {
		return []EditAction{
			{Kind: ActionRemove, Target: cleanCapture(m[1])},
			{Kind: ActionAdd, Name: cleanCapture(m[2])},
		}
	}
	if m := insteadOfRe.FindStringSubmatch(trimmed); m != nil {
		return []EditAction{
			{Kind: ActionRemove, Target: cleanCapture(m[1])},
			{Kind: ActionAdd, Name: cleanCapture(m[2])},
		}
	}
	if m := regenerateRe.FindStringSubmatch(trimmed); m != nil {
		return []EditAction{{Kind: ActionRegenerate, DayRef: cleanCapture(m[1])}}
	}
	if m := removeRe.FindStringSubmatch(trimmed); m != nil {
		return []EditAction{{Kind: ActionRemove, Target: cleanCapture(m[1])}}
	}
	if m := addRe.FindStringSubmatch(trimmed); m != nil {
		action := EditAction{Kind: ActionAdd, Name: cleanCapture(m[1])}
		if len(m) > 2 {
			action.AddressHint = cleanCapture(m[2])
		}
		return []EditAction{action}
	}

	return nil
}

func cleanCapture(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

// Suggestion-intent keywords. Imperative command verbs are deliberately
// absent so explicit remove/add/regenerate commands parse directly.
var suggestionKeywords = []string{
	"suggest", "recommend", "recommendation", "idea", "option",
	"what about", "how about", "something else", "somewhere else",
	"any good", "better", "don't like", "do not like", "not a fan",
}

// WantsSuggestions is the general-edit-intent heuristic: suggestion
// keywords, a question mark, or a long free-form utterance all route the
// turn into the suggesting state instead of direct command parsing.
func WantsSuggestions(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "?") {
		return true
	}
	if containsAny(lower, suggestionKeywords) {
		return true
	}
	return len(strings.Fields(lower)) > 12
}
