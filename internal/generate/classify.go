package generate

import (
	"strings"
	"unicode"
)

// Family identifies which task template a goal maps to.
type Family string

const (
	FamilyProduct  Family = "product"
	FamilyEvent    Family = "event"
	FamilyLearning Family = "learning"
	FamilyResearch Family = "research"
	FamilyGeneric  Family = "generic"
)

// familyKeywords is checked in this order; the first family with a keyword
// hit wins. "study" appears under both learning and research, so a goal
// containing it always classifies as learning. Keep that overlap: stored
// plans depend on stable classification.
var familyKeywords = []struct {
	family   Family
	keywords []string
}{
	{FamilyProduct, []string{"product", "launch", "app", "software", "platform", "mobile"}},
	{FamilyEvent, []string{"event", "meeting", "conference", "workshop", "party", "gathering"}},
	{FamilyLearning, []string{"learn", "study", "course", "training", "skill", "master"}},
	{FamilyResearch, []string{"research", "paper", "thesis", "study", "analysis", "report"}},
}

// subjectVocabulary lists the tokens recognized as a learning subject.
var subjectVocabulary = map[string]struct{}{
	"python":      {},
	"java":        {},
	"javascript":  {},
	"programming": {},
	"coding":      {},
	"data":        {},
	"science":     {},
	"machine":     {},
	"learning":    {},
}

// DefaultSubject is used when no vocabulary word appears in a learning goal.
const DefaultSubject = "the subject"

// Classify maps the goal text onto a template family.
func Classify(goal string) Family {
	lower := strings.ToLower(goal)
	for _, entry := range familyKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.family
			}
		}
	}
	return FamilyGeneric
}

// ExtractSubject scans the goal's words for the first match against the
// subject vocabulary and returns it title-cased.
func ExtractSubject(goal string) string {
	for _, word := range strings.Fields(goal) {
		if _, ok := subjectVocabulary[strings.ToLower(word)]; ok {
			return titleCase(word)
		}
	}
	return DefaultSubject
}

func titleCase(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
