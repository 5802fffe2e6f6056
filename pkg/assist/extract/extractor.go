package extract

import (
	"regexp"
	"strings"
)

// The extractor pulls a candidate person name out of a free-text chat
// message. It is an ordered cascade of (predicate, extractor) rules -
// first matching rule wins. Rule 0 rejects "answer-like" messages so a
// reply like "passport" to a purpose question is never mistaken for a
// name lookup.

// purposeKeywords open messages that answer a purpose question.
var purposeKeywords = []string{
	"passport", "visa", "bank", "loan", "education", "employment",
	"travel", "admission", "scholarship", "verification", "proof",
	"legal", "personal", "official",
}

// acknowledgements are short replies that carry no lookup intent.
var acknowledgements = map[string]bool{
	"yes": true, "no": true, "ok": true, "okay": true, "sure": true,
	"done": true, "thanks": true, "thank you": true, "correct": true,
	"right": true, "yep": true, "yeah": true, "nope": true, "fine": true,
	"great": true, "good": true, "alright": true, "perfect": true,
}

var answerPrefixes = []string{
	"the purpose", "purpose is", "for ", "it's for", "its for",
	"i need it for",
}

// capitalized word sequences that are common sentence furniture,
// not names. Checked against rule 7's loose capitalized-word scan.
var capitalizedStoplist = map[string]bool{
	"The": true, "This": true, "That": true, "A": true, "An": true,
	"I": true, "It": true, "My": true, "Please": true, "Certificate": true,
	"Document": true, "Letter": true, "Bonafide": true, "Experience": true,
	"Known": true, "Missing": true, "Create": true, "Generate": true,
	"Make": true, "Issue": true, "Draft": true, "Need": true, "Can": true,
	"Could": true, "What": true, "Yes": true, "No": true, "Ok": true,
	"Hello": true, "Hi": true, "Hey": true,
}

// namePattern matches one or more capitalized words ("John", "John Smith",
// "Anil Kumar Gupta").
const namePattern = `([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`

var (
	forOfPattern = regexp.MustCompile(`\b(?:for|of)\s+` + namePattern)
	docTypePattern = regexp.MustCompile(
		`(?i)\b(?:certificate|letter|bonafide|noc|document)\b.*?\b(?:for|of|to)\s+` + namePattern)
	verbPattern = regexp.MustCompile(
		`(?i)\b(?:create|generate|make|issue|draft|prepare)\b.*?\b(?:for|of)\s+` + namePattern)
	referringPattern = regexp.MustCompile(
		`(?i)\b(?:i'?m referring to|i am referring to|i mean|it'?s)\s+` + namePattern)
	wholeNamePattern = regexp.MustCompile(`^` + namePattern + `$`)
	looseNamePattern = regexp.MustCompile(namePattern)
)

// Extract returns the candidate person name in message, or "" when the
// message carries no lookup intent. hasRecords is false when the
// organization has no uploaded dataset; lookup is meaningless then, so
// the extractor always returns "".
func Extract(message string, hasRecords bool) string {
	if !hasRecords {
		return ""
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}

	// Rule 0: reject answer-like messages outright.
	if isAnswerLike(trimmed) {
		return ""
	}

	// Rules 1-4: explicit lookup phrasings, most specific first.
	for _, re := range []*regexp.Regexp{forOfPattern, docTypePattern, verbPattern, referringPattern} {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			if name := cleanCandidate(m[1]); name != "" {
				return name
			}
		}
	}

	// Rule 5: the whole message is just a name ("Asha Rao").
	if m := wholeNamePattern.FindStringSubmatch(trimmed); m != nil {
		words := strings.Fields(m[1])
		if len(words) >= 1 && len(words) <= 4 && !allStoplisted(words) {
			if name := cleanCandidate(m[1]); name != "" {
				return name
			}
		}
	}

	// Rule 6: short message - scan for any capitalized phrase that is
	// not sentence furniture.
	if len(strings.Fields(trimmed)) <= 6 {
		for _, m := range looseNamePattern.FindAllString(trimmed, -1) {
			if name := cleanCandidate(m); name != "" {
				return name
			}
		}
	}

	return ""
}

// ExplicitRequest returns the candidate name only when the message
// names the person through an explicit document/create/referring
// phrasing; the loose whole-message and capitalized-word rules do not
// count. Callers use this to tell a deliberate lookup apart from a
// free-text answer that happens to contain capitalized words.
func ExplicitRequest(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" || isAnswerLike(trimmed) {
		return ""
	}

	for _, re := range []*regexp.Regexp{docTypePattern, verbPattern, referringPattern} {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			if name := cleanCandidate(m[1]); name != "" {
				return name
			}
		}
	}
	return ""
}

func isAnswerLike(trimmed string) bool {
	lower := strings.ToLower(trimmed)

	for _, kw := range purposeKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}

	if acknowledgements[strings.TrimRight(lower, ".!?,")] {
		return true
	}

	for _, prefix := range answerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}

// cleanCandidate strips stoplisted leading/trailing words from a
// capitalized-phrase match and rejects phrases made only of stopwords.
func cleanCandidate(phrase string) string {
	words := strings.Fields(strings.TrimSpace(phrase))

	for len(words) > 0 && capitalizedStoplist[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && capitalizedStoplist[words[len(words)-1]] {
		words = words[:len(words)-1]
	}

	if len(words) == 0 || len(words) > 4 {
		return ""
	}
	return strings.Join(words, " ")
}

func allStoplisted(words []string) bool {
	for _, w := range words {
		if !capitalizedStoplist[w] {
			return false
		}
	}
	return true
}
