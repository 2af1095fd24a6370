package discovery

import (
	"regexp"
	"strings"
)

// PlaceholderName is substituted when a query yields no candidates at all,
// so every successful response carries at least one result card.
const PlaceholderName = "Popular NYC Spot"

// nameCharClass is the restricted character set a line must match to count
// as an establishment name: letters and digits in any script, plus the
// punctuation that appears in real restaurant names. Anything with other
// punctuation is prose or markdown and gets filtered.
var nameCharClass = regexp.MustCompile(`^[\p{L}\p{N} '&.\-]+$`)

// bulletPrefix strips leading list markers: "-", "*", "•" and "1." / "1)"
// style numbering.
var bulletPrefix = regexp.MustCompile(`^(?:[-*•]+|\d+[.)])\s*`)

const maxNameTokens = 5

// ExtractNames derives candidate names from unstructured summary text. It is
// the fallback for interpreter responses that carry no structured candidate
// list. Pure function, never fails; result preserves first-seen order with
// duplicates removed.
func ExtractNames(summaryText string) []string {
	var names []string
	for _, line := range strings.Split(summaryText, "\n") {
		line = strings.TrimSpace(line)
		line = bulletPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)

		if len(line) <= 2 {
			continue
		}
		if !nameCharClass.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > maxNameTokens {
			continue
		}
		names = append(names, line)
	}
	return Dedupe(names, normalizeName)
}

// normalizeName is the equality key used when deduplicating names.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
