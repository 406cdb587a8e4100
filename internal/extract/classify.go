package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// lineKind is the classification assigned to a single trimmed line.
type lineKind int

const (
	kindTitle lineKind = iota
	kindAuthorList
	kindAbstractMarker
	kindSectionHeading
	kindBody
)

// state carries the extraction context threaded through the single pass.
// The heuristics are order-sensitive: earlier classifications gate later
// ones, and nothing is ever re-classified once later context appears.
type state struct {
	titleFound     bool
	authorsFound   bool
	abstractActive bool
	abstractLen    int
}

const headingWords = `Introduction|Abstract|Background|Related Work|Method(ology)?|Approach|Implementation|Results|Evaluation|Discussion|Conclusion|References|Acknowledgments?`

var (
	abstractMarkerRe  = regexp.MustCompile(`(?i)^abstract\s*:?$`)
	numberedHeadingRe = regexp.MustCompile(`(?i)^\d+\.?\s*(` + headingWords + `)$`)
	bareHeadingRe     = regexp.MustCompile(`(?i)^(` + headingWords + `)$`)
)

var titleExcludedPrefixes = []string{"abstract", "introduction", "keywords", "author"}

var authorExcludedWords = []string{"abstract", "introduction", "university", "department"}

// classifyLine assigns exactly one kind to a trimmed, non-empty line.
// Rules are evaluated in precedence order; the first match wins.
func classifyLine(line string, st *state) lineKind {
	lower := strings.ToLower(line)

	if !st.titleFound && len(line) >= 11 && len(line) <= 199 && !hasAnyPrefix(lower, titleExcludedPrefixes) {
		return kindTitle
	}

	if !st.authorsFound && len(line) < 300 &&
		(strings.Contains(line, ",") || strings.Contains(lower, " and ")) &&
		!containsAny(lower, authorExcludedWords) {
		return kindAuthorList
	}

	if abstractMarkerRe.MatchString(line) {
		return kindAbstractMarker
	}

	// While collecting the abstract, ordinary lines accumulate into it. A
	// heading-shaped line ends collection, but only after at least 50 chars
	// have been gathered; before that it is swallowed into the abstract.
	if st.abstractActive && (!isSectionHeading(line) || st.abstractLen < 50) {
		return kindBody
	}

	if isSectionHeading(line) {
		return kindSectionHeading
	}

	return kindBody
}

// isSectionHeading reports whether a line looks like a section heading:
// a numbered or bare heading word, or an all-uppercase line.
func isSectionHeading(line string) bool {
	return numberedHeadingRe.MatchString(line) || bareHeadingRe.MatchString(line) || isAllUpper(line)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func hasAnyPrefix(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// splitAuthors breaks an author line into names, dropping tokens of two
// characters or fewer (initials, stray conjunctions).
func splitAuthors(line string) []string {
	line = strings.ReplaceAll(line, ", and ", ",")
	line = strings.ReplaceAll(line, " and ", ",")
	var authors []string
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if len(tok) > 2 {
			authors = append(authors, tok)
		}
	}
	return authors
}
