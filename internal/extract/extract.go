// Package extract converts flat academic-paper text into a normalized
// document model using positional and pattern heuristics. It has no access
// to layout metadata: a single ordered pass over the text lines decides
// what is title, author list, abstract and section structure.
package extract

import (
	"regexp"
	"strings"

	"paperbuddy/internal/domain"
)

const (
	// PlaceholderTitle is substituted when no plausible title is detected.
	PlaceholderTitle = "Untitled Paper"
	// PlaceholderAuthor is the sentinel author entry when none are detected.
	PlaceholderAuthor = "Unknown"
	// PlaceholderAbstract is substituted when no abstract can be recovered.
	PlaceholderAbstract = "No abstract available for this paper."

	maxAuthors          = 10
	maxAbstractLen      = 2000
	maxSections         = 20
	maxContentFallback  = 5000
	abstractScanWindow  = 2000
	abstractMinParaLen  = 100
	abstractFallbackLen = 500
)

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// Extract parses full document text into a Document. It is total: whatever
// the input, the result has a non-empty title and abstract, one to ten
// authors, and at most twenty sections.
func Extract(text string) *domain.Document {
	doc := &domain.Document{}
	st := &state{}

	var abstract strings.Builder
	var sections []domain.Section
	var bodyLines []string
	heading := ""
	sectionOpen := false

	flush := func() {
		if !sectionOpen {
			return
		}
		sections = append(sections, domain.Section{
			Heading: heading,
			Content: strings.Join(bodyLines, " "),
		})
		bodyLines = nil
		sectionOpen = false
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch classifyLine(line, st) {
		case kindTitle:
			doc.Title = line
			st.titleFound = true

		case kindAuthorList:
			doc.Authors = splitAuthors(line)
			st.authorsFound = true

		case kindAbstractMarker:
			st.abstractActive = true

		case kindSectionHeading:
			flush()
			st.abstractActive = false
			heading = line
			sectionOpen = true

		case kindBody:
			if st.abstractActive {
				if abstract.Len() > 0 {
					abstract.WriteByte(' ')
				}
				abstract.WriteString(line)
				st.abstractLen = abstract.Len()
				// A heading-shaped line reaching here was swallowed
				// before 50 chars were collected; it also ends
				// collection mode.
				if isSectionHeading(line) {
					st.abstractActive = false
				}
				continue
			}
			if !sectionOpen {
				heading = "Content"
				sectionOpen = true
			}
			bodyLines = append(bodyLines, line)
		}
	}
	flush()

	doc.Abstract = strings.TrimSpace(abstract.String())
	doc.Sections = sections

	finalize(doc, text)
	return doc
}

// finalize applies the defaulting and truncation rules that make every
// extraction result usable downstream.
func finalize(doc *domain.Document, text string) {
	if len(doc.Sections) == 0 {
		doc.Sections = []domain.Section{{
			Heading: "Content",
			Content: truncate(text, maxContentFallback),
		}}
	}

	if len(doc.Title) < 5 {
		doc.Title = PlaceholderTitle
	}

	if len(doc.Authors) == 0 {
		doc.Authors = []string{PlaceholderAuthor}
	}

	if doc.Abstract == "" {
		doc.Abstract = scanAbstract(text)
	}

	if len(doc.Authors) > maxAuthors {
		doc.Authors = doc.Authors[:maxAuthors]
	}
	doc.Abstract = truncate(doc.Abstract, maxAbstractLen)
	if len(doc.Sections) > maxSections {
		doc.Sections = doc.Sections[:maxSections]
	}
}

// ApplyDefaults normalizes an externally supplied document (manual input or
// a metadata fetch) through the same defaulting rules extraction uses.
func ApplyDefaults(doc *domain.Document) {
	if len(doc.Title) < 5 {
		doc.Title = PlaceholderTitle
	}
	if len(doc.Authors) == 0 {
		doc.Authors = []string{PlaceholderAuthor}
	}
	if doc.Abstract == "" {
		doc.Abstract = PlaceholderAbstract
	}
	if len(doc.Authors) > maxAuthors {
		doc.Authors = doc.Authors[:maxAuthors]
	}
	doc.Abstract = truncate(doc.Abstract, maxAbstractLen)
	if len(doc.Sections) > maxSections {
		doc.Sections = doc.Sections[:maxSections]
	}
	if doc.Sections == nil {
		doc.Sections = []domain.Section{}
	}
}

// scanAbstract recovers an abstract the marker-based pass missed: the first
// paragraph in the opening of the document that is long enough and does not
// mention "abstract" itself.
func scanAbstract(text string) string {
	window := truncate(text, abstractScanWindow)
	for _, para := range paragraphSplitRe.Split(window, -1) {
		para = strings.TrimSpace(para)
		if len(para) >= abstractMinParaLen && !strings.Contains(strings.ToLower(para), "abstract") {
			return truncate(para, abstractFallbackLen)
		}
	}
	return PlaceholderAbstract
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
