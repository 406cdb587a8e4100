package domain

// Document is the normalized representation of an academic paper produced by
// structure extraction. Title, Authors and Abstract are always non-empty:
// the extractor substitutes placeholders for anything it cannot detect.
type Document struct {
	Title    string    `json:"title"`
	Authors  []string  `json:"authors"`
	Abstract string    `json:"abstract"`
	Sections []Section `json:"sections"`
}

// Section is one heading/content pair within a paper.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// GlossaryEntry is a single term/definition pair in a summary glossary.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// ClassContext holds the teaching context attached to a summary.
type ClassContext struct {
	Prerequisites       []string `json:"prerequisites"`
	Connections         []string `json:"connections"`
	DiscussionQuestions []string `json:"discussion_questions"`
}

// Summary is the kid-friendly paper explanation. Every field is always
// present and of the declared shape: backend output passes through schema
// repair before it becomes a Summary, and fallback summaries are complete
// by construction. Fallback-sourced values announce themselves only through
// an advisory entry in AccuracyFlags.
type Summary struct {
	BigIdea       string          `json:"big_idea"`
	Steps         []string        `json:"steps"`
	Example       string          `json:"example"`
	WhyItMatters  string          `json:"why_it_matters"`
	Limitations   string          `json:"limitations"`
	Glossary      []GlossaryEntry `json:"glossary"`
	ForClass      ClassContext    `json:"for_class"`
	AccuracyFlags []string        `json:"accuracy_flags"`
}

// Illustration is one rendered placeholder card for a key point.
type Illustration struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	KeyPoint    string `json:"key_point"`
	Backend     string `json:"backend"`
}
