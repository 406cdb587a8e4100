package summarize

import "paperbuddy/internal/domain"

// Topic-neutral defaults substituted for missing or blank summary fields.
const (
	defaultBigIdea      = "This paper teaches computers to do something smart"
	defaultExample      = "Like teaching a computer to recognize your pet"
	defaultWhyItMatters = "This helps make computers smarter and more helpful"
	defaultLimitations  = "It doesn't work perfectly in all situations"
)

func defaultSteps() []string {
	return []string{
		"Scientists had a problem to solve",
		"They tried a new way to fix it",
		"They tested if it works well",
	}
}

func defaultForClass() domain.ClassContext {
	return domain.ClassContext{
		Prerequisites:       []string{"Basic understanding of the topic"},
		Connections:         []string{"Relates to other computer science concepts"},
		DiscussionQuestions: []string{"How might this be used in real life?"},
	}
}

// Repair makes a raw backend reply schema-complete: every required field is
// present and of the declared shape afterwards, missing or falsy values
// replaced with fixed defaults. Repair is unconditional and idempotent.
func Repair(raw map[string]any) *domain.Summary {
	return &domain.Summary{
		BigIdea:       stringField(raw, "big_idea", defaultBigIdea),
		Steps:         stringListField(raw, "steps", defaultSteps()),
		Example:       stringField(raw, "example", defaultExample),
		WhyItMatters:  stringField(raw, "why_it_matters", defaultWhyItMatters),
		Limitations:   stringField(raw, "limitations", defaultLimitations),
		Glossary:      glossaryField(raw),
		ForClass:      forClassField(raw),
		AccuracyFlags: stringListField(raw, "accuracy_flags", []string{}),
	}
}

func stringField(raw map[string]any, key, def string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return def
}

// stringListField coerces raw[key] to a string list, dropping non-string
// elements; a missing, mistyped, or empty value yields the default.
func stringListField(raw map[string]any, key string, def []string) []string {
	list, ok := raw[key].([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// glossaryField forces glossary to a sequence of term/definition entries.
// Unlike the text fields an empty glossary is legitimate and stays empty.
func glossaryField(raw map[string]any) []domain.GlossaryEntry {
	entries := []domain.GlossaryEntry{}
	list, ok := raw["glossary"].([]any)
	if !ok {
		return entries
	}
	for _, v := range list {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		term, _ := m["term"].(string)
		def, _ := m["definition"].(string)
		if term == "" && def == "" {
			continue
		}
		entries = append(entries, domain.GlossaryEntry{Term: term, Definition: def})
	}
	return entries
}

// forClassField repairs the nested teaching context: a missing or malformed
// mapping is replaced wholesale, an existing one has only its missing leaf
// lists filled.
func forClassField(raw map[string]any) domain.ClassContext {
	m, ok := raw["for_class"].(map[string]any)
	if !ok || len(m) == 0 {
		return defaultForClass()
	}
	def := defaultForClass()
	return domain.ClassContext{
		Prerequisites:       leafList(m, "prerequisites", def.Prerequisites),
		Connections:         leafList(m, "connections", def.Connections),
		DiscussionQuestions: leafList(m, "discussion_questions", def.DiscussionQuestions),
	}
}

// leafList fills a for_class leaf only when the key is absent or mistyped;
// a present-but-empty list is kept as-is.
func leafList(m map[string]any, key string, def []string) []string {
	v, present := m[key]
	if !present {
		return def
	}
	list, ok := v.([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
