package summarize

import (
	"fmt"
	"strings"

	"paperbuddy/internal/domain"
)

const (
	maxPromptSections   = 3
	maxSectionChars     = 500
	promptSchemaExample = `{
  "big_idea": "One sentence explaining the main idea (<=12 words)",
  "steps": [
    "Step 1: Simple description",
    "Step 2: Simple description",
    "Step 3: Simple description"
  ],
  "example": "A real-world example or analogy that a kid would understand",
  "why_it_matters": "Why this research is important for the world",
  "limitations": "What doesn't work well or what problems remain",
  "glossary": [
    {"term": "Technical Term 1", "definition": "Simple explanation a kid can understand"},
    {"term": "Technical Term 2", "definition": "Simple explanation a kid can understand"}
  ],
  "for_class": {
    "prerequisites": ["Topic 1 students need to know", "Topic 2 students need to know"],
    "connections": ["How this relates to Topic X", "How this relates to Topic Y"],
    "discussion_questions": [
      "Thought-provoking question 1?",
      "Thought-provoking question 2?"
    ]
  },
  "accuracy_flags": ["Any uncertainties or things to be careful about"]
}`
)

var topicDomains = map[domain.CourseTopic]string{
	domain.TopicCV:      "computer vision and image understanding",
	domain.TopicNLP:     "natural language processing and text understanding",
	domain.TopicSystems: "computer systems, networks, and infrastructure",
}

func topicDomain(topic domain.CourseTopic) string {
	if d, ok := topicDomains[topic]; ok {
		return d
	}
	return "computer science"
}

// BuildSummaryPrompt maps a document and course topic into the single
// instruction sent to the generative backend.
func BuildSummaryPrompt(doc *domain.Document, topic domain.CourseTopic) string {
	var sectionsText strings.Builder
	for i, s := range doc.Sections {
		if i >= maxPromptSections {
			break
		}
		content := s.Content
		if len(content) > maxSectionChars {
			content = content[:maxSectionChars]
		}
		fmt.Fprintf(&sectionsText, "## %s\n%s...\n\n", s.Heading, content)
	}

	var b strings.Builder
	b.WriteString("You are a teacher explaining a research paper to 5-year-old kids. Be simple, clear, and fun!\n\n")
	fmt.Fprintf(&b, "**Paper Information:**\n- Title: %s\n- Authors: %s\n- Course Topic: %s (%s)\n\n",
		doc.Title, strings.Join(doc.Authors, ", "), topic, topicDomain(topic))
	fmt.Fprintf(&b, "**Abstract:**\n%s\n\n", doc.Abstract)
	if sectionsText.Len() > 0 {
		b.WriteString(sectionsText.String())
	}
	b.WriteString("**Your Task:**\n")
	b.WriteString("Create a kid-friendly summary in JSON format. Use VERY simple words. Keep sentences SHORT (maximum 12 words each).\n\n")
	b.WriteString("**Required JSON Structure:**\n")
	b.WriteString(promptSchemaExample)
	b.WriteString("\n\n**Style Guidelines:**\n")
	b.WriteString(`- Write like you're talking to a 5-year-old
- Use everyday examples (toys, games, animals, food)
- Avoid jargon - if you must use technical terms, explain them in glossary
- Keep it positive and encouraging
- Make it fun and engaging
- Each sentence must be <=12 words
- Include 3-5 steps in the "steps" array
- Include 3-5 technical terms in glossary
- Include 2-3 prerequisites, connections, and discussion questions each
`)
	b.WriteString("\n**Important:** Return ONLY valid JSON, no extra text before or after.")
	return b.String()
}
