package summarize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperbuddy/internal/domain"
	"paperbuddy/internal/summarize"
)

func TestFallback_NLP(t *testing.T) {
	s := summarize.Fallback(domain.TopicNLP)

	assert.Equal(t, "Computers learn to understand human language", s.BigIdea)
	assert.Len(t, s.Steps, 4)
	require.NotEmpty(t, s.AccuracyFlags)
	assert.Contains(t, s.AccuracyFlags, summarize.AdvisoryFlag)
}

func TestFallback_UnknownTopicUsesCV(t *testing.T) {
	s := summarize.Fallback(domain.CourseTopic("Quantum"))

	assert.Equal(t, summarize.Fallback(domain.TopicCV), s)
}

func TestFallback_AllTopicsSchemaComplete(t *testing.T) {
	for _, topic := range []domain.CourseTopic{domain.TopicCV, domain.TopicNLP, domain.TopicSystems} {
		s := summarize.Fallback(topic)

		assert.NotEmpty(t, s.BigIdea)
		assert.GreaterOrEqual(t, len(s.Steps), 3)
		assert.LessOrEqual(t, len(s.Steps), 5)
		assert.NotEmpty(t, s.Example)
		assert.NotEmpty(t, s.WhyItMatters)
		assert.NotEmpty(t, s.Limitations)
		assert.GreaterOrEqual(t, len(s.Glossary), 3)
		assert.NotEmpty(t, s.ForClass.Prerequisites)
		assert.NotEmpty(t, s.ForClass.Connections)
		assert.NotEmpty(t, s.ForClass.DiscussionQuestions)
		assert.NotEmpty(t, s.AccuracyFlags)
	}
}

func TestFallback_FreshValuePerCall(t *testing.T) {
	a := summarize.Fallback(domain.TopicSystems)
	a.Steps[0] = "mutated"

	b := summarize.Fallback(domain.TopicSystems)
	assert.Equal(t, "Find slow parts in the system", b.Steps[0])
}
