package summarize

import "paperbuddy/internal/domain"

// AdvisoryFlag marks a summary that was not produced by the generative
// backend. It is the only provenance signal a caller gets.
const AdvisoryFlag = "This is a canned summary - no language-model backend was used"

const advisoryHint = "Set PAPERBUDDY_SUMMARIZER_API_KEY to get real summaries"

// Fallback returns the deterministic canned summary for a topic. Unknown
// topics receive the CV entry. Each call builds a fresh value, so callers
// may mutate the result freely.
func Fallback(topic domain.CourseTopic) *domain.Summary {
	switch topic {
	case domain.TopicNLP:
		return nlpFallback()
	case domain.TopicSystems:
		return systemsFallback()
	default:
		return cvFallback()
	}
}

func cvFallback() *domain.Summary {
	return &domain.Summary{
		BigIdea: "Computers learn to see like humans do",
		Steps: []string{
			"Feed lots of pictures to computer",
			"Computer finds patterns in pictures",
			"Computer learns what things look like",
			"Computer can now recognize new things",
		},
		Example:      "Like teaching a kid to recognize dogs by showing many dog photos",
		WhyItMatters: "Helps self-driving cars see pedestrians and stop signs",
		Limitations:  "Gets confused by weird lighting or unusual angles",
		Glossary: []domain.GlossaryEntry{
			{Term: "Neural Network", Definition: "A computer brain made of many tiny helpers"},
			{Term: "Training", Definition: "Teaching the computer by showing examples"},
			{Term: "Dataset", Definition: "A big collection of pictures for learning"},
		},
		ForClass: domain.ClassContext{
			Prerequisites: []string{"Basic machine learning", "Linear algebra", "Python programming"},
			Connections:   []string{"Relates to CNNs", "Builds on deep learning", "Used in robotics"},
			DiscussionQuestions: []string{
				"How is this different from traditional computer vision?",
				"What are the ethical implications of AI vision?",
				"Where else could this technology be applied?",
			},
		},
		AccuracyFlags: []string{AdvisoryFlag, advisoryHint},
	}
}

func nlpFallback() *domain.Summary {
	return &domain.Summary{
		BigIdea: "Computers learn to understand human language",
		Steps: []string{
			"Computer reads lots of text and books",
			"It learns how words go together",
			"It understands what sentences mean",
			"It can talk back in human language",
		},
		Example:      "Like a robot learning to chat by reading many conversations",
		WhyItMatters: "Makes chatbots smarter and helps translate languages",
		Limitations:  "Sometimes misunderstands jokes or complex meanings",
		Glossary: []domain.GlossaryEntry{
			{Term: "Language Model", Definition: "A computer that learned to understand words"},
			{Term: "Tokenization", Definition: "Breaking sentences into small pieces"},
			{Term: "Embeddings", Definition: "Numbers that represent word meanings"},
		},
		ForClass: domain.ClassContext{
			Prerequisites: []string{"Basic NLP concepts", "Probability theory", "Python"},
			Connections:   []string{"Relates to transformers", "Used in chatbots", "Powers translation"},
			DiscussionQuestions: []string{
				"How do language models learn meaning?",
				"What biases might exist in text data?",
				"Can computers truly understand language?",
			},
		},
		AccuracyFlags: []string{AdvisoryFlag, advisoryHint},
	}
}

func systemsFallback() *domain.Summary {
	return &domain.Summary{
		BigIdea: "Making computers work faster and more efficiently",
		Steps: []string{
			"Find slow parts in the system",
			"Design a clever way to speed up",
			"Build and test the new system",
			"Measure if it's actually faster",
		},
		Example:      "Like organizing your toys so you find them faster",
		WhyItMatters: "Makes apps load quicker and saves electricity",
		Limitations:  "More speed often means more complexity",
		Glossary: []domain.GlossaryEntry{
			{Term: "Throughput", Definition: "How much work gets done per second"},
			{Term: "Latency", Definition: "How long you wait for something to happen"},
			{Term: "Scalability", Definition: "Ability to handle more work without breaking"},
		},
		ForClass: domain.ClassContext{
			Prerequisites: []string{"Operating systems", "Computer architecture", "Networks"},
			Connections:   []string{"Relates to distributed systems", "Used in cloud computing"},
			DiscussionQuestions: []string{
				"What trade-offs exist between speed and reliability?",
				"How do we measure system performance?",
				"What are the limits of optimization?",
			},
		},
		AccuracyFlags: []string{AdvisoryFlag, advisoryHint},
	}
}
