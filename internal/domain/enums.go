package domain

// CourseTopic identifies the course a paper is being summarized for.
type CourseTopic string

const (
	TopicCV      CourseTopic = "CV"
	TopicNLP     CourseTopic = "NLP"
	TopicSystems CourseTopic = "Systems"
)

// NormalizeTopic maps an arbitrary tag to a known topic, defaulting to CV.
func NormalizeTopic(tag string) CourseTopic {
	switch CourseTopic(tag) {
	case TopicCV, TopicNLP, TopicSystems:
		return CourseTopic(tag)
	default:
		return TopicCV
	}
}

// IllustrationStyle selects the placeholder card palette.
type IllustrationStyle string

const (
	StylePastel   IllustrationStyle = "pastel"
	StyleColorful IllustrationStyle = "colorful"
	StyleSimple   IllustrationStyle = "simple"
)
