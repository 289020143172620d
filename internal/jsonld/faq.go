package jsonld

import (
	"github.com/jonathan/site-content/internal/types"
)

// FAQPage is the FAQPage fragment.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is one question of an FAQPage.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// SchemaType implements Fragment.
func (FAQPage) SchemaType() string { return TypeFAQPage }

// FAQ builds an FAQPage from entries in order. The answer text includes the
// call-to-action label so crawlers see the follow-up prompt.
func FAQ(entries []types.FAQEntry) FAQPage {
	questions := make([]Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           e.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: AnswerText(e)},
		})
	}
	return FAQPage{Context: SchemaContext, Type: TypeFAQPage, MainEntity: questions}
}

// AnswerText is the answer followed by the call-to-action label, space-joined.
func AnswerText(e types.FAQEntry) string {
	if e.CTALink == nil || e.CTALink.Label == "" {
		return e.Answer
	}
	return e.Answer + " " + e.CTALink.Label
}
