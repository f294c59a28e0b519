// Package guided runs the scripted question-and-answer interview that seeds a
// new offer draft.
package guided

import (
	"errors"
	"strings"
)

// Field identifies the draft input an answer is collected for.
type Field string

const (
	FieldServiceName      Field = "service_name"
	FieldTargetAudience   Field = "target_audience"
	FieldProblemSolved    Field = "problem_solved"
	FieldPricing          Field = "pricing"
	FieldFeatures         Field = "features"
	FieldUniqueValue      Field = "unique_value"
	FieldGuarantees       Field = "guarantees"
	FieldBrandPersonality Field = "brand_personality"
)

// Prompt is one interview question.
type Prompt struct {
	Field Field
	// QuestionKey is the localization key of the question text.
	QuestionKey string
}

// Prompts is the fixed ordered interview.
var Prompts = []Prompt{
	{Field: FieldServiceName, QuestionKey: "web.guided.prompt.service_name"},
	{Field: FieldTargetAudience, QuestionKey: "web.guided.prompt.target_audience"},
	{Field: FieldProblemSolved, QuestionKey: "web.guided.prompt.problem_solved"},
	{Field: FieldPricing, QuestionKey: "web.guided.prompt.pricing"},
	{Field: FieldFeatures, QuestionKey: "web.guided.prompt.features"},
	{Field: FieldUniqueValue, QuestionKey: "web.guided.prompt.unique_value"},
	{Field: FieldGuarantees, QuestionKey: "web.guided.prompt.guarantees"},
	{Field: FieldBrandPersonality, QuestionKey: "web.guided.prompt.brand_personality"},
}

var (
	// ErrEmptyAnswer is returned for blank submissions; the interview does not advance.
	ErrEmptyAnswer = errors.New("answer is required")
	// ErrComplete is returned when submitting after the last prompt.
	ErrComplete = errors.New("interview is complete")
)

// Answers maps prompt fields to collected text.
type Answers map[Field]string

// Get returns the trimmed answer for field.
func (a Answers) Get(field Field) string {
	return strings.TrimSpace(a[field])
}

// Exchange is one answered prompt in the transcript.
type Exchange struct {
	Prompt Prompt
	Answer string
}

// Interview tracks progress through Prompts. The zero value is ready to use
// and its exported fields round-trip through JSON.
type Interview struct {
	Answers Answers `json:"answers"`
	Step    int     `json:"step"`
}

// Next returns the prompt awaiting an answer.
func (iv *Interview) Next() (Prompt, bool) {
	if iv.Done() {
		return Prompt{}, false
	}
	return Prompts[iv.Step], true
}

// Done reports whether every prompt has been answered.
func (iv *Interview) Done() bool {
	return iv.Step >= len(Prompts)
}

// Submit records text for the current prompt and advances.
func (iv *Interview) Submit(text string) error {
	if iv.Done() {
		return ErrComplete
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAnswer
	}
	if iv.Answers == nil {
		iv.Answers = Answers{}
	}
	iv.Answers[Prompts[iv.Step].Field] = text
	iv.Step++
	return nil
}

// Transcript returns answered prompts in order.
func (iv *Interview) Transcript() []Exchange {
	out := make([]Exchange, 0, iv.Step)
	for i := 0; i < iv.Step && i < len(Prompts); i++ {
		out = append(out, Exchange{Prompt: Prompts[i], Answer: iv.Answers[Prompts[i].Field]})
	}
	return out
}
