// Package wizard drives offer creation through mode selection, input
// capture, template selection and customization.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
)

// Step is one wizard stage.
type Step string

const (
	StepMode      Step = "mode"
	StepInput     Step = "input"
	StepTemplate  Step = "template"
	StepCustomize Step = "customize"
)

// Mode selects the input collaborator.
type Mode string

const (
	ModeScratch  Mode = "scratch"
	ModeRedesign Mode = "redesign"
)

// ParseMode resolves a posted mode value.
func ParseMode(value string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeScratch:
		return ModeScratch, true
	case ModeRedesign:
		return ModeRedesign, true
	default:
		return "", false
	}
}

// ErrInvalidTransition is returned when an event does not apply to the
// current step.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Input is the result of one input collaborator. Implementations are closed
// to this package.
type Input interface {
	Patch() offer.Patch
	mode() Mode
}

// ScratchInput carries completed guided interview answers.
type ScratchInput struct {
	Answers     guided.Answers
	Synthesizer guided.Synthesizer
}

// Patch implements Input.
func (in ScratchInput) Patch() offer.Patch {
	synth := in.Synthesizer
	if synth == nil {
		synth = guided.Heuristic{}
	}
	return synth.Synthesize(in.Answers)
}

func (ScratchInput) mode() Mode { return ModeScratch }

// UploadInput carries fields extracted from an uploaded document.
type UploadInput struct {
	Extracted offer.Patch
}

// Patch implements Input.
func (in UploadInput) Patch() offer.Patch { return in.Extracted }

func (UploadInput) mode() Mode { return ModeRedesign }

// State is the serializable wizard snapshot kept between requests.
type State struct {
	Step      Step             `json:"step"`
	Mode      Mode             `json:"mode,omitempty"`
	OfferID   string           `json:"offerId,omitempty"`
	Draft     offer.Draft      `json:"draft"`
	Interview guided.Interview `json:"interview"`
	// SubmitToken identifies the pending save; it doubles as the backend
	// idempotency key.
	SubmitToken string `json:"submitToken,omitempty"`
	// SavedTokens maps submit tokens to the offer they created.
	SavedTokens map[string]string `json:"savedTokens,omitempty"`
}

// Wizard owns one offer draft while it is being authored.
type Wizard struct {
	state State
}

// New starts a wizard at mode selection with an empty draft.
func New() *Wizard {
	return &Wizard{state: State{Step: StepMode, Draft: offer.NewDraft()}}
}

// Resume starts a wizard at customization with a persisted offer.
func Resume(offerID string, d offer.Draft) *Wizard {
	return &Wizard{state: State{
		Step:    StepCustomize,
		OfferID: strings.TrimSpace(offerID),
		Draft:   d.Normalize(),
	}}
}

// Restore rebuilds a wizard from a stored snapshot. Unknown steps restart at
// mode selection.
func Restore(s State) *Wizard {
	switch s.Step {
	case StepMode, StepInput, StepTemplate, StepCustomize:
	default:
		s.Step = StepMode
	}
	if s.Step == StepInput {
		if _, ok := ParseMode(string(s.Mode)); !ok {
			s.Step = StepMode
		}
	}
	s.Draft = s.Draft.Normalize()
	return &Wizard{state: s}
}

// State returns a snapshot suitable for storage.
func (w *Wizard) State() State {
	s := w.state
	s.Draft = s.Draft.Clone()
	if s.SavedTokens != nil {
		saved := make(map[string]string, len(s.SavedTokens))
		for k, v := range s.SavedTokens {
			saved[k] = v
		}
		s.SavedTokens = saved
	}
	return s
}

// Step returns the current stage.
func (w *Wizard) Step() Step { return w.state.Step }

// Mode returns the selected input mode, if any.
func (w *Wizard) Mode() Mode { return w.state.Mode }

// Draft returns the current draft.
func (w *Wizard) Draft() offer.Draft { return w.state.Draft }

// OfferID returns the persisted offer ID, empty before the first save.
func (w *Wizard) OfferID() string { return w.state.OfferID }

// Interview returns the guided interview progress for scratch mode.
func (w *Wizard) Interview() *guided.Interview { return &w.state.Interview }

// SelectMode performs mode→input.
func (w *Wizard) SelectMode(m Mode) error {
	if w.state.Step != StepMode {
		return transitionError(w.state.Step, "select mode")
	}
	if _, ok := ParseMode(string(m)); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidTransition, m)
	}
	w.state.Mode = m
	w.state.Interview = guided.Interview{}
	w.state.Step = StepInput
	return nil
}

// CompleteInput performs input→template, merging the collaborator result.
func (w *Wizard) CompleteInput(in Input) error {
	if w.state.Step != StepInput {
		return transitionError(w.state.Step, "complete input")
	}
	if in == nil || in.mode() != w.state.Mode {
		return fmt.Errorf("%w: input does not match mode %q", ErrInvalidTransition, w.state.Mode)
	}
	w.state.Draft = w.state.Draft.Merge(in.Patch())
	w.state.Step = StepTemplate
	return nil
}

// SelectTemplate performs template→customize. Unknown templates select the
// default layout.
func (w *Wizard) SelectTemplate(t offer.Template) error {
	if w.state.Step != StepTemplate {
		return transitionError(w.state.Step, "select template")
	}
	w.state.Draft.Template, _ = offer.ParseTemplate(string(t))
	w.state.Step = StepCustomize
	return nil
}

// Apply edits the draft during customization.
func (w *Wizard) Apply(actions ...offer.Action) error {
	if w.state.Step != StepCustomize {
		return transitionError(w.state.Step, "edit draft")
	}
	w.state.Draft = w.state.Draft.ApplyAll(actions...)
	return nil
}

// CanSave reports whether the draft may be persisted.
func (w *Wizard) CanSave() bool { return w.state.Step == StepCustomize }

// CanExport reports whether a rendered document may be requested.
func (w *Wizard) CanExport() bool {
	return w.state.Step == StepCustomize && w.state.OfferID != ""
}

// SubmitToken returns the token for the next save, issuing one with issue
// when none is pending.
func (w *Wizard) SubmitToken(issue func() string) string {
	if w.state.SubmitToken == "" && issue != nil {
		w.state.SubmitToken = issue()
	}
	return w.state.SubmitToken
}

// SavedOffer returns the offer created by a previous save with token.
func (w *Wizard) SavedOffer(token string) (string, bool) {
	id, ok := w.state.SavedTokens[strings.TrimSpace(token)]
	return id, ok && id != ""
}

// MarkSaved records a successful save. A create binds token to offerID so a
// replayed submission resolves to the same offer.
func (w *Wizard) MarkSaved(token string, saved offer.Offer) error {
	if !w.CanSave() {
		return transitionError(w.state.Step, "save")
	}
	if token = strings.TrimSpace(token); token != "" {
		if w.state.SavedTokens == nil {
			w.state.SavedTokens = map[string]string{}
		}
		w.state.SavedTokens[token] = saved.ID
		if token == w.state.SubmitToken {
			w.state.SubmitToken = ""
		}
	}
	w.state.OfferID = saved.ID
	w.state.Draft = saved.Draft.Normalize()
	return nil
}

func transitionError(step Step, event string) error {
	return fmt.Errorf("%w: cannot %s at step %q", ErrInvalidTransition, event, step)
}
