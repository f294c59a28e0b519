package wizard

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
)

func TestNewStartsAtMode(t *testing.T) {
	t.Parallel()

	w := New()
	if w.Step() != StepMode {
		t.Fatalf("step = %q, want %q", w.Step(), StepMode)
	}
	if w.CanSave() || w.CanExport() {
		t.Fatal("save/export should be unavailable at mode")
	}
}

func TestResumeStartsAtCustomize(t *testing.T) {
	t.Parallel()

	d := offer.NewDraft()
	d.Title = "Loaded"
	w := Resume("o-1", d)
	if w.Step() != StepCustomize {
		t.Fatalf("step = %q, want %q", w.Step(), StepCustomize)
	}
	if w.Draft().Title != "Loaded" || w.OfferID() != "o-1" {
		t.Fatalf("draft = %+v, id = %q", w.Draft(), w.OfferID())
	}
	if !w.CanSave() || !w.CanExport() {
		t.Fatal("resumed wizard should allow save and export")
	}
}

func TestScratchFlow(t *testing.T) {
	t.Parallel()

	w := New()
	if err := w.SelectMode(ModeScratch); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	answers := guided.Answers{
		guided.FieldServiceName:      "Brand Audit",
		guided.FieldBrandPersonality: "bold",
	}
	if err := w.CompleteInput(ScratchInput{Answers: answers}); err != nil {
		t.Fatalf("complete input: %v", err)
	}
	if w.Step() != StepTemplate {
		t.Fatalf("step = %q, want %q", w.Step(), StepTemplate)
	}
	if w.Draft().Title != "Brand Audit" || w.Draft().Template != offer.TemplateBold {
		t.Fatalf("draft = %+v", w.Draft())
	}
	if err := w.SelectTemplate(offer.TemplateVibrant); err != nil {
		t.Fatalf("select template: %v", err)
	}
	if w.Draft().Template != offer.TemplateVibrant {
		t.Fatalf("template = %q, want vibrant", w.Draft().Template)
	}
	if err := w.Apply(offer.SetTitle{Value: "Edited"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if w.Draft().Title != "Edited" {
		t.Fatalf("title = %q", w.Draft().Title)
	}
	if !w.CanSave() || w.CanExport() {
		t.Fatal("unsaved customize should allow save but not export")
	}
}

func TestRedesignFlow(t *testing.T) {
	t.Parallel()

	w := New()
	if err := w.SelectMode(ModeRedesign); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := w.CompleteInput(ScratchInput{}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("mismatched input err = %v, want ErrInvalidTransition", err)
	}
	if err := w.CompleteInput(UploadInput{Extracted: offer.Patch{Title: offer.String("Uploaded")}}); err != nil {
		t.Fatalf("complete input: %v", err)
	}
	if w.Draft().Title != "Uploaded" {
		t.Fatalf("title = %q", w.Draft().Title)
	}
}

func TestOutOfOrderTransitionsRejected(t *testing.T) {
	t.Parallel()

	w := New()
	if err := w.SelectTemplate(offer.TemplateBold); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("select template err = %v", err)
	}
	if err := w.Apply(offer.AddFeature{}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("apply err = %v", err)
	}
	if err := w.CompleteInput(UploadInput{}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("complete input err = %v", err)
	}
	if err := w.SelectMode("freestyle"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unknown mode err = %v", err)
	}
	if err := w.SelectMode(ModeScratch); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := w.SelectMode(ModeScratch); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second select mode err = %v", err)
	}
}

func TestUnknownTemplateSelectsDefault(t *testing.T) {
	t.Parallel()

	w := Restore(State{Step: StepTemplate, Draft: offer.NewDraft()})
	if err := w.SelectTemplate("neon"); err != nil {
		t.Fatalf("select template: %v", err)
	}
	if w.Draft().Template != offer.DefaultTemplate {
		t.Fatalf("template = %q, want default", w.Draft().Template)
	}
}

func TestStateRoundTripThroughJSON(t *testing.T) {
	t.Parallel()

	w := New()
	if err := w.SelectMode(ModeScratch); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := w.Interview().Submit("Coaching"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	payload, err := json.Marshal(w.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded State
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := Restore(decoded)
	if diff := cmp.Diff(w.State(), restored.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if restored.Interview().Step != 1 {
		t.Fatalf("interview step = %d, want 1", restored.Interview().Step)
	}
}

func TestRestoreInvalidStepRestarts(t *testing.T) {
	t.Parallel()

	if got := Restore(State{Step: "bogus"}).Step(); got != StepMode {
		t.Fatalf("step = %q, want mode", got)
	}
	if got := Restore(State{Step: StepInput}).Step(); got != StepMode {
		t.Fatalf("input without mode step = %q, want mode", got)
	}
}

func TestSubmitTokenReplay(t *testing.T) {
	t.Parallel()

	w := Restore(State{Step: StepCustomize, Draft: offer.NewDraft()})
	issued := 0
	issue := func() string {
		issued++
		return "tok-1"
	}
	token := w.SubmitToken(issue)
	if again := w.SubmitToken(issue); again != token || issued != 1 {
		t.Fatalf("token reissued: %q/%q, issued=%d", token, again, issued)
	}
	if _, ok := w.SavedOffer(token); ok {
		t.Fatal("token should not be saved yet")
	}

	saved := offer.Offer{ID: "o-9", Draft: w.Draft()}
	if err := w.MarkSaved(token, saved); err != nil {
		t.Fatalf("mark saved: %v", err)
	}
	id, ok := w.SavedOffer(token)
	if !ok || id != "o-9" {
		t.Fatalf("saved offer = %q,%v, want o-9,true", id, ok)
	}
	if w.OfferID() != "o-9" || !w.CanExport() {
		t.Fatalf("offer id = %q, export = %v", w.OfferID(), w.CanExport())
	}
	if w.State().SubmitToken != "" {
		t.Fatal("pending token should be cleared after save")
	}
}
