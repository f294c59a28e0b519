package creator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
	"github.com/louisbranch/closealead/internal/offer/upload"
	"github.com/louisbranch/closealead/internal/offer/wizard"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
	"golang.org/x/sync/singleflight"
)

// newDraftKey stores the wizard of the offer being created.
const newDraftKey = "new"

const (
	keyInvalidStep   = "web.errors.invalid_step"
	keyStoreFailed   = "web.errors.draft_store_failed"
	keyOfferNotFound = "web.errors.offer_not_found"
	keyOfferLimit    = "web.errors.offer_limit"
	keyEditLimit     = "web.errors.edit_limit"
)

var (
	errStoreUnavailable = apperrors.EK(apperrors.KindUnavailable, keyStoreFailed, "wizard store is not configured")
	errOfferLimit       = apperrors.EK(apperrors.KindForbidden, keyOfferLimit, "offer limit reached")
)

// offerDraftKey stores the wizard of a persisted offer.
func offerDraftKey(offerID string) string {
	return "offer:" + offerID
}

type serviceDeps struct {
	gateway   OfferGateway
	wizards   webstorage.WizardStore
	sessions  SessionUpdater
	renderer  Renderer
	extractor upload.Extractor
	synth     guided.Synthesizer
	newToken  func() string
}

type service struct {
	serviceDeps
	saves *singleflight.Group
}

func newService(deps serviceDeps) service {
	return service{serviceDeps: deps, saves: &singleflight.Group{}}
}

// loadNew returns the stored creation wizard, or a fresh one. Unreadable
// snapshots start over.
func (s service) loadNew(ctx context.Context, session websession.Session) (*wizard.Wizard, error) {
	w, found, err := s.load(ctx, session, newDraftKey)
	if err != nil {
		return nil, err
	}
	if !found {
		w = wizard.New()
	}
	return w, nil
}

// loadOffer returns the stored editor wizard of offerID, fetching the offer
// from the backend when none is cached.
func (s service) loadOffer(ctx context.Context, session websession.Session, offerID string) (*wizard.Wizard, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return nil, apperrors.EK(apperrors.KindNotFound, keyOfferNotFound, "offer id is required")
	}
	w, found, err := s.load(ctx, session, offerDraftKey(offerID))
	if err != nil {
		return nil, err
	}
	if found && w.OfferID() == offerID {
		return w, nil
	}
	persisted, err := s.gateway.GetOffer(ctx, session.Token, offerID)
	if err != nil {
		return nil, err
	}
	w = wizard.Resume(offerID, persisted.Draft)
	if err := s.store(ctx, session, offerDraftKey(offerID), w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s service) load(ctx context.Context, session websession.Session, key string) (*wizard.Wizard, bool, error) {
	if s.wizards == nil {
		return nil, false, errStoreUnavailable
	}
	record, found, err := s.wizards.GetWizardState(ctx, session.ID, key)
	if err != nil {
		return nil, false, apperrors.EK(apperrors.KindUnavailable, keyStoreFailed, fmt.Sprintf("load wizard state: %v", err))
	}
	if !found {
		return nil, false, nil
	}
	var state wizard.State
	if err := json.Unmarshal(record.Payload, &state); err != nil {
		return nil, false, nil
	}
	return wizard.Restore(state), true, nil
}

func (s service) store(ctx context.Context, session websession.Session, key string, w *wizard.Wizard) error {
	if s.wizards == nil {
		return errStoreUnavailable
	}
	payload, err := json.Marshal(w.State())
	if err != nil {
		return fmt.Errorf("encode wizard state: %w", err)
	}
	if err := s.wizards.PutWizardState(ctx, webstorage.WizardRecord{
		SessionID: session.ID,
		DraftKey:  key,
		Payload:   payload,
	}); err != nil {
		return apperrors.EK(apperrors.KindUnavailable, keyStoreFailed, fmt.Sprintf("store wizard state: %v", err))
	}
	return nil
}

// discard drops the cached editor wizard of offerID.
func (s service) discard(ctx context.Context, session websession.Session, offerID string) error {
	if s.wizards == nil {
		return errStoreUnavailable
	}
	if err := s.wizards.DeleteWizardState(ctx, session.ID, offerDraftKey(offerID)); err != nil {
		return apperrors.EK(apperrors.KindUnavailable, keyStoreFailed, fmt.Sprintf("delete wizard state: %v", err))
	}
	return nil
}

// restart replaces the creation wizard with a fresh one. Tokens of earlier
// saves are kept so a replayed submission still resolves to its offer.
func (s service) restart(ctx context.Context, session websession.Session, previous *wizard.Wizard) (*wizard.Wizard, error) {
	state := wizard.New().State()
	if previous != nil {
		state.SavedTokens = previous.State().SavedTokens
	}
	w := wizard.Restore(state)
	return w, s.store(ctx, session, newDraftKey, w)
}

// answer records one guided answer and completes the input step after the
// last prompt.
func (s service) answer(w *wizard.Wizard, text string) error {
	if w.Step() != wizard.StepInput || w.Mode() != wizard.ModeScratch {
		return invalidStep(w)
	}
	iv := w.Interview()
	if err := iv.Submit(text); err != nil {
		return err
	}
	if !iv.Done() {
		return nil
	}
	return w.CompleteInput(wizard.ScratchInput{Answers: iv.Answers, Synthesizer: s.synth})
}

// redesign extracts fields from an uploaded document and completes the
// input step.
func (s service) redesign(ctx context.Context, w *wizard.Wizard, file upload.File) error {
	if w.Step() != wizard.StepInput || w.Mode() != wizard.ModeRedesign {
		return invalidStep(w)
	}
	patch, err := s.extractor.Extract(ctx, file)
	if err != nil {
		return fmt.Errorf("extract upload: %w", err)
	}
	return w.CompleteInput(wizard.UploadInput{Extracted: patch})
}

// createOffer persists the creation draft. A token that already produced an
// offer returns that offer id without calling the backend; concurrent saves
// with one token share a single backend call. New offers must fit the plan
// ceiling.
func (s service) createOffer(ctx context.Context, session websession.Session, w *wizard.Wizard, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = w.SubmitToken(s.newToken)
	}
	if id, ok := w.SavedOffer(token); ok {
		return id, nil
	}
	if !w.CanSave() {
		return "", invalidStep(w)
	}
	if !plan.CanCreate(string(session.Plan), session.OfferCount) {
		return "", errOfferLimit
	}
	draft := w.Draft()
	result, err, _ := s.saves.Do("create:"+session.ID+":"+token, func() (any, error) {
		return s.gateway.CreateOffer(context.WithoutCancel(ctx), session.Token, token, draft)
	})
	if err != nil {
		return "", err
	}
	saved := result.(offer.Offer)
	if err := w.MarkSaved(token, saved); err != nil {
		return "", err
	}
	if s.sessions != nil {
		_ = s.sessions.UpdateOfferCount(ctx, session, session.OfferCount+1)
	}
	// Seed the editor cache; on failure the editor fetches the offer instead.
	_ = s.store(ctx, session, offerDraftKey(saved.ID), wizard.Resume(saved.ID, saved.Draft))
	return saved.ID, nil
}

// updateOffer persists the editor draft of a persisted offer. The edit
// quota is only displayed here; the backend refuses saves past it.
func (s service) updateOffer(ctx context.Context, session websession.Session, w *wizard.Wizard) error {
	if !w.CanSave() || w.OfferID() == "" {
		return invalidStep(w)
	}
	id, draft := w.OfferID(), w.Draft()
	result, err, _ := s.saves.Do("update:"+session.ID+":"+id, func() (any, error) {
		return s.gateway.UpdateOffer(context.WithoutCancel(ctx), session.Token, id, draft)
	})
	if apperrors.Is(err, apperrors.KindForbidden) {
		return apperrors.EK(apperrors.KindForbidden, keyEditLimit, apperrors.Message(err))
	}
	if err != nil {
		return err
	}
	return w.MarkSaved("", result.(offer.Offer))
}

func (s service) export(ctx context.Context, session websession.Session, w *wizard.Wizard) (offersapi.Document, error) {
	if !w.CanExport() {
		return offersapi.Document{}, invalidStep(w)
	}
	return s.gateway.ExportOffer(ctx, session.Token, w.OfferID())
}

func invalidStep(w *wizard.Wizard) error {
	return apperrors.EK(apperrors.KindConflict, keyInvalidStep, fmt.Sprintf("%v at step %q", wizard.ErrInvalidTransition, w.Step()))
}

// transitionError maps wizard transition failures onto a conflict.
func transitionError(w *wizard.Wizard, err error) error {
	if errors.Is(err, wizard.ErrInvalidTransition) {
		return invalidStep(w)
	}
	return err
}
