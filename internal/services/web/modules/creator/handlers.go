package creator

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
	"github.com/louisbranch/closealead/internal/offer/upload"
	"github.com/louisbranch/closealead/internal/offer/wizard"
	"github.com/louisbranch/closealead/internal/plan"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

const (
	keyOfferLimitFlash = "web.flash.offer_limit"
	keyOfferSaved      = "web.flash.offer_saved"
	keyOfferUpdated    = "web.flash.offer_updated"
	keyOfferSaveFailed = "web.flash.offer_save_failed"
	keyOfferLoadFailed = "web.flash.offer_load_failed"
	keyExportFailed    = "web.flash.export_failed"
	keyEditsDiscarded  = "web.flash.edits_discarded"
	keyAnswerRequired  = "web.guided.error.empty"
	keyInvalidRequest  = "web.errors.invalid_request"
	keyUnknownMode     = "web.errors.unknown_mode"
	keyUnknownTemplate = "web.errors.unknown_template"
	keyPreviewFailed   = "web.errors.preview_failed"
)

const (
	multipartMemory = 1 << 20
	// uploadOverhead covers multipart framing around the document.
	uploadOverhead = 1 << 20
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

// surface is one editor: the new-offer wizard or a persisted offer.
type surface struct {
	paths    editorPaths
	key      string
	showStep bool
	load     func(context.Context, websession.Session) (*wizard.Wizard, error)
}

func (h handlers) createSurface() surface {
	return surface{
		paths:    createPaths(),
		key:      newDraftKey,
		showStep: true,
		load:     h.service.loadNew,
	}
}

func (h handlers) editSurface(offerID string) surface {
	return surface{
		paths: editPaths(offerID),
		key:   offerDraftKey(offerID),
		load: func(ctx context.Context, s websession.Session) (*wizard.Wizard, error) {
			return h.service.loadOffer(ctx, s, offerID)
		},
	}
}

func (h handlers) requireSession(w http.ResponseWriter, r *http.Request) (websession.Session, bool) {
	session, ok := h.RequestSession(r)
	if !ok {
		h.Redirect(w, r, routepath.Login, nil)
	}
	return session, ok
}

// loadCreate returns the creation wizard, redirecting to the dashboard when
// the plan has no room for another offer.
func (h handlers) loadCreate(w http.ResponseWriter, r *http.Request) (websession.Session, *wizard.Wizard, bool) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return session, nil, false
	}
	if !plan.CanCreate(string(session.Plan), session.OfferCount) {
		notice := flashnotice.NoticeWarning(keyOfferLimitFlash)
		h.Redirect(w, r, routepath.Dashboard, &notice)
		return session, nil, false
	}
	wz, err := h.service.loadNew(r.Context(), session)
	if err != nil {
		h.WriteError(w, r, err)
		return session, nil, false
	}
	return session, wz, true
}

// saveAndContinue stores the creation wizard and returns to its current step.
func (h handlers) saveAndContinue(w http.ResponseWriter, r *http.Request, session websession.Session, wz *wizard.Wizard) {
	if err := h.service.store(r.Context(), session, newDraftKey, wz); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.Create, nil)
}

func (h handlers) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	session, wz, ok := h.loadCreate(w, r)
	if !ok {
		return
	}
	h.renderStep(w, r, session, wz, http.StatusOK, "")
}

// renderStep writes the page of the wizard's current step. errKey annotates
// the input step after a rejected submission.
func (h handlers) renderStep(w http.ResponseWriter, r *http.Request, session websession.Session, wz *wizard.Wizard, status int, errKey string) {
	token := wz.SubmitToken(h.service.newToken)
	if err := h.service.store(r.Context(), session, newDraftKey, wz); err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	var page templ.Component
	switch wz.Step() {
	case wizard.StepMode:
		page = webtemplates.ModeStep(modeView(loc, token), loc)
	case wizard.StepInput:
		if wz.Mode() == wizard.ModeRedesign {
			page = webtemplates.UploadStep(uploadView(loc, token, errKey), loc)
		} else {
			page = webtemplates.GuidedStep(guidedView(loc, wz, token, errKey), loc)
		}
	case wizard.StepTemplate:
		page = webtemplates.TemplateStep(templateView(loc, wz, token), loc)
	default:
		section := offer.ParseSection(r.URL.Query().Get(routepath.SectionQueryKey))
		h.renderEditor(w, r, session, h.createSurface(), wz, section, nil)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.creator.title"), status, page)
}

func (h handlers) handleMode(w http.ResponseWriter, r *http.Request) {
	session, wz, ok := h.loadCreate(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse mode form"))
		return
	}
	mode, ok := wizard.ParseMode(r.PostFormValue("mode"))
	if !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyUnknownMode, "unknown creation mode"))
		return
	}
	if err := wz.SelectMode(mode); err != nil {
		h.WriteError(w, r, transitionError(wz, err))
		return
	}
	h.saveAndContinue(w, r, session, wz)
}

func (h handlers) handleAnswer(w http.ResponseWriter, r *http.Request) {
	session, wz, ok := h.loadCreate(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse answer form"))
		return
	}
	if err := h.service.answer(wz, r.PostFormValue("answer")); err != nil {
		if errors.Is(err, guided.ErrEmptyAnswer) {
			h.renderStep(w, r, session, wz, http.StatusBadRequest, keyAnswerRequired)
			return
		}
		h.WriteError(w, r, transitionError(wz, err))
		return
	}
	h.saveAndContinue(w, r, session, wz)
}

func (h handlers) handleUpload(w http.ResponseWriter, r *http.Request) {
	session, wz, ok := h.loadCreate(w, r)
	if !ok {
		return
	}
	if wz.Step() != wizard.StepInput || wz.Mode() != wizard.ModeRedesign {
		h.WriteError(w, r, invalidStep(wz))
		return
	}
	file, err := readUpload(w, r)
	if err != nil {
		h.renderStep(w, r, session, wz, http.StatusBadRequest, uploadErrorKey(err))
		return
	}
	if err := h.service.redesign(r.Context(), wz, file); err != nil {
		h.WriteError(w, r, transitionError(wz, err))
		return
	}
	h.saveAndContinue(w, r, session, wz)
}

// readUpload reads the posted document, mapping oversized bodies onto
// upload.ErrTooLarge and a missing part onto upload.ErrEmpty.
func readUpload(w http.ResponseWriter, r *http.Request) (upload.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxBytes+uploadOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return upload.File{}, upload.ErrTooLarge
		}
		return upload.File{}, upload.ErrEmpty
	}
	part, header, err := r.FormFile("document")
	if err != nil {
		return upload.File{}, upload.ErrEmpty
	}
	defer part.Close()
	return upload.Read(header.Filename, part)
}

func (h handlers) handleTemplate(w http.ResponseWriter, r *http.Request) {
	session, wz, ok := h.loadCreate(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse template form"))
		return
	}
	tmpl, ok := offer.ParseTemplate(r.PostFormValue("template"))
	if !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyUnknownTemplate, "unknown template"))
		return
	}
	if err := wz.SelectTemplate(tmpl); err != nil {
		h.WriteError(w, r, transitionError(wz, err))
		return
	}
	h.saveAndContinue(w, r, session, wz)
}

func (h handlers) handleCreateCustomize(w http.ResponseWriter, r *http.Request) {
	h.customize(w, r, h.createSurface())
}

func (h handlers) handleCreatePreview(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, h.createSurface())
}

func (h handlers) handleCreateSave(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	wz, err := h.service.loadNew(r.Context(), session)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse save form"))
		return
	}
	id, err := h.service.createOffer(r.Context(), session, wz, r.PostFormValue("submit_token"))
	if err != nil {
		if apperrors.Is(err, apperrors.KindForbidden) {
			notice := flashnotice.NoticeWarning(keyOfferLimitFlash)
			h.Redirect(w, r, routepath.Dashboard, &notice)
			return
		}
		_ = h.service.store(r.Context(), session, newDraftKey, wz)
		notice := flashnotice.NoticeError(keyOfferSaveFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Create, &notice)
		return
	}
	if _, err := h.service.restart(r.Context(), session, wz); err != nil {
		h.WriteError(w, r, err)
		return
	}
	notice := flashnotice.NoticeSuccess(keyOfferSaved)
	h.Redirect(w, r, routepath.Edit(id), &notice)
}

func (h handlers) handleRestart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	previous, err := h.service.loadNew(r.Context(), session)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.restart(r.Context(), session, previous); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Redirect(w, r, routepath.Create, nil)
}

func (h handlers) handleEditPage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	s := h.editSurface(r.PathValue("offerID"))
	wz, err := s.load(r.Context(), session)
	if err != nil {
		notice := flashnotice.NoticeError(keyOfferLoadFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Dashboard, &notice)
		return
	}
	section := offer.ParseSection(r.URL.Query().Get(routepath.SectionQueryKey))
	h.renderEditor(w, r, session, s, wz, section, nil)
}

func (h handlers) handleEditCustomize(w http.ResponseWriter, r *http.Request) {
	h.customize(w, r, h.editSurface(r.PathValue("offerID")))
}

func (h handlers) handleEditPreview(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, h.editSurface(r.PathValue("offerID")))
}

func (h handlers) handleEditSave(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	offerID := r.PathValue("offerID")
	s := h.editSurface(offerID)
	wz, err := s.load(r.Context(), session)
	if err != nil {
		notice := flashnotice.NoticeError(keyOfferLoadFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Dashboard, &notice)
		return
	}
	if err := h.service.updateOffer(r.Context(), session, wz); err != nil {
		key := keyOfferSaveFailed
		if apperrors.Is(err, apperrors.KindForbidden) {
			key = keyEditLimit
		}
		notice := flashnotice.NoticeError(key, apperrors.Message(err))
		h.Redirect(w, r, routepath.Edit(offerID), &notice)
		return
	}
	if err := h.service.store(r.Context(), session, s.key, wz); err != nil {
		// The offer is saved; a stale cache is refetched after reload.
		_ = h.service.discard(r.Context(), session, offerID)
	}
	notice := flashnotice.NoticeSuccess(keyOfferUpdated)
	h.Redirect(w, r, routepath.Edit(offerID), &notice)
}

func (h handlers) handleEditExport(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	offerID := r.PathValue("offerID")
	wz, err := h.editSurface(offerID).load(r.Context(), session)
	if err != nil {
		notice := flashnotice.NoticeError(keyOfferLoadFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Dashboard, &notice)
		return
	}
	doc, err := h.service.export(r.Context(), session, wz)
	if err != nil {
		notice := flashnotice.NoticeError(keyExportFailed, apperrors.Message(err))
		h.Redirect(w, r, routepath.Edit(offerID), &notice)
		return
	}
	if err := httpx.WriteAttachment(w, doc.ContentType, doc.Filename, doc.Body); err != nil {
		h.WriteError(w, r, err)
	}
}

func (h handlers) handleEditReload(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	offerID := r.PathValue("offerID")
	if err := h.service.discard(r.Context(), session, offerID); err != nil {
		h.WriteError(w, r, err)
		return
	}
	notice := flashnotice.NoticeSuccess(keyEditsDiscarded)
	h.Redirect(w, r, routepath.Edit(offerID), &notice)
}

// customize applies one section of the panel. HTMX submissions get the
// refreshed preview; plain posts return to the section, staying on the form
// when an input was adjusted.
func (h handlers) customize(w http.ResponseWriter, r *http.Request, s surface) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	wz, err := s.load(r.Context(), session)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if !wz.CanSave() {
		h.WriteError(w, r, invalidStep(wz))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse customize form"))
		return
	}
	section := offer.ParseSection(r.PostFormValue("section"))
	actions, notices := offer.ActionsFromForm(wz.Draft(), section, r.PostForm)
	if err := wz.Apply(actions...); err != nil {
		h.WriteError(w, r, transitionError(wz, err))
		return
	}
	if err := h.service.store(r.Context(), session, s.key, wz); err != nil {
		h.WriteError(w, r, err)
		return
	}
	switch {
	case httpx.IsHTMXRequest(r):
		h.writePreview(w, r, s, wz)
	case len(notices) > 0:
		h.renderEditor(w, r, session, s, wz, section, notices)
	default:
		h.Redirect(w, r, routepath.WithSection(s.paths.base, string(section)), nil)
	}
}

func (h handlers) preview(w http.ResponseWriter, r *http.Request, s surface) {
	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	wz, err := s.load(r.Context(), session)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writePreview(w, r, s, wz)
}

func (h handlers) writePreview(w http.ResponseWriter, r *http.Request, s surface, wz *wizard.Wizard) {
	html, err := h.previewHTML(wz)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, webtemplates.Preview(s.paths.preview, html, loc))
}

func (h handlers) previewHTML(wz *wizard.Wizard) (string, error) {
	doc, err := h.service.renderer.Render(wz.Draft())
	if err != nil {
		return "", apperrors.EK(apperrors.KindUnknown, keyPreviewFailed, "render preview: "+err.Error())
	}
	return doc.HTML, nil
}

func (h handlers) renderEditor(w http.ResponseWriter, r *http.Request, session websession.Session, s surface, wz *wizard.Wizard, section offer.Section, notices []offer.Notice) {
	html, err := h.previewHTML(wz)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := editorView(loc, editorInput{
		paths:    s.paths,
		wizard:   wz,
		section:  section,
		notices:  notices,
		preview:  html,
		token:    wz.SubmitToken(nil),
		planName: string(session.Plan),
		showStep: s.showStep,
	})
	h.WritePage(w, r, view.Heading, http.StatusOK, webtemplates.EditorPage(view, loc))
}
