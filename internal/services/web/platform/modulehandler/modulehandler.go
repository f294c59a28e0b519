// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules (dashboard, create, edit) share handler infrastructure for
// session lookup, localization, page rendering, flash notices and error
// handling. Modules embed Base rather than duplicating it.
package modulehandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/plan"
	webi18n "github.com/louisbranch/closealead/internal/services/web/i18n"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	"github.com/louisbranch/closealead/internal/services/web/platform/pagerender"
	"github.com/louisbranch/closealead/internal/services/web/platform/weberror"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

// Base carries the shared request-scoped collaborators used by protected
// module handlers.
type Base struct {
	resolveViewer module.ResolveViewer
	flash         flashnotice.Writer
}

// NewBase builds a handler base. A nil resolver derives the viewer from the
// request session.
func NewBase(resolveViewer module.ResolveViewer, flash flashnotice.Writer) Base {
	if resolveViewer == nil {
		resolveViewer = SessionViewer
	}
	return Base{resolveViewer: resolveViewer, flash: flash}
}

// NewTestBase builds a handler base that derives the viewer from the request
// session and writes insecure flash cookies.
func NewTestBase() Base {
	return NewBase(nil, flashnotice.Writer{})
}

// SessionViewer resolves chrome state from the session stored by
// websession.Middleware.
func SessionViewer(r *http.Request) module.Viewer {
	if r == nil {
		return module.Viewer{}
	}
	s, ok := websession.FromContext(r.Context())
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{
		SignedIn:  true,
		Name:      s.Name,
		PlanKey:   s.Plan.NameKey(),
		CanCreate: plan.CanCreate(string(s.Plan), s.OfferCount),
	}
}

// ResolveRequestViewer resolves chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// FlashWriter returns the writer used for one-time notices.
func (b Base) FlashWriter() flashnotice.Writer {
	return b.flash
}

// RequestSession returns the session of the signed-in user.
func (Base) RequestSession(r *http.Request) (websession.Session, bool) {
	if r == nil {
		return websession.Session{}, false
	}
	return websession.FromContext(r.Context())
}

// RequestPlan returns the session plan, defaulting to free.
func (b Base) RequestPlan(r *http.Request) plan.ID {
	s, ok := b.RequestSession(r)
	if !ok {
		return plan.Free
	}
	return s.Plan
}

// PageLocalizer resolves a localizer and language tag from the request.
func (Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// Redirect stores notice, when set, and redirects to location.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string, notice *flashnotice.Notice) {
	if notice != nil && strings.TrimSpace(notice.Key) != "" {
		b.flash.Write(w, r, *notice)
	}
	httpx.WriteRedirect(w, r, location)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.resolveViewer)
}

// WriteNotFound renders a 404 error page within the layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.resolveViewer)
}

// WritePage renders a full module page (HTMX-aware) with the given title and
// content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare partial without the layout.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}
