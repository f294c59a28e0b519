// Package publichandler provides a shared base for unauthenticated web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public pages.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/closealead/internal/services/web/i18n"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/pagerender"
	"github.com/louisbranch/closealead/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public modules.
type Base struct {
	resolveViewer module.ResolveViewer
	flash         flashnotice.Writer
}

// Option configures a Base.
type Option func(*Base)

// WithResolveViewer attaches a viewer resolver for chrome rendering.
func WithResolveViewer(rv module.ResolveViewer) Option {
	return func(b *Base) { b.resolveViewer = rv }
}

// WithFlash sets the writer used for one-time notices.
func WithFlash(flash flashnotice.Writer) Option {
	return func(b *Base) { b.flash = flash }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// ResolveRequestViewer resolves viewer state for the request.
// Returns a zero Viewer when no resolver is configured.
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

// IsViewerSignedIn reports whether the current request is authenticated.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	return b.ResolveRequestViewer(r).SignedIn
}

// PageLocalizer resolves a localizer and language tag from the request.
func (Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a full public page.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   body,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.resolveViewer)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.resolveViewer)
}
