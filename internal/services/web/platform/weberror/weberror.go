// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/closealead/internal/services/web/i18n"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolveViewer module.ResolveViewer) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), webtemplates.AppErrorState(statusCode, loc))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		if err := webtemplates.MainContent(nil).Render(ctx, w); err != nil {
			http.Error(w, PublicMessage(loc, err), statusCode)
		}
		return
	}

	var chrome webtemplates.Chrome
	if resolveViewer != nil {
		if viewer := resolveViewer(r); viewer.SignedIn {
			chrome = webtemplates.Chrome{SignedIn: true, UserName: viewer.Name, CanCreate: viewer.CanCreate}
		}
	}
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	w.WriteHeader(statusCode)
	layout := webtemplates.Layout(webtemplates.PageContext{
		Title:       webtemplates.AppErrorPageTitle(statusCode, loc),
		Lang:        lang,
		Loc:         loc,
		CurrentPath: path,
		Chrome:      chrome,
	})
	if err := layout.Render(ctx, w); err != nil {
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolveViewer module.ResolveViewer) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolveViewer)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
