// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/closealead/internal/services/web/i18n"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

// RequestResolver resolves viewer and flash state from a request.
// This decouples platform rendering from module handler bases.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	FlashWriter() flashnotice.Writer
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a page inside the shared layout. HTMX requests get
// only the main region and leave any pending flash notice for the next full
// render.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent(nil).Render(ctx, &buf); err != nil {
			return err
		}
		return writeBuffered(w, statusCode, &buf)
	}

	var viewer module.Viewer
	var flash flashnotice.Writer
	if resolver != nil {
		viewer = resolver.ResolveRequestViewer(r)
		flash = resolver.FlashWriter()
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Title:       page.Title,
		Lang:        lang,
		Loc:         loc,
		CurrentPath: requestPath(r),
		Chrome:      chrome(viewer, loc),
		Toast:       resolveFlashToast(w, r, flash, loc),
	})
	if err := layout.Render(ctx, &buf); err != nil {
		return err
	}
	return writeBuffered(w, statusCode, &buf)
}

// WriteFragment writes a bare component with no layout, for HTMX partials
// such as the live preview.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	return writeBuffered(w, statusCode, &buf)
}

func writeBuffered(w http.ResponseWriter, statusCode int, buf *bytes.Buffer) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}

func chrome(viewer module.Viewer, loc webtemplates.Localizer) webtemplates.Chrome {
	if !viewer.SignedIn {
		return webtemplates.Chrome{}
	}
	out := webtemplates.Chrome{SignedIn: true, UserName: strings.TrimSpace(viewer.Name), CanCreate: viewer.CanCreate}
	if key := strings.TrimSpace(viewer.PlanKey); key != "" {
		out.PlanName = webtemplates.T(loc, key)
	}
	return out
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, flash flashnotice.Writer, loc webtemplates.Localizer) *webtemplates.Toast {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
		Detail:  notice.Detail,
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
