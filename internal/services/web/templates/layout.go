package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

// MainID is the element id swapped by HTMX navigation.
const MainID = "main"

// Chrome carries the signed-in state shown in the navigation bar.
type Chrome struct {
	SignedIn  bool
	UserName  string
	PlanName  string
	CanCreate bool
}

// Toast is a one-time notice rendered above page content.
type Toast struct {
	Kind    string
	Message string
	Detail  string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
	Chrome      Chrome
	Toast       *Toast
}

// Layout renders the full document shell around the children component.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		title := T(page.Loc, "web.app.name")
		if t := strings.TrimSpace(page.Title); t != "" {
			title = t + " | " + title
		}
		m.raw(`<!doctype html><html`)
		m.attr("lang", lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(title)
		m.raw(`</title><meta name="description"`)
		m.attr("content", T(page.Loc, "web.meta.description"))
		m.raw(`><link rel="stylesheet" href="` + routepath.Static + `app.css">`)
		m.raw(`<script defer src="` + routepath.Static + `app.js"></script></head><body>`)
		navigation(m, page)
		m.raw(`<main`)
		m.attr("id", MainID)
		m.raw(` class="main">`)
		toast(m, page.Toast)
		m.component(ctx, templ.GetChildren(ctx))
		m.raw(`</main><footer class="footer"><p>`)
		m.text(T(page.Loc, "web.footer.tagline"))
		m.raw(`</p></footer></body></html>`)
	})
}

// MainContent renders only the main region children for HTMX swaps.
func MainContent(t *Toast) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		toast(m, t)
		m.component(ctx, templ.GetChildren(ctx))
	})
}

func navigation(m *markup, page PageContext) {
	m.raw(`<nav class="nav"><a class="nav__brand" href="` + routepath.Root + `">`)
	m.text(T(page.Loc, "web.app.name"))
	m.raw(`</a><div class="nav__links">`)
	navLink(m, page, routepath.Pricing, "web.nav.pricing")
	if page.Chrome.SignedIn {
		navLink(m, page, routepath.Dashboard, "web.nav.dashboard")
		if page.Chrome.CanCreate {
			navLink(m, page, routepath.Create, "web.nav.create")
		} else {
			m.raw(`<span class="nav__link nav__link--disabled" aria-disabled="true">`)
			m.text(T(page.Loc, "web.nav.create"))
			m.raw(`</span>`)
		}
		m.raw(`<span class="nav__user">`)
		m.text(page.Chrome.UserName)
		if page.Chrome.PlanName != "" {
			m.raw(` <span class="badge">`)
			m.text(page.Chrome.PlanName)
			m.raw(`</span>`)
		}
		m.raw(`</span><form method="post" action="` + routepath.Logout + `" class="nav__logout"><button type="submit" class="button button--ghost">`)
		m.text(T(page.Loc, "web.nav.logout"))
		m.raw(`</button></form>`)
	} else {
		navLink(m, page, routepath.Login, "web.nav.login")
		m.raw(`<a class="button" href="` + routepath.Signup + `">`)
		m.text(T(page.Loc, "web.nav.signup"))
		m.raw(`</a>`)
	}
	m.raw(`</div></nav>`)
}

func navLink(m *markup, page PageContext, href, key string) {
	m.raw(`<a class="nav__link`)
	if isCurrent(page.CurrentPath, href) {
		m.raw(` nav__link--active" aria-current="page`)
	}
	m.raw(`"`)
	m.attr("href", href)
	m.raw(`>`)
	m.text(T(page.Loc, key))
	m.raw(`</a>`)
}

func isCurrent(current, href string) bool {
	current = strings.TrimSuffix(strings.TrimSpace(current), "/")
	return current == href || strings.HasPrefix(current, href+"/")
}

func toast(m *markup, t *Toast) {
	if t == nil || strings.TrimSpace(t.Message) == "" {
		return
	}
	kind := strings.TrimSpace(t.Kind)
	if kind == "" {
		kind = "info"
	}
	m.raw(`<div role="status"`)
	m.attr("class", "toast toast--"+kind)
	m.raw(`><p>`)
	m.text(t.Message)
	m.raw(`</p>`)
	if detail := strings.TrimSpace(t.Detail); detail != "" {
		m.raw(`<p class="toast__detail">`)
		m.text(detail)
		m.raw(`</p>`)
	}
	m.raw(`</div>`)
}
