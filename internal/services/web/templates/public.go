package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

var landingFeatureKeys = []string{
	"web.landing.feature.design",
	"web.landing.feature.brand",
	"web.landing.feature.templates",
	"web.landing.feature.redesign",
	"web.landing.feature.tracking",
	"web.landing.feature.export",
}

// LandingView configures the landing page call to action.
type LandingView struct {
	SignedIn bool
}

// LandingPage renders the marketing landing page.
func LandingPage(view LandingView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="hero"><h1>`)
		m.text(T(loc, "web.landing.headline"))
		m.raw(`</h1><p class="hero__lead">`)
		m.text(T(loc, "web.landing.lead"))
		m.raw(`</p><div class="hero__actions">`)
		if view.SignedIn {
			m.raw(`<a class="button button--large" href="` + routepath.Create + `">`)
			m.text(T(loc, "web.landing.cta_create"))
		} else {
			m.raw(`<a class="button button--large" href="` + routepath.Signup + `">`)
			m.text(T(loc, "web.landing.cta_signup"))
		}
		m.raw(`</a><a class="button button--ghost button--large" href="` + routepath.Pricing + `">`)
		m.text(T(loc, "web.landing.cta_pricing"))
		m.raw(`</a></div></section><section class="features"><h2>`)
		m.text(T(loc, "web.landing.features_heading"))
		m.raw(`</h2><ul class="features__grid">`)
		for _, key := range landingFeatureKeys {
			m.raw(`<li class="card"><h3>`)
			m.text(T(loc, key+".title"))
			m.raw(`</h3><p>`)
			m.text(T(loc, key+".body"))
			m.raw(`</p></li>`)
		}
		m.raw(`</ul></section>`)
	})
}

// PricingTier is one rendered plan card.
type PricingTier struct {
	ID          string
	Name        string
	Price       string
	BilledNote  string
	Features    []string
	Highlighted bool
	Current     bool
}

// PricingView lists plan cards for one billing period.
type PricingView struct {
	Annual   bool
	SignedIn bool
	Tiers    []PricingTier
}

// PricingPage renders the plan comparison with a billing toggle.
func PricingPage(view PricingView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="pricing"><h1>`)
		m.text(T(loc, "web.pricing.heading"))
		m.raw(`</h1><p>`)
		m.text(T(loc, "web.pricing.lead"))
		m.raw(`</p><div class="toggle" role="group">`)
		billingToggle(m, loc, "monthly", "web.pricing.monthly", !view.Annual)
		billingToggle(m, loc, "annual", "web.pricing.annual", view.Annual)
		m.raw(`</div><ul class="pricing__grid">`)
		for _, tier := range view.Tiers {
			class := "card pricing__tier"
			if tier.Highlighted {
				class += " pricing__tier--highlighted"
			}
			m.raw(`<li`)
			m.attr("class", class)
			m.attr("data-plan", tier.ID)
			m.raw(`>`)
			if tier.Highlighted {
				m.raw(`<span class="badge">`)
				m.text(T(loc, "web.pricing.popular"))
				m.raw(`</span>`)
			}
			m.raw(`<h2>`)
			m.text(tier.Name)
			m.raw(`</h2><p class="pricing__price">`)
			m.text(tier.Price)
			m.raw(`<span>`)
			m.text(T(loc, "web.pricing.per_month"))
			m.raw(`</span></p>`)
			if tier.BilledNote != "" {
				m.raw(`<p class="pricing__note">`)
				m.text(tier.BilledNote)
				m.raw(`</p>`)
			}
			m.raw(`<ul class="checklist">`)
			for _, feature := range tier.Features {
				m.raw(`<li>`)
				m.text(feature)
				m.raw(`</li>`)
			}
			m.raw(`</ul>`)
			switch {
			case tier.Current:
				m.raw(`<span class="button button--disabled">`)
				m.text(T(loc, "web.pricing.current_plan"))
				m.raw(`</span>`)
			case view.SignedIn:
				m.raw(`<a class="button" href="` + routepath.Dashboard + `">`)
				m.text(T(loc, "web.pricing.go_dashboard"))
				m.raw(`</a>`)
			default:
				m.raw(`<a class="button"`)
				m.attr("href", routepath.SignupWithPlan(tier.ID))
				m.raw(`>`)
				m.text(T(loc, "web.pricing.choose"))
				m.raw(`</a>`)
			}
			m.raw(`</li>`)
		}
		m.raw(`</ul></section>`)
	})
}

func billingToggle(m *markup, loc Localizer, value, key string, active bool) {
	class := "toggle__option"
	if active {
		class += " toggle__option--active"
	}
	m.raw(`<a`)
	m.attr("class", class)
	m.attr("href", routepath.PricingWithBilling(value))
	m.raw(`>`)
	m.text(T(loc, key))
	m.raw(`</a>`)
}

// LoginView carries login form values and field errors.
type LoginView struct {
	Email  string
	Errors map[string]string
}

// LoginPage renders the sign-in form.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="auth card"><h1>`)
		m.text(T(loc, "web.login.heading"))
		m.raw(`</h1><form method="post" action="` + routepath.Login + `" novalidate>`)
		fieldError(m, view.Errors, "form")
		inputField(m, loc, "email", "email", "web.auth.email", view.Email, view.Errors)
		inputField(m, loc, "password", "password", "web.auth.password", "", view.Errors)
		m.raw(`<button type="submit" class="button">`)
		m.text(T(loc, "web.login.submit"))
		m.raw(`</button></form><p>`)
		m.text(T(loc, "web.login.no_account"))
		m.raw(` <a href="` + routepath.Signup + `">`)
		m.text(T(loc, "web.nav.signup"))
		m.raw(`</a></p></section>`)
	})
}

// SignupView carries signup form values and field errors.
type SignupView struct {
	Name   string
	Email  string
	Terms  bool
	Plans  []Option
	Errors map[string]string
}

// SignupPage renders the account creation form.
func SignupPage(view SignupView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="auth card"><h1>`)
		m.text(T(loc, "web.signup.heading"))
		m.raw(`</h1><form method="post" action="` + routepath.Signup + `" novalidate>`)
		fieldError(m, view.Errors, "form")
		inputField(m, loc, "text", "name", "web.auth.name", view.Name, view.Errors)
		inputField(m, loc, "email", "email", "web.auth.email", view.Email, view.Errors)
		inputField(m, loc, "password", "password", "web.auth.password", "", view.Errors)
		m.raw(`<p class="field__hint">`)
		m.text(T(loc, "web.signup.password_hint"))
		m.raw(`</p>`)
		inputField(m, loc, "password", "confirm_password", "web.auth.confirm_password", "", view.Errors)
		m.raw(`<div class="field"><label for="plan">`)
		m.text(T(loc, "web.signup.plan"))
		m.raw(`</label>`)
		selectField(m, "plan", "plan", view.Plans)
		fieldError(m, view.Errors, "plan")
		m.raw(`</div><div class="field field--inline"><input type="checkbox" id="terms" name="terms" value="1"`)
		m.flag("checked", view.Terms)
		m.raw(`><label for="terms">`)
		m.text(T(loc, "web.signup.terms"))
		m.raw(`</label>`)
		fieldError(m, view.Errors, "terms")
		m.raw(`</div><button type="submit" class="button">`)
		m.text(T(loc, "web.signup.submit"))
		m.raw(`</button></form><p>`)
		m.text(T(loc, "web.signup.have_account"))
		m.raw(` <a href="` + routepath.Login + `">`)
		m.text(T(loc, "web.nav.login"))
		m.raw(`</a></p></section>`)
	})
}

func inputField(m *markup, loc Localizer, kind, name, labelKey, value string, errs map[string]string) {
	m.raw(`<div class="field"><label`)
	m.attr("for", name)
	m.raw(`>`)
	m.text(T(loc, labelKey))
	m.raw(`</label><input`)
	m.attr("type", kind)
	m.attr("id", name)
	m.attr("name", name)
	if value != "" {
		m.attr("value", value)
	}
	if errs[name] != "" {
		m.raw(` aria-invalid="true"`)
	}
	m.raw(`>`)
	fieldError(m, errs, name)
	m.raw(`</div>`)
}
