package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/closealead/internal/plan"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	"github.com/louisbranch/closealead/internal/services/web/platform/publichandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
	"golang.org/x/text/number"
)

const (
	keySignedIn  = "web.flash.signed_in"
	keyWelcome   = "web.flash.welcome"
	keySignedOut = "web.flash.signed_out"

	keyBackendUnavailable = "web.errors.backend_unavailable"
	keyInvalidRequest     = "web.errors.invalid_request"
)

var errSessionsUnavailable = apperrors.EK(apperrors.KindUnavailable, keyBackendUnavailable, "session store is not configured")

type handlers struct {
	publichandler.Base
	service  service
	sessions Sessions
}

func newHandlers(s service, sessions Sessions, base publichandler.Base) handlers {
	return handlers{Base: base, service: s, sessions: sessions}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	view := webtemplates.LandingView{SignedIn: h.IsViewerSignedIn(r)}
	h.WritePage(w, r, webtemplates.T(loc, "web.landing.title"), http.StatusOK, webtemplates.LandingPage(view, loc))
}

func (h handlers) handlePricing(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	billing := plan.ParseBilling(r.URL.Query().Get(routepath.BillingQueryKey))
	current, signedIn := websession.FromContext(r.Context())

	tiers := plan.Catalog()
	view := webtemplates.PricingView{
		Annual:   billing == plan.BillingAnnual,
		SignedIn: signedIn,
		Tiers:    make([]webtemplates.PricingTier, 0, len(tiers)),
	}
	for _, tier := range tiers {
		features := make([]string, 0, len(tier.FeatureKeys))
		for _, key := range tier.FeatureKeys {
			features = append(features, webtemplates.T(loc, key))
		}
		var note string
		if billing == plan.BillingAnnual && tier.BilledCents(billing) > 0 {
			note = webtemplates.T(loc, "web.pricing.billed_annually", dollars(tier.BilledCents(billing)))
		}
		view.Tiers = append(view.Tiers, webtemplates.PricingTier{
			ID:          string(tier.ID),
			Name:        webtemplates.T(loc, tier.NameKey),
			Price:       webtemplates.T(loc, "web.pricing.amount", dollars(tier.DisplayCents(billing))),
			BilledNote:  note,
			Features:    features,
			Highlighted: tier.Highlighted,
			Current:     signedIn && current.Plan == tier.ID,
		})
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.pricing.title"), http.StatusOK, webtemplates.PricingPage(view, loc))
}

func dollars(cents int) number.Formatter {
	return number.Decimal(float64(cents)/100, number.MaxFractionDigits(2))
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	h.renderLogin(w, r, http.StatusOK, webtemplates.LoginView{}, nil)
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse login form"))
		return
	}
	in := loginInput{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}
	view := webtemplates.LoginView{Email: strings.TrimSpace(in.Email)}
	if errs := in.validate(); len(errs) > 0 {
		h.renderLogin(w, r, http.StatusBadRequest, view, errs)
		return
	}

	identity, err := h.service.login(r.Context(), in)
	if err == nil {
		err = h.establish(w, r, identity)
	}
	if err != nil {
		status, errs := authFailure(err)
		h.renderLogin(w, r, status, view, errs)
		return
	}
	h.FlashWriter().Write(w, r, flashnotice.NoticeSuccess(keySignedIn))
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, view webtemplates.LoginView, errs fieldErrors) {
	loc, _ := h.PageLocalizer(w, r)
	view.Errors = localizeErrors(loc, errs)
	h.WritePage(w, r, webtemplates.T(loc, "web.login.title"), status, webtemplates.LoginPage(view, loc))
}

func (h handlers) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	h.renderSignup(w, r, http.StatusOK, signupInput{Plan: r.URL.Query().Get(routepath.PlanQueryKey)}, nil)
}

func (h handlers) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, keyInvalidRequest, "parse signup form"))
		return
	}
	in := signupInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm_password"),
		Plan:     r.PostFormValue("plan"),
		Terms:    r.PostFormValue("terms") != "",
	}
	if errs := in.validate(); len(errs) > 0 {
		h.renderSignup(w, r, http.StatusBadRequest, in, errs)
		return
	}

	identity, err := h.service.signup(r.Context(), in)
	if err == nil {
		err = h.establish(w, r, identity)
	}
	if err != nil {
		status, errs := authFailure(err)
		h.renderSignup(w, r, status, in, errs)
		return
	}
	h.FlashWriter().Write(w, r, flashnotice.NoticeSuccess(keyWelcome))
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) renderSignup(w http.ResponseWriter, r *http.Request, status int, in signupInput, errs fieldErrors) {
	loc, _ := h.PageLocalizer(w, r)
	selected, _ := plan.Parse(in.Plan)
	tiers := plan.Catalog()
	options := make([]webtemplates.Option, 0, len(tiers))
	for _, tier := range tiers {
		options = append(options, webtemplates.Option{
			Value:    string(tier.ID),
			Label:    webtemplates.T(loc, tier.NameKey),
			Selected: tier.ID == selected,
		})
	}
	view := webtemplates.SignupView{
		Name:   strings.TrimSpace(in.Name),
		Email:  strings.TrimSpace(in.Email),
		Terms:  in.Terms,
		Plans:  options,
		Errors: localizeErrors(loc, errs),
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.signup.title"), status, webtemplates.SignupPage(view, loc))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if h.sessions != nil {
		if err := h.sessions.Clear(w, r); err != nil {
			h.WriteError(w, r, err)
			return
		}
	}
	h.FlashWriter().Write(w, r, flashnotice.NoticeSuccess(keySignedOut))
	httpx.WriteRedirect(w, r, routepath.Root)
}

func handleHealth(reporter module.HealthReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if reporter != nil && !reporter.Healthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable\n"))
			return
		}
		_, _ = w.Write([]byte("ok\n"))
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func (h handlers) establish(w http.ResponseWriter, r *http.Request, identity websession.Identity) error {
	if h.sessions == nil {
		return errSessionsUnavailable
	}
	_, err := h.sessions.Establish(w, r, identity)
	return err
}

// authFailure places a backend failure on the form. Untyped failures are
// reported as an unavailable backend.
func authFailure(err error) (int, fieldErrors) {
	var appErr apperrors.Error
	if !errors.As(err, &appErr) || appErr.Key == "" {
		return http.StatusServiceUnavailable, fieldErrors{"form": keyBackendUnavailable}
	}
	return apperrors.HTTPStatus(err), fieldErrors{"form": appErr.Key}
}

func localizeErrors(loc webtemplates.Localizer, errs fieldErrors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, key := range errs {
		out[field] = webtemplates.T(loc, key)
	}
	return out
}
