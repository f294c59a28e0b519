package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"github.com/louisbranch/closealead/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	"github.com/louisbranch/closealead/internal/services/web/storage/sqlite"
)

type fakeBackend struct {
	mu     sync.Mutex
	offers map[string]offer.Offer
}

func newFakeBackend() *fakeBackend {
	d := offer.NewDraft()
	d.Title = "Brand Sprint"
	return &fakeBackend{offers: map[string]offer.Offer{"o-1": {ID: "o-1", Draft: d}}}
}

func (f *fakeBackend) Login(_ context.Context, creds offersapi.Credentials) (offersapi.User, error) {
	if creds.Password != "secret" {
		return offersapi.User{}, apperrors.EK(apperrors.KindUnauthorized, offersapi.KeyInvalidCredentials, "bad credentials")
	}
	return offersapi.User{ID: "u-1", Name: "Ada", Email: creds.Email, Plan: "professional", OfferCount: 1, Token: "bearer-1"}, nil
}

func (f *fakeBackend) Signup(_ context.Context, reg offersapi.Registration) (offersapi.User, error) {
	return offersapi.User{ID: "u-2", Name: reg.Name, Email: reg.Email, Plan: reg.Plan, Token: "bearer-2"}, nil
}

func (f *fakeBackend) ListOffers(context.Context, string) ([]offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]offer.Offer, 0, len(f.offers))
	for _, o := range f.offers {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeBackend) DeleteOffer(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.offers, id)
	return nil
}

func (f *fakeBackend) GetOffer(_ context.Context, _ string, id string) (offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return offer.Offer{}, apperrors.EK(apperrors.KindNotFound, offersapi.KeyOfferNotFound, "offer not found")
	}
	return o, nil
}

func (f *fakeBackend) CreateOffer(_ context.Context, _ string, _ string, d offer.Draft) (offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := offer.Offer{ID: "o-2", Draft: d}
	f.offers[o.ID] = o
	return o, nil
}

func (f *fakeBackend) UpdateOffer(_ context.Context, _ string, id string, d offer.Draft) (offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := offer.Offer{ID: id, Draft: d}
	f.offers[id] = o
	return o, nil
}

func (f *fakeBackend) ExportOffer(_ context.Context, _ string, id string) (offersapi.Document, error) {
	return offersapi.Document{Filename: id + ".pdf", ContentType: "application/pdf", Body: []byte("%PDF")}, nil
}

func newTestHandler(t *testing.T, backend *fakeBackend) http.Handler {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	cfg := HandlerConfig{Store: store, SessionSecret: []byte("test-secret")}
	if backend != nil {
		cfg.Gateway = backend
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessioncookie.Name && c.Value != "" {
			return c
		}
	}
	t.Fatalf("response did not set %s", sessioncookie.Name)
	return nil
}

func TestNewHandlerRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(HandlerConfig{SessionSecret: []byte("x")}); err == nil {
		t.Fatal("expected missing store error")
	}
}

func TestHealthReportsMissingBackend(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, nil), httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	rr = serve(newTestHandler(t, newFakeBackend()), httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestHandlerSetsRequestID(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, nil), httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("X-Request-ID"); !strings.HasPrefix(got, "web-") {
		t.Fatalf("X-Request-ID = %q, want generated id", got)
	}
}

func TestHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, nil), httptest.NewRequest(http.MethodGet, routepath.Static+"app.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestProtectedRoutesRedirectAnonymousUsers(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, newFakeBackend())
	for _, path := range []string{routepath.Dashboard, routepath.Create, routepath.Edit("o-1")} {
		rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", path, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != routepath.Login {
			t.Fatalf("%s Location = %q, want %q", path, got, routepath.Login)
		}
	}
}

func TestLoginThenDashboardAndDelete(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	h := newTestHandler(t, backend)

	form := url.Values{"email": {"ada@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(h, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	cookie := sessionCookie(t, rr)

	req = httptest.NewRequest(http.MethodGet, routepath.Dashboard, nil)
	req.AddCookie(cookie)
	rr = serve(h, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Brand Sprint") {
		t.Fatal("dashboard is missing the listed offer")
	}

	req = httptest.NewRequest(http.MethodPost, routepath.DashboardOfferDelete("o-1"), nil)
	req.AddCookie(cookie)
	if rr = serve(h, req); rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin delete status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodPost, routepath.DashboardOfferDelete("o-1"), nil)
	req.Header.Set("Origin", "http://example.com")
	req.AddCookie(cookie)
	if rr = serve(h, req); rr.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if _, err := backend.GetOffer(context.Background(), "", "o-1"); err == nil {
		t.Fatal("expected the offer to be deleted")
	}
}

// postForm submits form as a same-origin browser post.
func postForm(h http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return serve(h, req)
}

func getWithCookie(h http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(cookie)
	return serve(h, req)
}

func TestFreeSignupCreatesOneOfferThenGatesCreate(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{offers: map[string]offer.Offer{}}
	h := newTestHandler(t, backend)

	rr := postForm(h, routepath.Signup, url.Values{
		"name":             {"Grace"},
		"email":            {"grace@example.com"},
		"password":         {"Secret123"},
		"confirm_password": {"Secret123"},
		"plan":             {"free"},
		"terms":            {"on"},
	}, nil)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("signup status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.Dashboard {
		t.Fatalf("signup Location = %q, want %q", got, routepath.Dashboard)
	}
	cookie := sessionCookie(t, rr)

	rr = getWithCookie(h, routepath.Dashboard, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "of 1 on your plan") {
		t.Fatal("dashboard is missing the free plan limit")
	}
	if strings.Contains(body, "Upgrade to create more offers") {
		t.Fatal("create must be available before the first offer")
	}

	type formStep struct {
		path string
		form url.Values
	}
	steps := []formStep{{path: routepath.CreateMode, form: url.Values{"mode": {"scratch"}}}}
	for range guided.Prompts {
		steps = append(steps, formStep{path: routepath.CreateAnswer, form: url.Values{"answer": {"Strategy Sprint"}}})
	}
	steps = append(steps,
		formStep{path: routepath.CreateTemplate, form: url.Values{"template": {"bold"}}},
		formStep{path: routepath.CreateSave, form: url.Values{}},
	)
	for _, step := range steps {
		if rr = postForm(h, step.path, step.form, cookie); rr.Code != http.StatusSeeOther {
			t.Fatalf("POST %s status = %d, want %d", step.path, rr.Code, http.StatusSeeOther)
		}
	}
	if got := rr.Header().Get("Location"); got != routepath.Edit("o-2") {
		t.Fatalf("save Location = %q, want %q", got, routepath.Edit("o-2"))
	}

	rr = getWithCookie(h, routepath.Dashboard, cookie)
	body = rr.Body.String()
	if !strings.Contains(body, "Upgrade to create more offers") {
		t.Fatal("dashboard must gate create at the free limit")
	}
	if !strings.Contains(body, `nav__link--disabled`) {
		t.Fatal("navigation must disable create at the free limit")
	}

	rr = getWithCookie(h, routepath.Create, cookie)
	if rr.Code != http.StatusFound {
		t.Fatalf("create status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Dashboard {
		t.Fatalf("create Location = %q, want %q", got, routepath.Dashboard)
	}
}

func TestSessionSecretFallsBackToRandom(t *testing.T) {
	t.Parallel()

	first, err := sessionSecret("")
	if err != nil {
		t.Fatalf("sessionSecret() error = %v", err)
	}
	second, err := sessionSecret("")
	if err != nil {
		t.Fatalf("sessionSecret() error = %v", err)
	}
	if len(first) != 32 || string(first) == string(second) {
		t.Fatalf("random secrets = %x, %x, want distinct 32-byte values", first, second)
	}
	configured, err := sessionSecret(" keep ")
	if err != nil || string(configured) != "keep" {
		t.Fatalf("sessionSecret(keep) = %q, %v", configured, err)
	}
}
