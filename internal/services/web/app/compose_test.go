package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/closealead/internal/services/web/module"
	"github.com/louisbranch/closealead/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/closealead/internal/services/web/platform/sessioncookie"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func dashboardStub() stubModule {
	return stubModule{id: "dashboard", mount: module.Mount{Prefix: "/dashboard/", Handler: noContent()}}
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsInvalidPublicModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "pricing/"},
		{name: "missing trailing slash", prefix: "/pricing"},
		{name: "contains surrounding whitespace", prefix: "/pricing/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				PublicModules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, tc.prefix) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModules(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil public module error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil protected module error")
	}
}

func TestComposeRejectsModuleWithoutHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/"}}},
	})
	if err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestComposeRedirectsAnonymousRequestsToLogin(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{
			dashboardStub(),
			stubModule{id: "create", mount: module.Mount{Prefix: "/create/", Handler: noContent()}},
			stubModule{id: "edit", mount: module.Mount{Prefix: "/edit/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, path := range []string{"/dashboard", "/dashboard/", "/create", "/create/mode", "/edit/o-1"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", path, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != "/login" {
			t.Fatalf("%s Location = %q, want %q", path, got, "/login")
		}
	}
}

func TestComposeRedirectsAnonymousHTMXRequestWithHeader(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:     func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{dashboardStub()},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Redirect"); got != "/login" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/login")
	}
	if got := rr.Header().Get("Location"); got != "" {
		t.Fatalf("Location = %q, want empty", got)
	}
}

func TestComposeProtectsSlashlessRootBeforePublicFallback(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired: func(r *http.Request) bool { return r.Header.Get("X-Allow") == "yes" },
		PublicModules: []module.Module{
			stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: http.NotFoundHandler()}},
		},
		ProtectedModules: []module.Module{dashboardStub()},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("X-Allow", "yes")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeMountsPublicModulesWithoutAuth(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		PublicModules: []module.Module{
			stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: noContent()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeCookieMutationOriginChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		target    string
		host      string
		origin    string
		forwarded string
		policy    requestmeta.SchemePolicy
		want      int
	}{
		{name: "missing proof", target: "/dashboard/offers/o-1/delete", want: http.StatusForbidden},
		{
			name:   "same origin",
			target: "https://offers.example.test/dashboard/offers/o-1/delete",
			host:   "offers.example.test",
			origin: "https://offers.example.test",
			want:   http.StatusNoContent,
		},
		{
			name:   "scheme differs",
			target: "https://offers.example.test/dashboard/offers/o-1/delete",
			host:   "offers.example.test",
			origin: "http://offers.example.test",
			want:   http.StatusForbidden,
		},
		{
			name:      "forwarded proto untrusted",
			target:    "http://offers.example.test/dashboard/offers/o-1/delete",
			host:      "offers.example.test",
			origin:    "https://offers.example.test",
			forwarded: "https",
			want:      http.StatusForbidden,
		},
		{
			name:      "forwarded proto trusted",
			target:    "http://offers.example.test/dashboard/offers/o-1/delete",
			host:      "offers.example.test",
			origin:    "https://offers.example.test",
			forwarded: "https",
			policy:    requestmeta.SchemePolicy{TrustForwardedProto: true},
			want:      http.StatusNoContent,
		},
		{
			name:   "origin omits non-default port",
			target: "https://offers.example.test:8443/dashboard/offers/o-1/delete",
			host:   "offers.example.test:8443",
			origin: "https://offers.example.test",
			want:   http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, err := Compose(ComposeInput{
				AuthRequired:        func(*http.Request) bool { return true },
				RequestSchemePolicy: tc.policy,
				ProtectedModules:    []module.Module{dashboardStub()},
			})
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			if tc.host != "" {
				req.Host = tc.host
			}
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "signed"})
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestComposeAllowsMutationWithoutSessionCookie(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:     func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{dashboardStub()},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/dashboard/offers/o-1/delete", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeEnforcesPrefixGroups(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{stubModule{id: "bad", mount: module.Mount{Prefix: "/pricing/", Handler: noContent()}}},
	}); err == nil {
		t.Fatalf("expected protected module prefix policy error")
	}
	if _, err := Compose(ComposeInput{
		PublicModules: []module.Module{stubModule{id: "bad", mount: module.Mount{Prefix: "/edit/", Handler: noContent()}}},
	}); err == nil {
		t.Fatalf("expected public module prefix policy error")
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
