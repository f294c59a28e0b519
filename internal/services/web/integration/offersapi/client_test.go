package offersapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/closealead/internal/offer"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api/v1/", append([]Option{WithHTTPClient(srv.Client())}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewValidatesBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "ftp://backend", "://bad"} {
		if _, err := New(raw); err == nil {
			t.Fatalf("New(%q) expected error", raw)
		}
	}
}

func TestNilClientReportsNotConfigured(t *testing.T) {
	t.Parallel()

	var c *Client
	if c.Configured() {
		t.Fatal("nil client reported configured")
	}
	_, err := c.ListOffers(context.Background(), "token")
	if !apperrors.Is(err, apperrors.KindUnavailable) {
		t.Fatalf("ListOffers() error = %v, want unavailable", err)
	}
}

func TestLoginPostsCredentials(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("request = %s %s, want POST /api/v1/auth/login", r.Method, r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if creds.Email != "ada@example.com" || creds.Password != "Secret123" {
			t.Errorf("credentials = %+v", creds)
		}
		_, _ = io.WriteString(w, `{"id":"u-1","name":"Ada","email":"ada@example.com","plan":"agency","offerCount":3,"token":"tok"}`)
	})

	user, err := c.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "Secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	want := User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Plan: "agency", OfferCount: 3, Token: "tok"}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestLoginMapsUnauthorizedToInvalidCredentials(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
	})

	_, err := c.Login(context.Background(), Credentials{Email: "a@b.co", Password: "x"})
	if !apperrors.Is(err, apperrors.KindUnauthorized) {
		t.Fatalf("Login() error = %v, want unauthorized", err)
	}
	if got := apperrors.LocalizationKey(err); got != KeyInvalidCredentials {
		t.Fatalf("LocalizationKey() = %q, want %q", got, KeyInvalidCredentials)
	}
	if got := apperrors.Message(err); got != "Invalid credentials" {
		t.Fatalf("Message() = %q, want backend detail", got)
	}
}

func TestStatusKindMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		body   string
		kind   apperrors.Kind
		key    string
		msg    string
	}{
		{http.StatusBadRequest, `{"detail":"Email already registered"}`, apperrors.KindInvalidInput, KeyInvalidRequest, "Email already registered"},
		{http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"}]}`, apperrors.KindInvalidInput, KeyInvalidRequest, "field required"},
		{http.StatusForbidden, `{"detail":"Offer limit reached for free plan"}`, apperrors.KindForbidden, KeyOfferLimit, "Offer limit reached for free plan"},
		{http.StatusNotFound, `{"detail":"Offer not found"}`, apperrors.KindNotFound, KeyOfferNotFound, "Offer not found"},
		{http.StatusBadGateway, `<html>bad gateway</html>`, apperrors.KindUnavailable, KeyUnavailable, "offers backend returned 502"},
		{http.StatusTeapot, ``, apperrors.KindUnavailable, KeyUnavailable, "offers backend returned 418"},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.GetOffer(context.Background(), "tok", "o-1")
			if got := apperrors.KindOf(err); got != tc.kind {
				t.Fatalf("KindOf() = %q, want %q", got, tc.kind)
			}
			if got := apperrors.LocalizationKey(err); got != tc.key {
				t.Fatalf("LocalizationKey() = %q, want %q", got, tc.key)
			}
			if got := apperrors.Message(err); got != tc.msg {
				t.Fatalf("Message() = %q, want %q", got, tc.msg)
			}
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	srv.Close()

	if _, err := c.ListOffers(context.Background(), "tok"); !apperrors.Is(err, apperrors.KindUnavailable) {
		t.Fatalf("ListOffers() error = %v, want unavailable", err)
	}
}

func TestListOffersSendsBearerAndNormalizes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		_, _ = io.WriteString(w, `[{"id":"o-1","title":"Coaching","template":"neon","price":{"amount":100,"currency":"JPY","interval":"weekly"},"features":["a"],"editCount":2,"editLimit":5,"createdAt":"2026-03-01T10:00:00.123456","updatedAt":"2026-03-02T10:00:00"}]`)
	})

	offers, err := c.ListOffers(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListOffers() error = %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("len(offers) = %d, want 1", len(offers))
	}
	got := offers[0]
	if got.ID != "o-1" || got.Title != "Coaching" || got.EditCount != 2 {
		t.Fatalf("offer = %+v", got)
	}
	if got.Template != offer.DefaultTemplate || got.Price.Currency != offer.CurrencyUSD || got.Price.Interval != offer.IntervalOneTime {
		t.Fatalf("offer not normalized: template=%q currency=%q interval=%q", got.Template, got.Price.Currency, got.Price.Interval)
	}
	if got.CreatedAt.Year() != 2026 || got.CreatedAt.Day() != 1 {
		t.Fatalf("CreatedAt = %v, want zone-less timestamp parsed", got.CreatedAt)
	}
}

func TestCreateOfferSendsIdempotencyKeyAndDraft(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/offers" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(IdempotencyKeyHeader); got != "submit-1" {
			t.Errorf("%s = %q, want submit-1", IdempotencyKeyHeader, got)
		}
		var d offer.Draft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			t.Errorf("decode draft: %v", err)
		}
		if d.Title != "Launch Kit" {
			t.Errorf("title = %q", d.Title)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"o-9","title":"Launch Kit","template":"bold","editCount":0,"editLimit":5}`)
	})

	d := offer.NewDraft()
	d.Title = "Launch Kit"
	created, err := c.CreateOffer(context.Background(), "tok", "submit-1", d)
	if err != nil {
		t.Fatalf("CreateOffer() error = %v", err)
	}
	if created.ID != "o-9" || created.Template != offer.TemplateBold {
		t.Fatalf("created = %+v", created)
	}
}

func TestUpdateAndDeleteOffer(t *testing.T) {
	t.Parallel()

	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		switch r.Method {
		case http.MethodPut:
			_, _ = io.WriteString(w, `{"id":"a/b","title":"x","editCount":1,"editLimit":5}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	updated, err := c.UpdateOffer(context.Background(), "tok", "a/b", offer.NewDraft())
	if err != nil {
		t.Fatalf("UpdateOffer() error = %v", err)
	}
	if updated.EditCount != 1 {
		t.Fatalf("EditCount = %d, want 1", updated.EditCount)
	}
	if err := c.DeleteOffer(context.Background(), "tok", "a/b"); err != nil {
		t.Fatalf("DeleteOffer() error = %v", err)
	}
	want := []string{"PUT /api/v1/offers/a%2Fb", "DELETE /api/v1/offers/a%2Fb"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestExportOfferReadsAttachment(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/offers/o-1/export" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Launch Kit.pdf"`)
		_, _ = io.WriteString(w, "%PDF-1.4")
	})

	doc, err := c.ExportOffer(context.Background(), "tok", "o-1")
	if err != nil {
		t.Fatalf("ExportOffer() error = %v", err)
	}
	want := Document{Filename: "Launch Kit.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.4")}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestExportOfferRejectsOversizedDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "at limit", size: 64},
		{name: "over limit", size: 65, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/pdf")
				_, _ = io.WriteString(w, strings.Repeat("x", tt.size))
			})
			c.maxBody = 64

			doc, err := c.ExportOffer(context.Background(), "tok", "o-1")
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ExportOffer() error = %v", err)
				}
				if len(doc.Body) != tt.size {
					t.Fatalf("body size = %d, want %d", len(doc.Body), tt.size)
				}
				return
			}
			if !apperrors.Is(err, apperrors.KindUnavailable) {
				t.Fatalf("ExportOffer() error = %v, want unavailable", err)
			}
			if len(doc.Body) != 0 {
				t.Fatalf("body size = %d, want no partial document", len(doc.Body))
			}
		})
	}
}

func TestCallsAreTracedAndPropagated(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("traceparent"), "00-") {
			t.Errorf("traceparent = %q, want injected trace context", r.Header.Get("traceparent"))
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"detail":"Edit limit reached"}`)
	}, WithTracerProvider(tp), WithPropagator(propagation.TraceContext{}))

	_, _ = c.UpdateOffer(context.Background(), "tok", "o-1", offer.NewDraft())

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "offersapi.UpdateOffer" {
		t.Fatalf("span name = %q", got)
	}
	if got := spans[0].Status().Code; got != codes.Error {
		t.Fatalf("span status = %v, want error", got)
	}
}
