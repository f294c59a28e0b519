package creator

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/wizard"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

type editFixture struct {
	handler http.Handler
	wizards *memoryWizards
	gateway *fakeGateway
}

func newEditFixture(t *testing.T, offers ...offer.Offer) editFixture {
	t.Helper()
	f := editFixture{wizards: newMemoryWizards(), gateway: newFakeGateway(offers...)}
	mount, err := NewEdit(Config{
		Gateway: f.gateway,
		Store:   f.wizards,
		Base:    modulehandler.NewTestBase(),
	}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.EditPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.EditPrefix)
	}
	f.handler = mount.Handler
	return f
}

func (f editFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, withSession(req, testSession()))
	return rr
}

func (f editFixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req)
}

func persistedOffer() offer.Offer {
	d := offer.NewDraft()
	d.Title = "Brand Sprint"
	d.Template = offer.TemplateVibrant
	d.EditCount = 2
	d.EditLimit = 15
	return offer.Offer{ID: "o-1", Draft: d, PDFURL: "https://files.example/o-1.pdf"}
}

func TestEditLoadsAndCachesOffer(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.Edit("o-1"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`action="/edit/o-1/customize"`,
		`action="/edit/o-1/save"`,
		`action="/edit/o-1/export"`,
		`action="/edit/o-1/reload"`,
		`data-preview-url="/edit/o-1/preview"`,
		`class="badge"`,
		`value="Brand Sprint"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	if strings.Contains(body, "wizard__steps") {
		t.Fatal("editor for persisted offers must not show wizard steps")
	}

	f.do(httptest.NewRequest(http.MethodGet, routepath.Edit("o-1"), nil))
	if diff := cmp.Diff([]string{"o-1"}, f.gateway.gets); diff != "" {
		t.Fatalf("backend fetches mismatch (-want +got):\n%s", diff)
	}
}

func TestEditUnknownOfferRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t)
	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.Edit("missing"), nil))
	assertRedirect(t, rr, http.StatusFound, routepath.Dashboard)
	if !hasFlash(rr) {
		t.Fatal("expected load failure flash")
	}
}

func TestEditIndexIsNotFound(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t)
	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.EditPrefix, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestEditCustomizeThenSaveUpdatesOffer(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	rr := f.post(routepath.EditCustomize("o-1"), url.Values{
		"section":            {"images"},
		offer.FieldHeroImage: {"https://img.example/hero.png"},
	})
	assertRedirect(t, rr, http.StatusSeeOther, routepath.WithSection(routepath.Edit("o-1"), "images"))

	rr = f.post(routepath.EditSave("o-1"), nil)
	assertRedirect(t, rr, http.StatusSeeOther, routepath.Edit("o-1"))
	if !hasFlash(rr) {
		t.Fatal("expected update flash")
	}
	if diff := cmp.Diff([]string{"o-1"}, f.gateway.updates); diff != "" {
		t.Fatalf("updates mismatch (-want +got):\n%s", diff)
	}
	d := f.wizards.stored(t, offerDraftKey("o-1")).Draft()
	if d.Hero() != "https://img.example/hero.png" || d.EditCount != 3 {
		t.Fatalf("cached draft = hero %q edits %d, want saved values", d.Hero(), d.EditCount)
	}
}

func TestEditSaveAtLimitShowsBackendRefusal(t *testing.T) {
	t.Parallel()

	o := persistedOffer()
	o.EditCount = o.EditLimit
	f := newEditFixture(t, o)
	f.gateway.updateErr = apperrors.EK(apperrors.KindForbidden, offersapi.KeyOfferLimit, "Edit limit reached")

	rr := f.post(routepath.EditSave("o-1"), nil)
	assertRedirect(t, rr, http.StatusSeeOther, routepath.Edit("o-1"))
	if diff := cmp.Diff([]string{"o-1"}, f.gateway.updates); diff != "" {
		t.Fatalf("updates mismatch (-want +got):\n%s", diff)
	}
	want := flashnotice.Notice{Kind: flashnotice.KindError, Key: keyEditLimit, Detail: "Edit limit reached"}
	if diff := cmp.Diff(want, flashNotice(t, rr)); diff != "" {
		t.Fatalf("flash mismatch (-want +got):\n%s", diff)
	}
}

func TestEditPageWarnsAtEditLimit(t *testing.T) {
	t.Parallel()

	o := persistedOffer()
	o.EditCount = o.EditLimit
	f := newEditFixture(t, o)
	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.Edit("o-1"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="badge badge--warning"`) {
		t.Fatal("expected the edit limit warning badge")
	}
	if !strings.Contains(body, `action="/edit/o-1/save"`) {
		t.Fatal("save must stay available at the edit limit")
	}
}

func TestEditSaveFailureKeepsEdits(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	f.gateway.updateErr = errors.New("backend down")
	f.post(routepath.EditCustomize("o-1"), url.Values{"section": {"content"}, offer.FieldTitle: {"Renamed"}})

	rr := f.post(routepath.EditSave("o-1"), nil)
	assertRedirect(t, rr, http.StatusSeeOther, routepath.Edit("o-1"))
	if got := f.wizards.stored(t, offerDraftKey("o-1")).Draft().Title; got != "Renamed" {
		t.Fatalf("cached title = %q, want %q", got, "Renamed")
	}
}

func TestEditExportWritesAttachment(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	rr := f.post(routepath.EditExport("o-1"), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content-type = %q, want %q", got, "application/pdf")
	}
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename=o-1.pdf` {
		t.Fatalf("disposition = %q, want attachment", got)
	}
	if got := rr.Body.String(); got != "%PDF-1.4" {
		t.Fatalf("body = %q, want document bytes", got)
	}
}

func TestEditExportFailureRedirectsBack(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	f.gateway.exportErr = errors.New("renderer offline")
	rr := f.post(routepath.EditExport("o-1"), nil)
	assertRedirect(t, rr, http.StatusSeeOther, routepath.Edit("o-1"))
	if !hasFlash(rr) {
		t.Fatal("expected export failure flash")
	}
}

func TestEditReloadDiscardsCachedEdits(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	cached := wizard.Resume("o-1", persistedOffer().Draft)
	if err := cached.Apply(offer.SetTitle{Value: "Unsaved"}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	f.wizards.seed(t, offerDraftKey("o-1"), cached)

	assertRedirect(t, f.post(routepath.EditReload("o-1"), nil), http.StatusSeeOther, routepath.Edit("o-1"))
	if f.wizards.has(offerDraftKey("o-1")) {
		t.Fatal("expected cached edits to be discarded")
	}

	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.Edit("o-1"), nil))
	if !strings.Contains(rr.Body.String(), `value="Brand Sprint"`) {
		t.Fatal("expected the persisted title after reload")
	}
}

func TestEditPreviewReturnsFragment(t *testing.T) {
	t.Parallel()

	f := newEditFixture(t, persistedOffer())
	rr := f.do(httptest.NewRequest(http.MethodGet, routepath.EditPreview("o-1"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Brand Sprint") || strings.Contains(body, "<html") {
		t.Fatalf("body = %q, want bare preview with the title", body)
	}
}
