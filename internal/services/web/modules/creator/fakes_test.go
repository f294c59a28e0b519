package creator

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/wizard"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
)

type memoryWizards struct {
	mu      sync.Mutex
	records map[string]webstorage.WizardRecord
	putErr  error
}

func newMemoryWizards() *memoryWizards {
	return &memoryWizards{records: map[string]webstorage.WizardRecord{}}
}

func (m *memoryWizards) PutWizardState(_ context.Context, record webstorage.WizardRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.records[record.SessionID+"|"+record.DraftKey] = record
	return nil
}

func (m *memoryWizards) GetWizardState(_ context.Context, sessionID, draftKey string) (webstorage.WizardRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[sessionID+"|"+draftKey]
	return record, ok, nil
}

func (m *memoryWizards) DeleteWizardState(_ context.Context, sessionID, draftKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, sessionID+"|"+draftKey)
	return nil
}

// seed stores w under key for the test session.
func (m *memoryWizards) seed(t *testing.T, key string, w *wizard.Wizard) {
	t.Helper()
	payload, err := json.Marshal(w.State())
	if err != nil {
		t.Fatalf("marshal wizard: %v", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[testSession().ID+"|"+key] = webstorage.WizardRecord{SessionID: testSession().ID, DraftKey: key, Payload: payload}
}

// stored returns the wizard stored under key for the test session.
func (m *memoryWizards) stored(t *testing.T, key string) *wizard.Wizard {
	t.Helper()
	m.mu.Lock()
	record, ok := m.records[testSession().ID+"|"+key]
	m.mu.Unlock()
	if !ok {
		t.Fatalf("no wizard stored under %q", key)
	}
	var state wizard.State
	if err := json.Unmarshal(record.Payload, &state); err != nil {
		t.Fatalf("unmarshal wizard: %v", err)
	}
	return wizard.Restore(state)
}

func (m *memoryWizards) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[testSession().ID+"|"+key]
	return ok
}

type fakeGateway struct {
	mu        sync.Mutex
	offers    map[string]offer.Offer
	getErr    error
	createErr error
	updateErr error
	exportErr error
	creates   []string
	updates   []string
	gets      []string
	release   chan struct{}
	nextID    int
}

func newFakeGateway(offers ...offer.Offer) *fakeGateway {
	f := &fakeGateway{offers: map[string]offer.Offer{}}
	for _, o := range offers {
		f.offers[o.ID] = o
	}
	return f
}

func (f *fakeGateway) GetOffer(_ context.Context, _ string, id string) (offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, id)
	if f.getErr != nil {
		return offer.Offer{}, f.getErr
	}
	o, ok := f.offers[id]
	if !ok {
		return offer.Offer{}, apperrors.EK(apperrors.KindNotFound, offersapi.KeyOfferNotFound, "offer not found")
	}
	return o, nil
}

func (f *fakeGateway) CreateOffer(ctx context.Context, _ string, idempotencyKey string, d offer.Draft) (offer.Offer, error) {
	if f.release != nil {
		<-f.release
	}
	if err := ctx.Err(); err != nil {
		return offer.Offer{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, idempotencyKey)
	if f.createErr != nil {
		return offer.Offer{}, f.createErr
	}
	f.nextID++
	o := offer.Offer{ID: "o-new-" + strconv.Itoa(f.nextID), Draft: d}
	f.offers[o.ID] = o
	return o, nil
}

func (f *fakeGateway) UpdateOffer(ctx context.Context, _ string, id string, d offer.Draft) (offer.Offer, error) {
	if err := ctx.Err(); err != nil {
		return offer.Offer{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, id)
	if f.updateErr != nil {
		return offer.Offer{}, f.updateErr
	}
	d.EditCount++
	o := offer.Offer{ID: id, Draft: d}
	f.offers[id] = o
	return o, nil
}

func (f *fakeGateway) ExportOffer(_ context.Context, _ string, id string) (offersapi.Document, error) {
	if f.exportErr != nil {
		return offersapi.Document{}, f.exportErr
	}
	return offersapi.Document{Filename: id + ".pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.4")}, nil
}

func (f *fakeGateway) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates)
}

type fakeSessions struct {
	mu     sync.Mutex
	counts []int
}

func (f *fakeSessions) UpdateOfferCount(_ context.Context, _ websession.Session, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, count)
	return nil
}

func testSession() websession.Session {
	return websession.Session{ID: "sess-1", Name: "Ada", Plan: plan.Professional, OfferCount: 1, Token: "bearer-1"}
}

func withSession(req *http.Request, s websession.Session) *http.Request {
	return req.WithContext(websession.WithSession(req.Context(), s))
}

// customizingWizard returns a creation wizard ready to save.
func customizingWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.New()
	if err := w.SelectMode(wizard.ModeRedesign); err != nil {
		t.Fatalf("SelectMode() error = %v", err)
	}
	if err := w.CompleteInput(wizard.UploadInput{Extracted: offer.Patch{Title: offer.String("Brand Sprint")}}); err != nil {
		t.Fatalf("CompleteInput() error = %v", err)
	}
	if err := w.SelectTemplate(offer.TemplateBold); err != nil {
		t.Fatalf("SelectTemplate() error = %v", err)
	}
	return w
}

func sequentialTokens() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "tok-" + strconv.Itoa(n)
	}
}
