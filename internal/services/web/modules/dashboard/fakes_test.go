package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
)

type fakeGateway struct {
	mu        sync.Mutex
	offers    []offer.Offer
	listErr   error
	deleteErr error
	deleted   []string
	tokens    []string
	release   chan struct{}
}

func (f *fakeGateway) ListOffers(_ context.Context, token string) ([]offer.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return f.offers, f.listErr
}

func (f *fakeGateway) DeleteOffer(ctx context.Context, token, id string) error {
	if f.release != nil {
		<-f.release
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	f.deleted = append(f.deleted, id)
	return f.deleteErr
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
	return websession.Session{ID: "sess-1", Name: "Ada", Plan: plan.Professional, OfferCount: 2, Token: "bearer-1"}
}

func withSession(req *http.Request, s websession.Session) *http.Request {
	return req.WithContext(websession.WithSession(req.Context(), s))
}
