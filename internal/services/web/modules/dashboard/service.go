package dashboard

import (
	"context"
	"strings"

	"github.com/louisbranch/closealead/internal/offer"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"golang.org/x/sync/singleflight"
)

// snapshot is the dashboard state of one user. Failed is set when the
// offer list could not be loaded; OfferCount then falls back to the cached
// session count.
type snapshot struct {
	Offers     []offer.Offer
	OfferCount int
	Failed     bool
}

type service struct {
	gateway  OfferGateway
	sessions SessionUpdater
	deletes  *singleflight.Group
}

func newService(gateway OfferGateway, sessions SessionUpdater) service {
	return service{gateway: gateway, sessions: sessions, deletes: &singleflight.Group{}}
}

func (s service) load(ctx context.Context, session websession.Session) snapshot {
	offers, err := s.gateway.ListOffers(ctx, session.Token)
	if err != nil {
		return snapshot{OfferCount: session.OfferCount, Failed: true}
	}
	if len(offers) != session.OfferCount {
		s.updateCount(ctx, session, len(offers))
	}
	return snapshot{Offers: offers, OfferCount: len(offers)}
}

// deleteOffer removes one offer. Concurrent deletes of the same offer from
// the same session share a single backend call.
func (s service) deleteOffer(ctx context.Context, session websession.Session, offerID string) error {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return apperrors.EK(apperrors.KindNotFound, "web.errors.offer_not_found", "offer id is required")
	}
	_, err, _ := s.deletes.Do(session.ID+":"+offerID, func() (any, error) {
		return nil, s.gateway.DeleteOffer(context.WithoutCancel(ctx), session.Token, offerID)
	})
	if err != nil {
		return err
	}
	s.updateCount(ctx, session, session.OfferCount-1)
	return nil
}

// updateCount refreshes the cached count; a stale count only affects the
// advisory create gate, so failures are ignored.
func (s service) updateCount(ctx context.Context, session websession.Session, count int) {
	if s.sessions == nil {
		return
	}
	_ = s.sessions.UpdateOfferCount(ctx, session, count)
}
