package dashboard

import (
	"context"
	"net/http"

	"github.com/louisbranch/closealead/internal/offer"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

// OfferGateway lists and deletes the offers of one user.
type OfferGateway interface {
	ListOffers(ctx context.Context, token string) ([]offer.Offer, error)
	DeleteOffer(ctx context.Context, token, id string) error
}

// SessionUpdater refreshes the cached offer count of a session.
type SessionUpdater interface {
	UpdateOfferCount(ctx context.Context, s websession.Session, count int) error
}

// Module provides authenticated dashboard routes.
type Module struct {
	gateway  OfferGateway
	sessions SessionUpdater
	base     modulehandler.Base
}

// New returns a dashboard module. A nil gateway renders the dashboard in its
// load-failed state.
func New(gateway OfferGateway, sessions SessionUpdater, base modulehandler.Base) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, sessions: sessions, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.sessions), m.base))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
