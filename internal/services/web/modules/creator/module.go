// Package creator provides the offer wizard at /create and the editor for
// persisted offers at /edit/{offerID}. Both keep their wizard between
// requests in the session store.
package creator

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/offer/guided"
	"github.com/louisbranch/closealead/internal/offer/render"
	"github.com/louisbranch/closealead/internal/offer/upload"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
)

// OfferGateway persists and exports offers on the backend.
type OfferGateway interface {
	GetOffer(ctx context.Context, token, id string) (offer.Offer, error)
	CreateOffer(ctx context.Context, token, idempotencyKey string, d offer.Draft) (offer.Offer, error)
	UpdateOffer(ctx context.Context, token, id string, d offer.Draft) (offer.Offer, error)
	ExportOffer(ctx context.Context, token, id string) (offersapi.Document, error)
}

// SessionUpdater refreshes the cached offer count of a session.
type SessionUpdater interface {
	UpdateOfferCount(ctx context.Context, s websession.Session, count int) error
}

// Renderer produces the offer presentation shown in the live preview.
type Renderer interface {
	Render(offer.Draft) (render.Document, error)
}

// Config wires the creator collaborators. Nil Renderer, Extractor,
// Synthesizer and NewToken select the built-in implementations.
type Config struct {
	Gateway     OfferGateway
	Store       webstorage.WizardStore
	Sessions    SessionUpdater
	Renderer    Renderer
	Extractor   upload.Extractor
	Synthesizer guided.Synthesizer
	NewToken    func() string
	Base        modulehandler.Base
}

func (cfg Config) service() service {
	gateway := cfg.Gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = defaultRenderer{}
	}
	extractor := cfg.Extractor
	if extractor == nil {
		extractor = upload.StaticExtractor{}
	}
	synth := cfg.Synthesizer
	if synth == nil {
		synth = guided.Heuristic{}
	}
	newToken := cfg.NewToken
	if newToken == nil {
		newToken = uuid.NewString
	}
	return newService(serviceDeps{
		gateway:   gateway,
		wizards:   cfg.Store,
		sessions:  cfg.Sessions,
		renderer:  renderer,
		extractor: extractor,
		synth:     synth,
		newToken:  newToken,
	})
}

type defaultRenderer struct{}

func (defaultRenderer) Render(d offer.Draft) (render.Document, error) { return render.Render(d) }

// CreateModule serves the new-offer wizard.
type CreateModule struct {
	cfg Config
}

// NewCreate returns the /create module.
func NewCreate(cfg Config) CreateModule {
	return CreateModule{cfg: cfg}
}

// ID returns a stable module identifier.
func (CreateModule) ID() string { return "create" }

// Mount wires the wizard route handlers.
func (m CreateModule) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerCreateRoutes(mux, newHandlers(m.cfg.service(), m.cfg.Base))
	return module.Mount{Prefix: routepath.CreatePrefix, Handler: mux}, nil
}

// EditModule serves the editor for persisted offers.
type EditModule struct {
	cfg Config
}

// NewEdit returns the /edit module.
func NewEdit(cfg Config) EditModule {
	return EditModule{cfg: cfg}
}

// ID returns a stable module identifier.
func (EditModule) ID() string { return "edit" }

// Mount wires the editor route handlers.
func (m EditModule) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerEditRoutes(mux, newHandlers(m.cfg.service(), m.cfg.Base))
	return module.Mount{Prefix: routepath.EditPrefix, Handler: mux}, nil
}
