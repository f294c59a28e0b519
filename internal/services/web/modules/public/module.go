package public

import (
	"context"
	"net/http"

	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/publichandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

// AuthGateway signs users in and up against the offers backend.
type AuthGateway interface {
	Login(context.Context, offersapi.Credentials) (offersapi.User, error)
	Signup(context.Context, offersapi.Registration) (offersapi.User, error)
}

// Sessions starts and ends browser sessions.
type Sessions interface {
	Establish(http.ResponseWriter, *http.Request, websession.Identity) (websession.Session, error)
	Clear(http.ResponseWriter, *http.Request) error
}

// Config wires the public module collaborators.
type Config struct {
	Gateway       AuthGateway
	Sessions      Sessions
	ResolveViewer module.ResolveViewer
	Flash         flashnotice.Writer
	Health        module.HealthReporter
}

// Module provides the landing, pricing and auth routes.
type Module struct {
	gateway  AuthGateway
	sessions Sessions
	health   module.HealthReporter
	base     publichandler.Base
}

// New returns a public module. A nil gateway reports the backend as
// unavailable on every auth attempt.
func New(cfg Config) Module {
	gateway := cfg.Gateway
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{
		gateway:  gateway,
		sessions: cfg.Sessions,
		health:   cfg.Health,
		base: publichandler.NewBase(
			publichandler.WithResolveViewer(cfg.ResolveViewer),
			publichandler.WithFlash(cfg.Flash),
		),
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.sessions, m.base), m.health)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
