package web

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/closealead/internal/platform/timeouts"
	webapp "github.com/louisbranch/closealead/internal/services/web/app"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	"github.com/louisbranch/closealead/internal/services/web/modules"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	"github.com/louisbranch/closealead/internal/services/web/platform/httpx"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/closealead/internal/services/web/platform/observability"
	"github.com/louisbranch/closealead/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webstatic "github.com/louisbranch/closealead/internal/services/web/static"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
	"github.com/louisbranch/closealead/internal/services/web/storage/sqlite"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr            string
	BackendURL          string
	DBPath              string
	SessionSecret       string
	SessionTTL          time.Duration
	TrustForwardedProto bool
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// Store is the persistence the handler needs: sessions, wizard drafts and a
// liveness probe for the health endpoint.
type Store interface {
	webstorage.SessionStore
	webstorage.WizardStore
	Ping(context.Context) error
}

// HandlerConfig wires the root handler. A nil Gateway serves every backend
// operation as unavailable.
type HandlerConfig struct {
	Gateway       modules.Gateway
	Store         Store
	SessionSecret []byte
	SessionTTL    time.Duration
	Policy        requestmeta.SchemePolicy
	Logger        *log.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	sessions, err := websession.NewManager(cfg.Store, websession.Config{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Policy: cfg.Policy,
	})
	if err != nil {
		return nil, fmt.Errorf("init sessions: %w", err)
	}
	deps := modules.Dependencies{
		Gateway:  cfg.Gateway,
		Sessions: sessions,
		Wizards:  cfg.Store,
		Health:   health{gateway: cfg.Gateway, store: cfg.Store},
		Flash:    flashnotice.Writer{Policy: cfg.Policy},

		ResolveViewer: modulehandler.SessionViewer,
	}
	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:       modules.DefaultPublicModules(deps),
		ProtectedModules:    modules.DefaultProtectedModules(deps),
		AuthRequired:        signedIn,
		RequestSchemePolicy: cfg.Policy,
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, webstatic.Handler()))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		sessions.Middleware(),
	), nil
}

func signedIn(r *http.Request) bool {
	_, ok := websession.FromContext(r.Context())
	return ok
}

// health reports ready when a backend is configured and storage answers.
type health struct {
	gateway modules.Gateway
	store   Store
}

func (h health) Healthy() bool {
	if h.gateway == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.HealthProbe)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

// NewServer validates config, opens storage and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return nil, errors.New("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	secret, err := sessionSecret(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}

	var gateway modules.Gateway
	if backendURL := strings.TrimSpace(cfg.BackendURL); backendURL != "" {
		client, err := offersapi.New(backendURL, offersapi.WithHTTPClient(&http.Client{Timeout: timeouts.BackendRequest}))
		if err != nil {
			return nil, fmt.Errorf("init offers client: %w", err)
		}
		gateway = client
	} else {
		log.Printf("offers backend URL is empty, backend operations will report unavailable")
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open web store: %w", err)
	}
	handler, err := NewHandler(HandlerConfig{
		Gateway:       gateway,
		Store:         store,
		SessionSecret: secret,
		SessionTTL:    cfg.SessionTTL,
		Policy:        requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}, nil
}

// sessionSecret returns the configured secret, or a random one that does not
// survive restarts.
func sessionSecret(configured string) ([]byte, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		return []byte(configured), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	log.Printf("session secret is empty, generated a per-process secret; sessions end on restart")
	return secret, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close web store: %v", err)
		}
	}
}
