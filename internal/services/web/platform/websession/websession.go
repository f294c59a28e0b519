// Package websession restores and establishes browser sessions. The cookie
// carries an HS256 token naming the session id; everything else, including
// the backend bearer token, stays in the server-side store.
package websession

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/closealead/internal/services/web/platform/sessioncookie"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
)

// DefaultTTL bounds session lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

const issuer = "closealead-web"

// Session is the signed-in user state available to handlers.
type Session struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Plan       plan.ID
	OfferCount int
	Token      string
	ExpiresAt  time.Time
}

// Identity is what the backend returns on login or signup.
type Identity struct {
	UserID     string
	Name       string
	Email      string
	Plan       string
	OfferCount int
	Token      string
}

// Config configures a Manager.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Policy requestmeta.SchemePolicy
}

// Manager owns the session cookie and its backing rows.
type Manager struct {
	store  webstorage.SessionStore
	secret []byte
	ttl    time.Duration
	jar    sessioncookie.Jar
	now    func() time.Time
	newID  func() string
}

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewManager builds a session manager over store.
func NewManager(store webstorage.SessionStore, cfg Config) (*Manager, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if len(cfg.Secret) == 0 {
		return nil, errors.New("session secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		secret: append([]byte(nil), cfg.Secret...),
		ttl:    ttl,
		jar:    sessioncookie.Jar{Policy: cfg.Policy},
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Restore resolves the request session. Missing, forged, expired and unknown
// sessions all report false.
func (m *Manager) Restore(r *http.Request) (Session, bool) {
	if m == nil || r == nil {
		return Session{}, false
	}
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return Session{}, false
	}
	sid, err := m.parse(raw)
	if err != nil {
		return Session{}, false
	}
	record, found, err := m.store.GetSession(r.Context(), sid)
	if err != nil || !found {
		return Session{}, false
	}
	return fromRecord(record), true
}

// Establish stores a fresh session for identity and sets the cookie.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, identity Identity) (Session, error) {
	if m == nil {
		return Session{}, errors.New("session manager is not configured")
	}
	if strings.TrimSpace(identity.Token) == "" {
		return Session{}, errors.New("backend token is required")
	}
	now := m.now().UTC()
	planID, _ := plan.Parse(identity.Plan)
	record := webstorage.SessionRecord{
		ID:         m.newID(),
		UserID:     strings.TrimSpace(identity.UserID),
		Name:       strings.TrimSpace(identity.Name),
		Email:      strings.TrimSpace(identity.Email),
		Plan:       string(planID),
		OfferCount: max(identity.OfferCount, 0),
		Token:      identity.Token,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.ttl),
	}
	signed, err := m.sign(record.ID, now, record.ExpiresAt)
	if err != nil {
		return Session{}, err
	}
	if err := m.store.PutSession(r.Context(), record); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	m.jar.Write(w, r, signed, m.ttl)
	return fromRecord(record), nil
}

// Clear deletes the request session, if any, and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	if m == nil {
		return nil
	}
	defer m.jar.Clear(w, r)
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	sid, err := m.parse(raw)
	if err != nil {
		return nil
	}
	if err := m.store.DeleteSession(r.Context(), sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateOfferCount refreshes the cached offer count of s.
func (m *Manager) UpdateOfferCount(ctx context.Context, s Session, count int) error {
	if m == nil || s.ID == "" {
		return nil
	}
	return m.store.UpdateSessionOfferCount(ctx, s.ID, max(count, 0))
}

func (m *Manager) sign(sid string, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (m *Manager) parse(raw string) (string, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	sid := strings.TrimSpace(parsed.SessionID)
	if sid == "" {
		return "", errors.New("session token has no sid")
	}
	return sid, nil
}

func fromRecord(record webstorage.SessionRecord) Session {
	planID, _ := plan.Parse(record.Plan)
	return Session{
		ID:         record.ID,
		UserID:     record.UserID,
		Name:       record.Name,
		Email:      record.Email,
		Plan:       planID,
		OfferCount: record.OfferCount,
		Token:      record.Token,
		ExpiresAt:  record.ExpiresAt,
	}
}

type contextKey struct{}

// WithSession returns ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok && s.ID != ""
}

// Middleware restores the session once per request and stores it in the
// request context for downstream handlers.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, ok := m.Restore(r); ok {
				r = r.WithContext(WithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}
