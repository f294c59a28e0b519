// Package offersapi is the HTTP client for the offers backend: auth, offer
// CRUD and document export.
package offersapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/closealead/internal/offer"
	apperrors "github.com/louisbranch/closealead/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/closealead/internal/services/web/integration/offersapi"

// maxResponseBytes bounds JSON and document responses read into memory.
const maxResponseBytes = 32 << 20

// IdempotencyKeyHeader carries the submit token on offer creation.
const IdempotencyKeyHeader = "Idempotency-Key"

// Localization keys attached to backend failures.
const (
	KeyInvalidRequest     = "web.errors.invalid_request"
	KeyInvalidCredentials = "web.errors.invalid_credentials"
	KeyOfferLimit         = "web.errors.offer_limit"
	KeyOfferNotFound      = "web.errors.offer_not_found"
	KeyConflict           = "web.errors.conflict"
	KeyUnavailable        = "web.errors.backend_unavailable"
)

// ErrNotConfigured is returned by a nil client.
var ErrNotConfigured = apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, "offers backend is not configured")

// User is the identity returned by login and signup.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Plan       string `json:"plan"`
	OfferCount int    `json:"offerCount"`
	Token      string `json:"token"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the signup payload. Plan uses backend plan names.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Plan     string `json:"plan"`
}

// Document is an exported offer file.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Client calls the offers backend. Calls are not retried.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	maxBody    int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithPropagator overrides the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) { c.propagator = p }
}

// New builds a client for the backend rooted at baseURL, for example
// http://localhost:8000/api/v1.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("offers backend URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse offers backend URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("offers backend URL %q must be http or https", baseURL)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	c := &Client{
		baseURL: parsed,
		http:    http.DefaultClient,
		tracer:  otel.Tracer(instrumentationName),
		maxBody: maxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Configured reports whether the client can reach a backend.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != nil
}

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (User, error) {
	var user User
	err := c.do(ctx, call{
		name:   "Login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   creds,
		out:    &user,
		keys:   map[int]string{http.StatusUnauthorized: KeyInvalidCredentials},
	})
	return user, err
}

// Signup registers an account.
func (c *Client) Signup(ctx context.Context, reg Registration) (User, error) {
	var user User
	err := c.do(ctx, call{
		name:   "Signup",
		method: http.MethodPost,
		path:   "/auth/signup",
		body:   reg,
		out:    &user,
	})
	return user, err
}

// ListOffers returns the caller's offers.
func (c *Client) ListOffers(ctx context.Context, token string) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := c.do(ctx, call{
		name:   "ListOffers",
		method: http.MethodGet,
		path:   "/offers",
		token:  token,
		out:    &offers,
	}); err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].Draft = offers[i].Draft.Normalize()
	}
	return offers, nil
}

// GetOffer loads one offer.
func (c *Client) GetOffer(ctx context.Context, token, id string) (offer.Offer, error) {
	var out offer.Offer
	if err := c.do(ctx, call{
		name:   "GetOffer",
		method: http.MethodGet,
		path:   "/offers/" + url.PathEscape(strings.TrimSpace(id)),
		token:  token,
		out:    &out,
	}); err != nil {
		return offer.Offer{}, err
	}
	out.Draft = out.Draft.Normalize()
	return out, nil
}

// CreateOffer persists a new offer. idempotencyKey lets the backend collapse
// replays of the same submission.
func (c *Client) CreateOffer(ctx context.Context, token, idempotencyKey string, d offer.Draft) (offer.Offer, error) {
	var out offer.Offer
	if err := c.do(ctx, call{
		name:        "CreateOffer",
		method:      http.MethodPost,
		path:        "/offers",
		token:       token,
		idempotency: idempotencyKey,
		body:        d,
		out:         &out,
	}); err != nil {
		return offer.Offer{}, err
	}
	out.Draft = out.Draft.Normalize()
	return out, nil
}

// UpdateOffer replaces an offer. The backend counts one edit per call.
func (c *Client) UpdateOffer(ctx context.Context, token, id string, d offer.Draft) (offer.Offer, error) {
	var out offer.Offer
	if err := c.do(ctx, call{
		name:   "UpdateOffer",
		method: http.MethodPut,
		path:   "/offers/" + url.PathEscape(strings.TrimSpace(id)),
		token:  token,
		body:   d,
		out:    &out,
	}); err != nil {
		return offer.Offer{}, err
	}
	out.Draft = out.Draft.Normalize()
	return out, nil
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, token, id string) error {
	return c.do(ctx, call{
		name:   "DeleteOffer",
		method: http.MethodDelete,
		path:   "/offers/" + url.PathEscape(strings.TrimSpace(id)),
		token:  token,
	})
}

// ExportOffer requests a rendered document for an offer.
func (c *Client) ExportOffer(ctx context.Context, token, id string) (Document, error) {
	var doc Document
	err := c.do(ctx, call{
		name:   "ExportOffer",
		method: http.MethodPost,
		path:   "/offers/" + url.PathEscape(strings.TrimSpace(id)) + "/export",
		token:  token,
		raw: func(resp *http.Response, body []byte) {
			doc = Document{
				Filename:    attachmentFilename(resp.Header.Get("Content-Disposition")),
				ContentType: resp.Header.Get("Content-Type"),
				Body:        body,
			}
		},
	})
	if err != nil {
		return Document{}, err
	}
	if doc.Filename == "" {
		doc.Filename = "offer.pdf"
	}
	return doc, nil
}

type call struct {
	name        string
	method      string
	path        string
	token       string
	idempotency string
	body        any
	out         any
	raw         func(*http.Response, []byte)
	// keys overrides the localization key per response status.
	keys map[int]string
}

func (c *Client) do(ctx context.Context, in call) (err error) {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := c.baseURL.JoinPath(in.path)

	ctx, span := c.tracer.Start(ctx, "offersapi."+in.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", in.method),
			attribute.String("url.path", endpoint.Path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, apperrors.Message(err))
		}
		span.End()
	}()

	var payload io.Reader
	if in.body != nil {
		encoded, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", in.name, err)
		}
		payload = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, in.method, endpoint.String(), payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", in.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(in.token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if key := strings.TrimSpace(in.idempotency); key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	propagator := c.propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}
	propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, fmt.Sprintf("%s request: %v", in.name, err))
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, fmt.Sprintf("read %s response: %v", in.name, err))
	}
	if int64(len(body)) > c.maxBody {
		return apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, fmt.Sprintf("%s response too large: exceeds %d bytes", in.name, c.maxBody))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, body, in.keys)
	}
	if in.raw != nil {
		in.raw(resp, body)
		return nil
	}
	if in.out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, in.out); err != nil {
		return apperrors.EK(apperrors.KindUnavailable, KeyUnavailable, fmt.Sprintf("decode %s response: %v", in.name, err))
	}
	return nil
}

// statusError maps a backend failure to a typed error carrying the detail
// text of the response.
func statusError(status int, body []byte, keys map[int]string) error {
	kind := apperrors.KindForStatus(status)
	if kind == apperrors.KindUnknown {
		kind = apperrors.KindUnavailable
	}
	key := keys[status]
	if key == "" {
		key = defaultKey(kind)
	}
	message := detail(body)
	if message == "" {
		message = fmt.Sprintf("offers backend returned %d", status)
	}
	return apperrors.EK(kind, key, message)
}

func defaultKey(kind apperrors.Kind) string {
	switch kind {
	case apperrors.KindInvalidInput:
		return KeyInvalidRequest
	case apperrors.KindUnauthorized:
		return KeyInvalidCredentials
	case apperrors.KindForbidden:
		return KeyOfferLimit
	case apperrors.KindNotFound:
		return KeyOfferNotFound
	case apperrors.KindConflict:
		return KeyConflict
	default:
		return KeyUnavailable
	}
}

// detail extracts {"detail": ...}. Validation failures carry a list of
// objects with a msg field; the first message is used.
func detail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return strings.TrimSpace(items[0].Msg)
	}
	return ""
}

func attachmentFilename(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["filename"])
}
