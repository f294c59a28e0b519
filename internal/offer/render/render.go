// Package render maps an offer draft onto one of the registered visual
// layouts. Rendering is pure: the same draft always yields the same document.
package render

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/osteele/liquid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed layouts/*.liquid
var layoutFS embed.FS

// ErrMissingDefault is returned when the registry lacks the default layout.
var ErrMissingDefault = errors.New("default layout is not registered")

// Fallback copy shown for empty fields.
const (
	FallbackTitle       = "Your Offer Title"
	FallbackSubtitle    = "Your subtitle here"
	FallbackDescription = "Your detailed description will appear here..."
)

// Document is one rendered offer presentation fragment.
type Document struct {
	Template offer.Template
	HTML     string
}

// Layout is a parsed presentation variant.
type Layout struct {
	template offer.Template
	source   *liquid.Template
}

// Template returns the identifier the layout renders.
func (l Layout) Template() offer.Template { return l.template }

// Registry maps template identifiers to layouts with a mandatory default.
type Registry struct {
	layouts  map[offer.Template]Layout
	fallback offer.Template
}

// NewRegistry parses the embedded layouts for every known template.
func NewRegistry() (*Registry, error) {
	engine := liquid.NewEngine()
	layouts := make(map[offer.Template]Layout, len(offer.Templates()))
	for _, t := range offer.Templates() {
		src, err := layoutFS.ReadFile("layouts/" + string(t) + ".liquid")
		if err != nil {
			return nil, fmt.Errorf("read layout %s: %w", t, err)
		}
		tpl, perr := engine.ParseString(string(src))
		if perr != nil {
			return nil, fmt.Errorf("parse layout %s: %w", t, perr)
		}
		layouts[t] = Layout{template: t, source: tpl}
	}
	return newRegistry(layouts, offer.DefaultTemplate)
}

func newRegistry(layouts map[offer.Template]Layout, fallback offer.Template) (*Registry, error) {
	if _, ok := layouts[fallback]; !ok {
		return nil, ErrMissingDefault
	}
	return &Registry{layouts: layouts, fallback: fallback}, nil
}

// Layout returns the layout for t, or the default for unknown identifiers.
func (r *Registry) Layout(t offer.Template) Layout {
	if layout, ok := r.layouts[t]; ok {
		return layout
	}
	return r.layouts[r.fallback]
}

// Render produces the presentation for d.
func (r *Registry) Render(d offer.Draft) (Document, error) {
	layout := r.Layout(d.Template)
	html, err := layout.source.RenderString(bindings(d))
	if err != nil {
		return Document{}, fmt.Errorf("render layout %s: %w", layout.template, err)
	}
	return Document{Template: layout.template, HTML: html}, nil
}

var defaultRegistry = sync.OnceValues(NewRegistry)

// Render renders d with the embedded layouts.
func Render(d offer.Draft) (Document, error) {
	registry, err := defaultRegistry()
	if err != nil {
		return Document{}, err
	}
	return registry.Render(d)
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var amountPrinter = message.NewPrinter(language.English)

// bindings flattens d into the variables every layout consumes. Values are
// raw text; layouts apply the escape filter.
func bindings(d offer.Draft) map[string]any {
	features := make([]string, 0, len(d.Features))
	for i, feature := range d.Features {
		if strings.TrimSpace(feature) == "" {
			feature = fmt.Sprintf("Feature %d", i+1)
		}
		features = append(features, feature)
	}
	return map[string]any{
		"title":          orDefault(d.Title, FallbackTitle),
		"subtitle":       orDefault(d.Subtitle, FallbackSubtitle),
		"description":    orDefault(d.Description, FallbackDescription),
		"client_name":    strings.TrimSpace(d.ClientName),
		"features":       features,
		"has_features":   len(features) > 0,
		"currency":       d.Price.Currency.Symbol(),
		"amount":         FormatAmount(d.Price.Amount),
		"one_time":       d.Price.Interval != offer.IntervalMonthly && d.Price.Interval != offer.IntervalAnnually,
		"interval_unit":  intervalUnit(d.Price.Interval),
		"logo_url":       SafeURL(d.LogoURL),
		"hero_url":       SafeURL(d.Hero()),
		"primary":        SafeColor(d.BrandColors.Primary, offer.DefaultPrimaryColor),
		"secondary":      SafeColor(d.BrandColors.Secondary, offer.DefaultSecondaryColor),
		"accent":         SafeColor(d.BrandColors.Accent, offer.DefaultAccentColor),
		"template_class": "offer--" + string(offerTemplate(d.Template)),
	}
}

// FormatAmount formats a price with grouping and up to two decimals.
func FormatAmount(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return amountPrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// SafeColor returns value when it is a hex color, otherwise fallback.
func SafeColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if hexColor.MatchString(value) {
		return value
	}
	return fallback
}

// SafeURL returns value when it is an absolute http(s) URL, otherwise "".
func SafeURL(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.String()
	default:
		return ""
	}
}

func intervalUnit(i offer.Interval) string {
	switch i {
	case offer.IntervalMonthly:
		return "month"
	case offer.IntervalAnnually:
		return "year"
	default:
		return ""
	}
}

func offerTemplate(t offer.Template) offer.Template {
	if t.Valid() {
		return t
	}
	return offer.DefaultTemplate
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
