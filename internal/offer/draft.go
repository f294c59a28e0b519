package offer

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLen bounds the offer title in runes.
	MaxTitleLen = 60
	// MaxSubtitleLen bounds the offer subtitle in runes.
	MaxSubtitleLen = 120
	// MaxClientNameLen bounds the optional personalization name in runes.
	MaxClientNameLen = 100
	// MaxFeatures bounds the feature list length.
	MaxFeatures = 10
	// DefaultEditLimit is the edit quota assigned to drafts before the backend
	// reports a plan-specific value.
	DefaultEditLimit = 5
)

// Default brand palette for new drafts.
const (
	DefaultPrimaryColor   = "#3b82f6"
	DefaultSecondaryColor = "#8b5cf6"
	DefaultAccentColor    = "#10b981"
)

// Template identifies one visual layout variant.
type Template string

const (
	TemplateModern  Template = "modern"
	TemplateBold    Template = "bold"
	TemplateElegant Template = "elegant"
	TemplateVibrant Template = "vibrant"
)

// DefaultTemplate is used for new drafts and unrecognized identifiers.
const DefaultTemplate = TemplateModern

// Templates returns every known template in display order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateBold, TemplateElegant, TemplateVibrant}
}

// ParseTemplate resolves a template identifier, reporting whether it is known.
func ParseTemplate(value string) (Template, bool) {
	t := Template(strings.ToLower(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return DefaultTemplate, false
}

// Valid reports whether t is one of the known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateBold, TemplateElegant, TemplateVibrant:
		return true
	default:
		return false
	}
}

// Currency is an ISO 4217 code supported by the price editor.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD}
}

// ParseCurrency resolves a currency code, falling back to USD.
func ParseCurrency(value string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(value)))
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD:
		return c, true
	default:
		return CurrencyUSD, false
	}
}

// Symbol returns the display symbol for c.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	default:
		return "$"
	}
}

// Interval is the billing cadence shown next to the price.
type Interval string

const (
	IntervalOneTime  Interval = "one-time"
	IntervalMonthly  Interval = "monthly"
	IntervalAnnually Interval = "annually"
)

// Intervals returns the supported intervals in display order.
func Intervals() []Interval {
	return []Interval{IntervalOneTime, IntervalMonthly, IntervalAnnually}
}

// ParseInterval resolves an interval, falling back to one-time.
func ParseInterval(value string) (Interval, bool) {
	i := Interval(strings.ToLower(strings.TrimSpace(value)))
	switch i {
	case IntervalOneTime, IntervalMonthly, IntervalAnnually:
		return i, true
	default:
		return IntervalOneTime, false
	}
}

// Price is the offer price block.
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
	Interval Interval `json:"interval"`
}

// BrandColors holds the three palette slots applied by layouts.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Draft is the canonical offer document edited by the wizard.
type Draft struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	ClientName  string      `json:"clientName,omitempty"`
	Price       Price       `json:"price"`
	Features    []string    `json:"features"`
	Template    Template    `json:"template"`
	BrandColors BrandColors `json:"brandColors"`
	LogoURL     string      `json:"logoUrl,omitempty"`
	Images      []string    `json:"images"`
	EditCount   int         `json:"editCount"`
	EditLimit   int         `json:"editLimit"`
}

// NewDraft returns the empty draft a new wizard starts from.
func NewDraft() Draft {
	return Draft{
		Price:     Price{Currency: CurrencyUSD, Interval: IntervalOneTime},
		Features:  []string{},
		Template:  DefaultTemplate,
		Images:    []string{},
		EditLimit: DefaultEditLimit,
		BrandColors: BrandColors{
			Primary:   DefaultPrimaryColor,
			Secondary: DefaultSecondaryColor,
			Accent:    DefaultAccentColor,
		},
	}
}

// Normalize enforces draft invariants on values that did not pass through
// the reducer, such as backend payloads.
func (d Draft) Normalize() Draft {
	d.Title = clampRunes(d.Title, MaxTitleLen)
	d.Subtitle = clampRunes(d.Subtitle, MaxSubtitleLen)
	d.ClientName = clampRunes(d.ClientName, MaxClientNameLen)
	d.Price.Currency, _ = ParseCurrency(string(d.Price.Currency))
	d.Price.Interval, _ = ParseInterval(string(d.Price.Interval))
	d.Price.Amount = clampAmount(d.Price.Amount)
	if len(d.Features) > MaxFeatures {
		d.Features = d.Features[:MaxFeatures]
	}
	d.Features = append([]string{}, d.Features...)
	d.Images = append([]string{}, d.Images...)
	d.Template, _ = ParseTemplate(string(d.Template))
	if d.EditCount < 0 {
		d.EditCount = 0
	}
	return d
}

// Clone returns a copy of d that shares no slices with it.
func (d Draft) Clone() Draft {
	d.Features = append([]string{}, d.Features...)
	d.Images = append([]string{}, d.Images...)
	return d
}

// Hero returns the hero image URL, if any.
func (d Draft) Hero() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}

// EditsRemaining reports max(0, limit-used) for this draft. A non-positive
// limit is reported as-is so callers can substitute a plan default.
func (d Draft) EditsRemaining() int {
	if d.EditLimit <= 0 {
		return d.EditLimit
	}
	if d.EditCount >= d.EditLimit {
		return 0
	}
	return d.EditLimit - d.EditCount
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func clampRunes(value string, max int) string {
	if utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max])
}

// clampAmount replaces negative and non-finite amounts with 0.
func clampAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
