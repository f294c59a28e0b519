package offer

import (
	"math"
	"strconv"
	"strings"
)

// Action is one field-group update accepted by Draft.Apply. The set of
// implementations is closed to this package.
type Action interface {
	apply(Draft) Draft
}

// Apply returns d with a applied. d itself is never mutated.
func (d Draft) Apply(a Action) Draft {
	if a == nil {
		return d
	}
	return a.apply(d.Clone())
}

// ApplyAll folds actions over d in order.
func (d Draft) ApplyAll(actions ...Action) Draft {
	for _, a := range actions {
		d = d.Apply(a)
	}
	return d
}

// SetTitle replaces the title, truncating to MaxTitleLen.
type SetTitle struct{ Value string }

func (a SetTitle) apply(d Draft) Draft {
	d.Title = clampRunes(a.Value, MaxTitleLen)
	return d
}

// SetSubtitle replaces the subtitle, truncating to MaxSubtitleLen.
type SetSubtitle struct{ Value string }

func (a SetSubtitle) apply(d Draft) Draft {
	d.Subtitle = clampRunes(a.Value, MaxSubtitleLen)
	return d
}

// SetDescription replaces the description.
type SetDescription struct{ Value string }

func (a SetDescription) apply(d Draft) Draft {
	d.Description = a.Value
	return d
}

// SetClientName replaces the personalization name, truncating to MaxClientNameLen.
type SetClientName struct{ Value string }

func (a SetClientName) apply(d Draft) Draft {
	d.ClientName = clampRunes(a.Value, MaxClientNameLen)
	return d
}

// SetPriceAmount sets the price amount from raw form text. Text that does not
// parse as a finite non-negative number stores zero.
type SetPriceAmount struct{ Raw string }

// Parse returns the amount stored for Raw and whether Raw was a valid number.
// Blank text is valid and stores zero.
func (a SetPriceAmount) Parse() (float64, bool) {
	raw := strings.TrimSpace(a.Raw)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}
	return value, true
}

func (a SetPriceAmount) apply(d Draft) Draft {
	d.Price.Amount, _ = a.Parse()
	return d
}

// SetPriceCurrency sets the currency; unknown codes select USD.
type SetPriceCurrency struct{ Value string }

func (a SetPriceCurrency) apply(d Draft) Draft {
	d.Price.Currency, _ = ParseCurrency(a.Value)
	return d
}

// SetPriceInterval sets the billing interval; unknown values select one-time.
type SetPriceInterval struct{ Value string }

func (a SetPriceInterval) apply(d Draft) Draft {
	d.Price.Interval, _ = ParseInterval(a.Value)
	return d
}

// AddFeature appends an empty feature while fewer than MaxFeatures exist.
type AddFeature struct{}

func (AddFeature) apply(d Draft) Draft {
	if len(d.Features) >= MaxFeatures {
		return d
	}
	d.Features = append(d.Features, "")
	return d
}

// RemoveFeature deletes the feature at Index, shifting later entries down.
type RemoveFeature struct{ Index int }

func (a RemoveFeature) apply(d Draft) Draft {
	if a.Index < 0 || a.Index >= len(d.Features) {
		return d
	}
	d.Features = append(d.Features[:a.Index], d.Features[a.Index+1:]...)
	return d
}

// EditFeature replaces the feature at Index in place.
type EditFeature struct {
	Index int
	Value string
}

func (a EditFeature) apply(d Draft) Draft {
	if a.Index < 0 || a.Index >= len(d.Features) {
		return d
	}
	d.Features[a.Index] = a.Value
	return d
}

// SetLogoURL replaces the logo URL.
type SetLogoURL struct{ Value string }

func (a SetLogoURL) apply(d Draft) Draft {
	d.LogoURL = strings.TrimSpace(a.Value)
	return d
}

// ColorSlot names one brand palette entry.
type ColorSlot string

const (
	ColorPrimary   ColorSlot = "primary"
	ColorSecondary ColorSlot = "secondary"
	ColorAccent    ColorSlot = "accent"
)

// ColorSlots returns the palette slots in display order.
func ColorSlots() []ColorSlot {
	return []ColorSlot{ColorPrimary, ColorSecondary, ColorAccent}
}

// Get returns the color stored for slot.
func (c BrandColors) Get(slot ColorSlot) string {
	switch slot {
	case ColorPrimary:
		return c.Primary
	case ColorSecondary:
		return c.Secondary
	case ColorAccent:
		return c.Accent
	default:
		return ""
	}
}

// SetBrandColor sets one palette slot. Other slots are untouched.
type SetBrandColor struct {
	Slot  ColorSlot
	Value string
}

func (a SetBrandColor) apply(d Draft) Draft {
	value := strings.TrimSpace(a.Value)
	switch a.Slot {
	case ColorPrimary:
		d.BrandColors.Primary = value
	case ColorSecondary:
		d.BrandColors.Secondary = value
	case ColorAccent:
		d.BrandColors.Accent = value
	}
	return d
}

// SetHeroImage replaces the hero image. An empty value clears it.
type SetHeroImage struct{ Value string }

func (a SetHeroImage) apply(d Draft) Draft {
	value := strings.TrimSpace(a.Value)
	switch {
	case value == "" && len(d.Images) > 0:
		d.Images = d.Images[1:]
	case value == "":
	case len(d.Images) == 0:
		d.Images = []string{value}
	default:
		d.Images[0] = value
	}
	return d
}
