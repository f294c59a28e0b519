package guided

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/louisbranch/closealead/internal/offer"
)

// Synthesizer turns completed answers into a draft patch.
type Synthesizer interface {
	Synthesize(Answers) offer.Patch
}

// Heuristic is the static templating synthesizer used until a content
// generation backend is available.
type Heuristic struct{}

const (
	defaultServiceName = "Professional Service"
	defaultPrice       = 997
)

var numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)*`)

// Synthesize implements Synthesizer.
func (Heuristic) Synthesize(a Answers) offer.Patch {
	service := a.Get(FieldServiceName)
	title := service
	if title == "" {
		title = defaultServiceName
		service = defaultServiceName
	}
	subtitle := fmt.Sprintf("Transform Your Business with %s", service)
	description := fmt.Sprintf(
		"Are you struggling with %s? We help %s achieve their goals through our proven %s. %s",
		a.Get(FieldProblemSolved),
		a.Get(FieldTargetAudience),
		strings.ToLower(service),
		a.Get(FieldUniqueValue),
	)
	if guarantees := a.Get(FieldGuarantees); guarantees != "" {
		description = strings.TrimSpace(description) + " " + guarantees
	}
	tmpl := TemplateFor(a.Get(FieldBrandPersonality))
	return offer.Patch{
		Title:       offer.String(title),
		Subtitle:    offer.String(subtitle),
		Description: offer.String(strings.TrimSpace(description)),
		Price: &offer.Price{
			Amount:   ParsePrice(a.Get(FieldPricing)),
			Currency: offer.CurrencyUSD,
			Interval: offer.IntervalOneTime,
		},
		Features: SplitFeatures(a.Get(FieldFeatures)),
		Template: &tmpl,
	}
}

// TemplateFor maps a brand personality answer to a layout.
func TemplateFor(personality string) offer.Template {
	switch strings.ToLower(strings.TrimSpace(personality)) {
	case "bold":
		return offer.TemplateBold
	case "elegant", "luxurious":
		return offer.TemplateElegant
	default:
		return offer.TemplateModern
	}
}

// ParsePrice returns the first number in text, or the default price.
func ParsePrice(text string) float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return defaultPrice
	}
	// Commas are thousands separators; repeated dots are too.
	digits := strings.ReplaceAll(match, ",", "")
	if strings.Count(digits, ".") > 1 {
		digits = strings.ReplaceAll(digits, ".", "")
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil || value <= 0 {
		return defaultPrice
	}
	return value
}

// SplitFeatures splits a free-text list on newlines, commas and semicolons.
// Blank entries are dropped and the result is capped at offer.MaxFeatures.
// An empty answer yields three placeholder features.
func SplitFeatures(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	features := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(part), "-*•"))
		if part == "" {
			continue
		}
		features = append(features, part)
		if len(features) == offer.MaxFeatures {
			break
		}
	}
	if len(features) == 0 {
		return []string{"Feature 1", "Feature 2", "Feature 3"}
	}
	return features
}
