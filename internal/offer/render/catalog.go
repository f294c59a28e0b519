package render

import "github.com/louisbranch/closealead/internal/offer"

// Info describes a template on the selection step.
type Info struct {
	Template    offer.Template
	NameKey     string
	SummaryKey  string
	BestForKey  string
	Swatches    [3]string
	Recommended bool
}

// Catalog lists the selectable templates in display order.
func Catalog() []Info {
	return []Info{
		{
			Template:    offer.TemplateModern,
			NameKey:     "template.modern.name",
			SummaryKey:  "template.modern.summary",
			BestForKey:  "template.modern.best_for",
			Swatches:    [3]string{"#3b82f6", "#6b7280", "#f3f4f6"},
			Recommended: true,
		},
		{
			Template:   offer.TemplateBold,
			NameKey:    "template.bold.name",
			SummaryKey: "template.bold.summary",
			BestForKey: "template.bold.best_for",
			Swatches:   [3]string{"#000000", "#ef4444", "#ffffff"},
		},
		{
			Template:   offer.TemplateElegant,
			NameKey:    "template.elegant.name",
			SummaryKey: "template.elegant.summary",
			BestForKey: "template.elegant.best_for",
			Swatches:   [3]string{"#1e3a8a", "#d97706", "#fef3c7"},
		},
		{
			Template:   offer.TemplateVibrant,
			NameKey:    "template.vibrant.name",
			SummaryKey: "template.vibrant.summary",
			BestForKey: "template.vibrant.best_for",
			Swatches:   [3]string{"#8b5cf6", "#ec4899", "#f59e0b"},
		},
	}
}
