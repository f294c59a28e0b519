package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/offer"
)

// Tab is one customization section link.
type Tab struct {
	Value  string
	Label  string
	URL    string
	Active bool
}

// ColorInput pairs a color picker with its free-text field.
type ColorInput struct {
	Slot  string
	Label string
	Value string
}

// EditorFields carries the current draft values for the form.
type EditorFields struct {
	Title         string
	Subtitle      string
	Description   string
	ClientName    string
	TitleCount    string
	SubtitleCount string
	WordCount     string
	Amount        string
	Currencies    []Option
	Intervals     []Option
	Features      []string
	CanAddFeature bool
	FeatureCount  string
	Colors        []ColorInput
	LogoURL       string
	HeroURL       string
}

// EditorView is the customize step for both new and persisted offers.
type EditorView struct {
	Steps        StepIndicator
	Heading      string
	Tabs         []Tab
	Section      string
	FormAction   string
	PreviewURL   string
	SaveAction   string
	SaveLabel    string
	ExportAction string
	BackAction   string
	BackLabel    string
	SubmitToken  string
	Notices      []string
	EditsLabel   string
	EditsWarning bool
	CanSave      bool
	Fields       EditorFields
	PreviewHTML  string
}

// EditorPage renders the customization panel beside the live preview.
func EditorPage(view EditorView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		wizardHeader(m, view.Steps)
		m.raw(`<section class="editor"><header class="editor__header"><h1>`)
		m.text(view.Heading)
		m.raw(`</h1>`)
		if view.EditsLabel != "" {
			class := "badge"
			if view.EditsWarning {
				class += " badge--warning"
			}
			m.raw(`<span`)
			m.attr("class", class)
			m.raw(`>`)
			m.text(view.EditsLabel)
			m.raw(`</span>`)
		}
		m.raw(`</header><div class="editor__body"><div class="panel"><nav class="tabs" role="tablist">`)
		for _, tab := range view.Tabs {
			class := "tabs__tab"
			if tab.Active {
				class += " tabs__tab--active"
			}
			m.raw(`<a role="tab"`)
			m.attr("class", class)
			m.attr("href", tab.URL)
			if tab.Active {
				m.raw(` aria-selected="true"`)
			}
			m.raw(`>`)
			m.text(tab.Label)
			m.raw(`</a>`)
		}
		m.raw(`</nav>`)
		for _, notice := range view.Notices {
			m.raw(`<p class="notice notice--warning" role="status">`)
			m.text(notice)
			m.raw(`</p>`)
		}
		m.raw(`<form method="post" class="panel__form" data-live-preview`)
		m.attr("action", view.FormAction)
		m.attr("data-preview-target", "#"+PreviewID)
		m.raw(`>`)
		hiddenInput(m, "section", view.Section)
		hiddenInput(m, "submit_token", view.SubmitToken)
		switch offer.Section(view.Section) {
		case offer.SectionPricing:
			pricingFields(m, loc, view.Fields)
		case offer.SectionFeatures:
			featureFields(m, loc, view.Fields)
		case offer.SectionBranding:
			brandingFields(m, loc, view.Fields)
		case offer.SectionImages:
			imageFields(m, loc, view.Fields)
		default:
			contentFields(m, loc, view.Fields)
		}
		m.raw(`<button type="submit" class="button button--ghost">`)
		m.text(T(loc, "web.editor.apply"))
		m.raw(`</button></form><div class="panel__actions">`)
		if view.CanSave {
			m.raw(`<form method="post"`)
			m.attr("action", view.SaveAction)
			m.raw(`>`)
			hiddenInput(m, "submit_token", view.SubmitToken)
			m.raw(`<button type="submit" class="button">`)
			m.text(view.SaveLabel)
			m.raw(`</button></form>`)
		}
		if view.ExportAction != "" {
			m.raw(`<form method="post"`)
			m.attr("action", view.ExportAction)
			m.raw(`><button type="submit" class="button button--ghost">`)
			m.text(T(loc, "web.editor.export"))
			m.raw(`</button></form>`)
		}
		if view.BackAction != "" {
			m.raw(`<form method="post"`)
			m.attr("action", view.BackAction)
			m.raw(`><button type="submit" class="button button--ghost">`)
			m.text(view.BackLabel)
			m.raw(`</button></form>`)
		}
		m.raw(`</div></div>`)
		m.component(ctx, Preview(view.PreviewURL, view.PreviewHTML, loc))
		m.raw(`</div></section>`)
	})
}

// Preview renders the live preview region. html is the already escaped
// output of the offer renderer.
func Preview(refreshURL, html string, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<aside class="preview"`)
		m.attr("id", PreviewID)
		if refreshURL != "" {
			m.attr("data-preview-url", refreshURL)
		}
		m.raw(`><p class="preview__label">`)
		m.text(T(loc, "web.editor.preview"))
		m.raw(`</p><div class="preview__frame">`)
		m.raw(html)
		m.raw(`</div></aside>`)
	})
}

func contentFields(m *markup, loc Localizer, f EditorFields) {
	textField(m, T(loc, "web.editor.client_name"), offer.FieldClientName, f.ClientName, T(loc, "web.editor.client_name_placeholder"), offer.MaxClientNameLen, "")
	textField(m, T(loc, "web.editor.title"), offer.FieldTitle, f.Title, T(loc, "web.editor.title_placeholder"), offer.MaxTitleLen, f.TitleCount)
	textField(m, T(loc, "web.editor.subtitle"), offer.FieldSubtitle, f.Subtitle, T(loc, "web.editor.subtitle_placeholder"), offer.MaxSubtitleLen, f.SubtitleCount)
	m.raw(`<div class="field"><label`)
	m.attr("for", offer.FieldDescription)
	m.raw(`>`)
	m.text(T(loc, "web.editor.description"))
	m.raw(`</label><textarea rows="8"`)
	m.attr("id", offer.FieldDescription)
	m.attr("name", offer.FieldDescription)
	m.attr("placeholder", T(loc, "web.editor.description_placeholder"))
	m.raw(`>`)
	m.text(f.Description)
	m.raw(`</textarea><p class="field__hint">`)
	m.text(f.WordCount)
	m.raw(`</p></div>`)
}

func pricingFields(m *markup, loc Localizer, f EditorFields) {
	m.raw(`<div class="field"><label`)
	m.attr("for", offer.FieldAmount)
	m.raw(`>`)
	m.text(T(loc, "web.editor.amount"))
	m.raw(`</label><input type="text" inputmode="decimal"`)
	m.attr("id", offer.FieldAmount)
	m.attr("name", offer.FieldAmount)
	m.attr("value", f.Amount)
	m.raw(`></div><div class="field"><label`)
	m.attr("for", offer.FieldCurrency)
	m.raw(`>`)
	m.text(T(loc, "web.editor.currency"))
	m.raw(`</label>`)
	selectField(m, offer.FieldCurrency, offer.FieldCurrency, f.Currencies)
	m.raw(`</div><div class="field"><label`)
	m.attr("for", offer.FieldInterval)
	m.raw(`>`)
	m.text(T(loc, "web.editor.interval"))
	m.raw(`</label>`)
	selectField(m, offer.FieldInterval, offer.FieldInterval, f.Intervals)
	m.raw(`</div>`)
}

func featureFields(m *markup, loc Localizer, f EditorFields) {
	m.raw(`<p class="field__hint">`)
	m.text(f.FeatureCount)
	m.raw(`</p><ol class="feature-list">`)
	for i, feature := range f.Features {
		m.raw(`<li class="feature-list__item"><input type="text"`)
		m.attr("name", offer.FieldFeature)
		m.attr("value", feature)
		m.attr("aria-label", T(loc, "web.editor.feature_label", i+1))
		m.raw(`><button type="submit" class="button button--ghost"`)
		m.attr("name", offer.FieldFeatureOp)
		m.attr("value", "remove:"+strconv.Itoa(i))
		m.raw(`>`)
		m.text(T(loc, "web.editor.remove_feature"))
		m.raw(`</button></li>`)
	}
	m.raw(`</ol>`)
	if f.CanAddFeature {
		m.raw(`<button type="submit" class="button button--ghost" value="add"`)
		m.attr("name", offer.FieldFeatureOp)
		m.raw(`>`)
		m.text(T(loc, "web.editor.add_feature"))
		m.raw(`</button>`)
	}
}

func brandingFields(m *markup, loc Localizer, f EditorFields) {
	textField(m, T(loc, "web.editor.logo_url"), offer.FieldLogoURL, f.LogoURL, "https://example.com/logo.png", 0, "")
	for _, color := range f.Colors {
		slot := offer.ColorSlot(color.Slot)
		picker := offer.ColorField(slot)
		text := offer.ColorTextField(slot)
		m.raw(`<div class="field field--color"><label`)
		m.attr("for", picker)
		m.raw(`>`)
		m.text(color.Label)
		m.raw(`</label><input type="color"`)
		m.attr("id", picker)
		m.attr("name", picker)
		m.attr("value", color.Value)
		m.attr("data-color-sync", text)
		m.raw(`><input type="text" pattern="#[0-9a-fA-F]{3,8}"`)
		m.attr("id", text)
		m.attr("name", text)
		m.attr("value", color.Value)
		m.attr("aria-label", color.Label)
		m.attr("data-color-sync", picker)
		m.raw(`></div>`)
	}
}

func imageFields(m *markup, loc Localizer, f EditorFields) {
	textField(m, T(loc, "web.editor.hero_url"), offer.FieldHeroImage, f.HeroURL, "https://example.com/hero.jpg", 0, "")
	m.raw(`<p class="field__hint">`)
	m.text(T(loc, "web.editor.hero_hint"))
	m.raw(`</p>`)
}

func textField(m *markup, label, name, value, placeholder string, maxLen int, counter string) {
	m.raw(`<div class="field"><label`)
	m.attr("for", name)
	m.raw(`>`)
	m.text(label)
	m.raw(`</label><input type="text"`)
	m.attr("id", name)
	m.attr("name", name)
	m.attr("value", value)
	if placeholder != "" {
		m.attr("placeholder", placeholder)
	}
	if maxLen > 0 {
		m.attr("maxlength", strconv.Itoa(maxLen))
	}
	m.raw(`>`)
	if counter != "" {
		m.raw(`<p class="field__hint field__hint--counter"`)
		m.attr("id", name+"-count")
		m.raw(`>`)
		m.text(counter)
		m.raw(`</p>`)
	}
	m.raw(`</div>`)
}
