package offer

import (
	"net/url"
	"strconv"
	"strings"
)

// Section is one customization tab.
type Section string

const (
	SectionContent  Section = "content"
	SectionPricing  Section = "pricing"
	SectionFeatures Section = "features"
	SectionBranding Section = "branding"
	SectionImages   Section = "images"
)

// Sections returns the customization tabs in display order.
func Sections() []Section {
	return []Section{SectionContent, SectionPricing, SectionFeatures, SectionBranding, SectionImages}
}

// ParseSection resolves a tab name, falling back to content.
func ParseSection(value string) Section {
	s := Section(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Sections() {
		if s == known {
			return s
		}
	}
	return SectionContent
}

// Notice is a non-blocking field message raised while decoding a form.
type Notice struct {
	Field string
	Key   string
}

// NoticePriceInvalid is raised when price text is not a number.
const NoticePriceInvalid = "web.creator.notice.price_invalid"

// Form field names shared with the customization templates.
const (
	FieldTitle       = "title"
	FieldSubtitle    = "subtitle"
	FieldDescription = "description"
	FieldClientName  = "client_name"
	FieldAmount      = "price_amount"
	FieldCurrency    = "price_currency"
	FieldInterval    = "price_interval"
	FieldFeature     = "feature"
	FieldFeatureOp   = "feature_op"
	FieldLogoURL     = "logo_url"
	FieldHeroImage   = "hero_image"
)

// ColorField returns the color-picker field name for slot.
func ColorField(slot ColorSlot) string {
	return "color_" + string(slot)
}

// ColorTextField returns the free-text field name paired with the picker.
func ColorTextField(slot ColorSlot) string {
	return "color_" + string(slot) + "_text"
}

// ActionsFromForm decodes one posted customization tab into reducer actions.
// Fields of other tabs are ignored so editing one section never changes
// another.
func ActionsFromForm(current Draft, section Section, form url.Values) ([]Action, []Notice) {
	var actions []Action
	var notices []Notice
	switch section {
	case SectionContent:
		actions = append(actions,
			SetClientName{Value: form.Get(FieldClientName)},
			SetTitle{Value: form.Get(FieldTitle)},
			SetSubtitle{Value: form.Get(FieldSubtitle)},
			SetDescription{Value: form.Get(FieldDescription)},
		)
	case SectionPricing:
		amount := SetPriceAmount{Raw: form.Get(FieldAmount)}
		if _, ok := amount.Parse(); !ok {
			notices = append(notices, Notice{Field: FieldAmount, Key: NoticePriceInvalid})
		}
		actions = append(actions,
			amount,
			SetPriceCurrency{Value: form.Get(FieldCurrency)},
			SetPriceInterval{Value: form.Get(FieldInterval)},
		)
	case SectionFeatures:
		for i, value := range form[FieldFeature] {
			if i >= len(current.Features) {
				break
			}
			actions = append(actions, EditFeature{Index: i, Value: value})
		}
		if op := featureOp(form.Get(FieldFeatureOp)); op != nil {
			actions = append(actions, op)
		}
	case SectionBranding:
		for _, slot := range ColorSlots() {
			actions = append(actions, SetBrandColor{Slot: slot, Value: pickColor(current.BrandColors.Get(slot), form.Get(ColorField(slot)), form.Get(ColorTextField(slot)))})
		}
		actions = append(actions, SetLogoURL{Value: form.Get(FieldLogoURL)})
	case SectionImages:
		actions = append(actions, SetHeroImage{Value: form.Get(FieldHeroImage)})
	}
	return actions, notices
}

// featureOp decodes "add" or "remove:{index}".
func featureOp(value string) Action {
	value = strings.TrimSpace(value)
	if value == "add" {
		return AddFeature{}
	}
	raw, ok := strings.CutPrefix(value, "remove:")
	if !ok {
		return nil
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return RemoveFeature{Index: index}
}

// pickColor keeps the picker and free-text inputs in sync: whichever input
// changed from the current value wins, the text field taking precedence.
func pickColor(current, picker, text string) string {
	text = strings.TrimSpace(text)
	picker = strings.TrimSpace(picker)
	if text != "" && !strings.EqualFold(text, current) {
		return text
	}
	if picker != "" {
		return picker
	}
	return current
}
