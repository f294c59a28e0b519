package offer

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSection(t *testing.T) {
	t.Parallel()

	if got := ParseSection("Branding"); got != SectionBranding {
		t.Fatalf("section = %q, want branding", got)
	}
	if got := ParseSection("nope"); got != SectionContent {
		t.Fatalf("section = %q, want content", got)
	}
}

func TestActionsFromFormContentIgnoresOtherTabs(t *testing.T) {
	t.Parallel()

	current := NewDraft()
	current.Price.Amount = 50
	form := url.Values{
		FieldTitle:    {"New title"},
		FieldSubtitle: {"Sub"},
		FieldAmount:   {"999"},
	}
	actions, notices := ActionsFromForm(current, SectionContent, form)
	if len(notices) != 0 {
		t.Fatalf("notices = %v, want none", notices)
	}
	got := current.ApplyAll(actions...)
	if got.Title != "New title" || got.Subtitle != "Sub" {
		t.Fatalf("content = %q/%q", got.Title, got.Subtitle)
	}
	if got.Price.Amount != 50 {
		t.Fatalf("amount = %v, want 50", got.Price.Amount)
	}
}

func TestActionsFromFormPricingInvalidAmountRaisesNotice(t *testing.T) {
	t.Parallel()

	form := url.Values{FieldAmount: {"twelve"}, FieldCurrency: {"CAD"}, FieldInterval: {"annually"}}
	actions, notices := ActionsFromForm(NewDraft(), SectionPricing, form)
	want := []Notice{{Field: FieldAmount, Key: NoticePriceInvalid}}
	if diff := cmp.Diff(want, notices); diff != "" {
		t.Fatalf("notices mismatch (-want +got):\n%s", diff)
	}
	got := NewDraft().ApplyAll(actions...)
	if diff := cmp.Diff(Price{Amount: 0, Currency: CurrencyCAD, Interval: IntervalAnnually}, got.Price); diff != "" {
		t.Fatalf("price mismatch (-want +got):\n%s", diff)
	}
}

func TestActionsFromFormFeatureEditsThenRemove(t *testing.T) {
	t.Parallel()

	current := NewDraft()
	current.Features = []string{"a", "b", "c"}
	form := url.Values{
		FieldFeature:   {"A", "B", "C"},
		FieldFeatureOp: {"remove:0"},
	}
	actions, _ := ActionsFromForm(current, SectionFeatures, form)
	got := current.ApplyAll(actions...)
	if diff := cmp.Diff([]string{"B", "C"}, got.Features); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestActionsFromFormFeatureAdd(t *testing.T) {
	t.Parallel()

	actions, _ := ActionsFromForm(NewDraft(), SectionFeatures, url.Values{FieldFeatureOp: {"add"}})
	got := NewDraft().ApplyAll(actions...)
	if diff := cmp.Diff([]string{""}, got.Features); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestActionsFromFormBrandingTextWinsWhenChanged(t *testing.T) {
	t.Parallel()

	current := NewDraft()
	form := url.Values{
		ColorField(ColorPrimary):       {DefaultPrimaryColor},
		ColorTextField(ColorPrimary):   {"#ff0000"},
		ColorField(ColorSecondary):     {"#00ff00"},
		ColorTextField(ColorSecondary): {DefaultSecondaryColor},
		FieldLogoURL:                   {" https://example.com/logo.png "},
	}
	actions, _ := ActionsFromForm(current, SectionBranding, form)
	got := current.ApplyAll(actions...)
	want := BrandColors{Primary: "#ff0000", Secondary: "#00ff00", Accent: DefaultAccentColor}
	if diff := cmp.Diff(want, got.BrandColors); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}
	if got.LogoURL != "https://example.com/logo.png" {
		t.Fatalf("logo = %q", got.LogoURL)
	}
}
