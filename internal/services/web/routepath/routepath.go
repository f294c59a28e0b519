// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Pricing = "/pricing"
	Login   = "/login"
	Signup  = "/signup"
	Logout  = "/logout"
	Health  = "/up"
	Static  = "/static/"

	Dashboard                = "/dashboard"
	DashboardPrefix          = "/dashboard/"
	DashboardOfferDeletePath = DashboardPrefix + "offers/{offerID}/delete"

	Create          = "/create"
	CreatePrefix    = "/create/"
	CreateMode      = "/create/mode"
	CreateAnswer    = "/create/answer"
	CreateUpload    = "/create/upload"
	CreateTemplate  = "/create/template"
	CreateCustomize = "/create/customize"
	CreatePreview   = "/create/preview"
	CreateSave      = "/create/save"
	CreateRestart   = "/create/restart"

	EditPrefix           = "/edit/"
	EditPattern          = EditPrefix + "{offerID}"
	EditCustomizePattern = EditPrefix + "{offerID}/customize"
	EditPreviewPattern   = EditPrefix + "{offerID}/preview"
	EditSavePattern      = EditPrefix + "{offerID}/save"
	EditExportPattern    = EditPrefix + "{offerID}/export"
	EditReloadPattern    = EditPrefix + "{offerID}/reload"

	SectionQueryKey = "section"
	BillingQueryKey = "billing"
	PlanQueryKey    = "plan"
)

// DashboardOfferDelete returns the dashboard delete route for one offer.
func DashboardOfferDelete(offerID string) string {
	return DashboardPrefix + "offers/" + escapeSegment(offerID) + "/delete"
}

// Edit returns the editor route for a persisted offer.
func Edit(offerID string) string {
	return EditPrefix + escapeSegment(offerID)
}

// EditCustomize returns the editor form route for a persisted offer.
func EditCustomize(offerID string) string {
	return Edit(offerID) + "/customize"
}

// EditPreview returns the preview fragment route for a persisted offer.
func EditPreview(offerID string) string {
	return Edit(offerID) + "/preview"
}

// EditSave returns the save route for a persisted offer.
func EditSave(offerID string) string {
	return Edit(offerID) + "/save"
}

// EditExport returns the document export route for a persisted offer.
func EditExport(offerID string) string {
	return Edit(offerID) + "/export"
}

// EditReload returns the route that discards cached edits for an offer.
func EditReload(offerID string) string {
	return Edit(offerID) + "/reload"
}

// WithSection appends the active customization tab to base.
func WithSection(base, section string) string {
	section = strings.TrimSpace(section)
	if section == "" {
		return base
	}
	return base + "?" + SectionQueryKey + "=" + url.QueryEscape(section)
}

// PricingWithBilling returns the pricing route for a billing period.
func PricingWithBilling(billing string) string {
	billing = strings.TrimSpace(billing)
	if billing == "" {
		return Pricing
	}
	return Pricing + "?" + BillingQueryKey + "=" + url.QueryEscape(billing)
}

// SignupWithPlan returns the signup route preselecting a plan.
func SignupWithPlan(plan string) string {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return Signup
	}
	return Signup + "?" + PlanQueryKey + "=" + url.QueryEscape(plan)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
