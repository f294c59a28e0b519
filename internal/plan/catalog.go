package plan

// Billing selects monthly or annual pricing on the pricing page.
type Billing string

const (
	BillingMonthly Billing = "monthly"
	BillingAnnual  Billing = "annual"
)

// ParseBilling resolves a billing toggle value, defaulting to monthly.
func ParseBilling(value string) Billing {
	if Billing(value) == BillingAnnual {
		return BillingAnnual
	}
	return BillingMonthly
}

// Tier is one card on the pricing page. Prices are in USD cents.
type Tier struct {
	ID           ID
	NameKey      string
	MonthlyCents int
	AnnualCents  int
	FeatureKeys  []string
	Highlighted  bool
}

// DisplayCents returns the per-month price shown for billing.
func (t Tier) DisplayCents(billing Billing) int {
	if billing == BillingAnnual && t.AnnualCents > 0 {
		return t.AnnualCents / 12
	}
	return t.MonthlyCents
}

// BilledCents returns the amount charged per billing period.
func (t Tier) BilledCents(billing Billing) int {
	if billing == BillingAnnual {
		return t.AnnualCents
	}
	return t.MonthlyCents
}

// Catalog returns the public pricing tiers in display order.
func Catalog() []Tier {
	return []Tier{
		{
			ID:      Free,
			NameKey: "plan.free.name",
			FeatureKeys: []string{
				"plan.free.feature.offers",
				"plan.free.feature.edits",
				"plan.feature.templates",
				"plan.feature.pdf",
			},
		},
		{
			ID:           Professional,
			NameKey:      "plan.professional.name",
			MonthlyCents: 1200,
			AnnualCents:  10500,
			Highlighted:  true,
			FeatureKeys: []string{
				"plan.professional.feature.offers",
				"plan.professional.feature.edits",
				"plan.feature.templates",
				"plan.feature.pdf",
				"plan.feature.branding",
				"plan.feature.assistant",
			},
		},
		{
			ID:           Enterprise,
			NameKey:      "plan.enterprise.name",
			MonthlyCents: 3500,
			AnnualCents:  29500,
			FeatureKeys: []string{
				"plan.enterprise.feature.offers",
				"plan.enterprise.feature.edits",
				"plan.feature.templates",
				"plan.feature.pdf",
				"plan.feature.branding",
				"plan.feature.assistant",
				"plan.enterprise.feature.support",
			},
		},
	}
}
