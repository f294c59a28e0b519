package offer

// Patch is a partial draft produced by an input collaborator. Nil fields are
// left unchanged by Merge.
type Patch struct {
	Title       *string
	Subtitle    *string
	Description *string
	ClientName  *string
	Price       *Price
	Features    []string
	Template    *Template
	BrandColors *BrandColors
	LogoURL     *string
}

// Merge overlays p onto d through the same clamps the reducer applies.
func (d Draft) Merge(p Patch) Draft {
	var actions []Action
	if p.Title != nil {
		actions = append(actions, SetTitle{Value: *p.Title})
	}
	if p.Subtitle != nil {
		actions = append(actions, SetSubtitle{Value: *p.Subtitle})
	}
	if p.Description != nil {
		actions = append(actions, SetDescription{Value: *p.Description})
	}
	if p.ClientName != nil {
		actions = append(actions, SetClientName{Value: *p.ClientName})
	}
	if p.LogoURL != nil {
		actions = append(actions, SetLogoURL{Value: *p.LogoURL})
	}
	if p.BrandColors != nil {
		actions = append(actions,
			SetBrandColor{Slot: ColorPrimary, Value: p.BrandColors.Primary},
			SetBrandColor{Slot: ColorSecondary, Value: p.BrandColors.Secondary},
			SetBrandColor{Slot: ColorAccent, Value: p.BrandColors.Accent},
		)
	}
	d = d.ApplyAll(actions...)
	if p.Price != nil {
		price := *p.Price
		price.Amount = clampAmount(price.Amount)
		price.Currency, _ = ParseCurrency(string(price.Currency))
		price.Interval, _ = ParseInterval(string(price.Interval))
		d.Price = price
	}
	if p.Features != nil {
		features := p.Features
		if len(features) > MaxFeatures {
			features = features[:MaxFeatures]
		}
		d.Features = append([]string{}, features...)
	}
	if p.Template != nil {
		d.Template, _ = ParseTemplate(string(*p.Template))
	}
	return d
}

// String returns a pointer to value for Patch literals.
func String(value string) *string {
	return &value
}
