package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
)

// StatCard is one dashboard summary tile. Percent is negative when the
// tile has no bounded progress bar.
type StatCard struct {
	Label   string
	Value   string
	Detail  string
	Percent int
	High    bool
	Link    string
	LinkKey string
}

// OfferCard is one offer tile on the dashboard grid.
type OfferCard struct {
	ID           string
	Title        string
	Subtitle     string
	Template     string
	TemplateName string
	CreatedLabel string
	EditsLabel   string
	LeftLabel    string
	Percent      int
	High         bool
}

// DashboardView is the dashboard page model.
type DashboardView struct {
	Greeting   string
	Stats      []StatCard
	Offers     []OfferCard
	CanCreate  bool
	LoadFailed bool
}

// DashboardPage renders stat cards and the offer grid.
func DashboardPage(view DashboardView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="dashboard" id="dashboard-root"><header class="dashboard__header"><h1>`)
		m.text(view.Greeting)
		m.raw(`</h1>`)
		if view.CanCreate {
			m.raw(`<a class="button" href="` + routepath.Create + `">`)
			m.text(T(loc, "web.dashboard.new_offer"))
			m.raw(`</a>`)
		} else {
			m.raw(`<a class="button button--ghost" href="` + routepath.Pricing + `">`)
			m.text(T(loc, "web.dashboard.upgrade_to_create"))
			m.raw(`</a>`)
		}
		m.raw(`</header><ul class="stats">`)
		for _, stat := range view.Stats {
			statCard(m, loc, stat)
		}
		m.raw(`</ul>`)
		if view.LoadFailed {
			m.raw(`<p class="notice notice--error">`)
			m.text(T(loc, "web.dashboard.load_failed"))
			m.raw(`</p>`)
		}
		if len(view.Offers) == 0 && !view.LoadFailed {
			m.raw(`<div class="empty card"><h2>`)
			m.text(T(loc, "web.dashboard.empty_heading"))
			m.raw(`</h2><p>`)
			m.text(T(loc, "web.dashboard.empty_body"))
			m.raw(`</p></div>`)
		}
		m.raw(`<ul class="offers">`)
		for _, card := range view.Offers {
			offerCard(m, loc, card)
		}
		m.raw(`</ul></section>`)
	})
}

func statCard(m *markup, loc Localizer, stat StatCard) {
	m.raw(`<li class="card stat"><p class="stat__value">`)
	m.text(stat.Value)
	if stat.Detail != "" {
		m.raw(` <span class="stat__detail">`)
		m.text(stat.Detail)
		m.raw(`</span>`)
	}
	m.raw(`</p><p class="stat__label">`)
	m.text(stat.Label)
	m.raw(`</p>`)
	if stat.Percent >= 0 {
		meter(m, stat.Percent, stat.High)
	}
	if stat.Link != "" {
		m.raw(`<a`)
		m.attr("href", stat.Link)
		m.raw(`>`)
		m.text(T(loc, stat.LinkKey))
		m.raw(`</a>`)
	}
	m.raw(`</li>`)
}

func offerCard(m *markup, loc Localizer, card OfferCard) {
	m.raw(`<li class="card offer-card"`)
	m.attr("data-offer-id", card.ID)
	m.raw(`><div class="offer-card__cover"><h3>`)
	m.text(card.Title)
	m.raw(`</h3><p>`)
	m.text(card.Subtitle)
	m.raw(`</p><span`)
	m.attr("class", "badge badge--"+card.Template)
	m.raw(`>`)
	m.text(card.TemplateName)
	m.raw(`</span></div><p class="offer-card__meta">`)
	m.text(card.CreatedLabel)
	m.raw(`</p><p class="offer-card__edits"><span>`)
	m.text(card.EditsLabel)
	m.raw(`</span> <span`)
	if card.High {
		m.raw(` class="text--danger"`)
	}
	m.raw(`>`)
	m.text(card.LeftLabel)
	m.raw(`</span></p>`)
	meter(m, card.Percent, card.High)
	m.raw(`<div class="offer-card__actions"><a class="button"`)
	m.attr("href", routepath.Edit(card.ID))
	m.raw(`>`)
	m.text(T(loc, "web.dashboard.edit"))
	m.raw(`</a><form method="post"`)
	m.attr("action", routepath.DashboardOfferDelete(card.ID))
	m.attr("data-confirm", T(loc, "web.dashboard.delete_confirm"))
	m.raw(`><button type="submit" class="button button--danger">`)
	m.text(T(loc, "web.dashboard.delete"))
	m.raw(`</button></form></div></li>`)
}

func meter(m *markup, percent int, high bool) {
	if percent > 100 {
		percent = 100
	}
	class := "meter"
	if high {
		class += " meter--high"
	}
	m.raw(`<progress max="100"`)
	m.attr("class", class)
	m.raw(` value="`)
	m.int(percent)
	m.raw(`"></progress>`)
}
