package dashboard

import (
	"strconv"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/plan"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
	"github.com/louisbranch/closealead/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/closealead/internal/services/web/templates"
)

const createdDateLayout = "Jan 2, 2006"

func buildView(loc webtemplates.Localizer, session websession.Session, snap snapshot) webtemplates.DashboardView {
	planName := string(session.Plan)
	view := webtemplates.DashboardView{
		Greeting:   webtemplates.T(loc, "web.dashboard.greeting", session.Name),
		CanCreate:  plan.CanCreate(planName, snap.OfferCount),
		LoadFailed: snap.Failed,
		Offers:     make([]webtemplates.OfferCard, 0, len(snap.Offers)),
	}

	usage := make([]plan.EditUsage, 0, len(snap.Offers))
	for _, o := range snap.Offers {
		usage = append(usage, plan.EditUsage{EditCount: o.EditCount, EditLimit: o.EditLimit})
		view.Offers = append(view.Offers, offerCard(loc, planName, o))
	}

	view.Stats = []webtemplates.StatCard{
		offersStat(loc, planName, snap.OfferCount),
		editsStat(loc, planName, usage, snap.Failed),
		planStat(loc, session.Plan),
	}
	return view
}

func offersStat(loc webtemplates.Localizer, planName string, count int) webtemplates.StatCard {
	stat := webtemplates.StatCard{
		Label:   webtemplates.T(loc, "web.dashboard.stat.offers"),
		Value:   strconv.Itoa(count),
		Percent: -1,
	}
	if percent, ok := plan.Utilization(planName, count); ok {
		stat.Detail = webtemplates.T(loc, "web.dashboard.stat.of_limit", plan.Limits(planName).MaxOffers)
		stat.Percent = int(percent)
		stat.High = plan.High(percent)
	} else {
		stat.Detail = webtemplates.T(loc, "web.dashboard.stat.unlimited_offers")
	}
	return stat
}

func editsStat(loc webtemplates.Localizer, planName string, usage []plan.EditUsage, failed bool) webtemplates.StatCard {
	stat := webtemplates.StatCard{
		Label:   webtemplates.T(loc, "web.dashboard.stat.edits_remaining"),
		Percent: -1,
	}
	switch remaining := plan.TotalRemainingEdits(planName, usage); {
	case failed:
		stat.Value = "-"
	case remaining == plan.Unlimited:
		stat.Value = webtemplates.T(loc, "web.dashboard.unlimited")
	default:
		stat.Value = strconv.Itoa(remaining)
	}
	return stat
}

func planStat(loc webtemplates.Localizer, id plan.ID) webtemplates.StatCard {
	stat := webtemplates.StatCard{
		Label:   webtemplates.T(loc, "web.dashboard.stat.plan"),
		Value:   webtemplates.T(loc, id.NameKey()),
		Percent: -1,
	}
	if id != plan.Enterprise {
		stat.Link = routepath.Pricing
		stat.LinkKey = "web.dashboard.upgrade"
	}
	return stat
}

func offerCard(loc webtemplates.Localizer, planName string, o offer.Offer) webtemplates.OfferCard {
	title := o.Title
	if title == "" {
		title = webtemplates.T(loc, "web.dashboard.untitled")
	}
	card := webtemplates.OfferCard{
		ID:           o.ID,
		Title:        title,
		Subtitle:     o.Subtitle,
		Template:     string(o.Template),
		TemplateName: webtemplates.T(loc, "template."+string(o.Template)+".name"),
	}
	if !o.CreatedAt.IsZero() {
		card.CreatedLabel = webtemplates.T(loc, "web.dashboard.created", o.CreatedAt.Format(createdDateLayout))
	}

	limit := plan.EffectiveEditLimit(planName, plan.EditUsage{EditCount: o.EditCount, EditLimit: o.EditLimit})
	if limit == plan.Unlimited {
		card.EditsLabel = webtemplates.T(loc, "web.dashboard.edits_unlimited", o.EditCount)
		card.LeftLabel = webtemplates.T(loc, "web.dashboard.unlimited")
		return card
	}
	percent := plan.EditPercent(limit, o.EditCount)
	card.EditsLabel = webtemplates.T(loc, "web.dashboard.edits_used", o.EditCount, limit)
	card.LeftLabel = webtemplates.T(loc, "web.dashboard.edits_left", plan.RemainingEdits(limit, o.EditCount))
	card.Percent = int(percent)
	card.High = plan.High(percent)
	return card
}
