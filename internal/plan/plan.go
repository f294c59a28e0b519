// Package plan holds the subscription tiers and the advisory quota math shown
// on the dashboard. Authoritative enforcement belongs to the offers backend.
package plan

import (
	"strings"
)

// Unlimited marks a quota without a ceiling.
const Unlimited = -1

// ID is a subscription tier identifier.
type ID string

const (
	Free         ID = "free"
	Professional ID = "professional"
	Enterprise   ID = "enterprise"
)

// agencyAlias is the backend name of the enterprise tier.
const agencyAlias = "agency"

// Parse resolves a plan name. Unknown names resolve to Free with ok=false.
func Parse(value string) (ID, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(Free):
		return Free, true
	case string(Professional):
		return Professional, true
	case string(Enterprise), agencyAlias:
		return Enterprise, true
	default:
		return Free, false
	}
}

// BackendName returns the plan name the offers backend accepts on signup.
func (id ID) BackendName() string {
	if id == Enterprise {
		return agencyAlias
	}
	return string(id)
}

// NameKey returns the localization key of the plan display name.
func (id ID) NameKey() string {
	return "plan." + string(id) + ".name"
}

// Quota bounds offers per account and edits per offer.
type Quota struct {
	MaxOffers     int
	EditsPerOffer int
}

var limits = map[ID]Quota{
	Free:         {MaxOffers: 1, EditsPerOffer: 5},
	Professional: {MaxOffers: 4, EditsPerOffer: 15},
	Enterprise:   {MaxOffers: Unlimited, EditsPerOffer: Unlimited},
}

// Limits returns the quota for a plan name, defaulting to Free.
func Limits(value string) Quota {
	id, _ := Parse(value)
	return limits[id]
}

// CanCreate reports whether another offer fits under the plan ceiling.
func CanCreate(value string, offerCount int) bool {
	q := Limits(value)
	return q.MaxOffers == Unlimited || offerCount < q.MaxOffers
}

// Utilization returns offer usage as a percentage of the plan ceiling.
// ok is false for unlimited plans.
func Utilization(value string, offerCount int) (percent float64, ok bool) {
	q := Limits(value)
	if q.MaxOffers == Unlimited || q.MaxOffers <= 0 {
		return 0, false
	}
	if offerCount < 0 {
		offerCount = 0
	}
	return float64(offerCount) / float64(q.MaxOffers) * 100, true
}

// HighUtilizationPercent is the threshold above which usage is highlighted.
const HighUtilizationPercent = 80

// High reports whether percent exceeds the highlight threshold.
func High(percent float64) bool {
	return percent > HighUtilizationPercent
}

// RemainingEdits returns max(0, limit-used), or Unlimited for an unlimited limit.
func RemainingEdits(limit, used int) int {
	if limit == Unlimited {
		return Unlimited
	}
	if used >= limit {
		return 0
	}
	if used < 0 {
		used = 0
	}
	return limit - used
}

// EditUsage is the per-offer edit counter pair.
type EditUsage struct {
	EditCount int
	EditLimit int
}

// EffectiveEditLimit returns the offer's own limit when positive, otherwise
// the plan default.
func EffectiveEditLimit(value string, usage EditUsage) int {
	if usage.EditLimit > 0 {
		return usage.EditLimit
	}
	return Limits(value).EditsPerOffer
}

// TotalRemainingEdits sums remaining edits across offers. The result is
// Unlimited if any offer is unlimited and is never negative otherwise.
func TotalRemainingEdits(value string, offers []EditUsage) int {
	total := 0
	for _, usage := range offers {
		remaining := RemainingEdits(EffectiveEditLimit(value, usage), usage.EditCount)
		if remaining == Unlimited {
			return Unlimited
		}
		total += remaining
	}
	return total
}

// EditPercent returns used/limit as a percentage capped at 100, or zero for
// unlimited limits.
func EditPercent(limit, used int) float64 {
	if limit <= 0 {
		return 0
	}
	if used >= limit {
		return 100
	}
	if used < 0 {
		return 0
	}
	return float64(used) / float64(limit) * 100
}
