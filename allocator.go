package goalplan

import (
	"sort"

	"github.com/nivesh/goalplan/date"
	"github.com/shopspring/decimal"
)

// allocEpsilon is the money-unit threshold under which a goal counts as
// satisfied and a holding as exhausted.
const allocEpsilon = 0.01

// AutoAssignAssets rewrites every goal's linked-assets list from scratch,
// distributing eligible holdings to goals under the horizon rules:
//
//  1. Short-only holdings fill short-horizon goals.
//  2. Long-only holdings fill long-horizon goals.
//  3. Both-horizon holdings fill short goals, any leftover flowing to long
//     goals.
//
// Exclusive-eligibility holdings are always fully exhausted before any
// shared-eligibility holding is touched, so a single large arbitrage fund
// cannot crowd smaller dedicated holdings out of their only eligible bucket.
// Within a pass, goals are visited nearest target date first (ties broken by
// document order) and filled from the largest remaining holding down, which
// keeps the number of distinct holdings linked to any one goal minimal.
//
// The run is a pure recomputation: prior links are discarded, not read, so
// re-running on unchanged input produces identical output. A nil document is
// returned as-is.
func AutoAssignAssets(doc *PlanDocument, on date.Date) *PlanDocument {
	if doc == nil {
		return doc
	}

	slots := make([]*goalSlot, 0, len(doc.Goals))
	var shortGoals, longGoals []*goalSlot
	for i := range doc.Goals {
		g := &doc.Goals[i]
		years := date.YearsBetween(on, g.TargetDate)
		capacity := InflationAdjusted(g.TargetAmount.InexactFloat64(), g.InflationRate, years)
		slot := &goalSlot{goal: g}
		slots = append(slots, slot)
		// goals already past their date, or with nothing to fund, get no links
		if years <= 0 || capacity <= 0 {
			continue
		}
		slot.capacity = capacity
		if HorizonOf(years) == Short {
			shortGoals = append(shortGoals, slot)
		} else {
			longGoals = append(longGoals, slot)
		}
	}
	// nearest target date first; SliceStable keeps document order on ties
	byDate := func(goals []*goalSlot) {
		sort.SliceStable(goals, func(i, j int) bool {
			return goals[i].goal.TargetDate.Before(goals[j].goal.TargetDate)
		})
	}
	byDate(shortGoals)
	byDate(longGoals)

	var shortOnly, longOnly, both []*holdingSlot
	for i := range doc.Assets.Items {
		h := &doc.Assets.Items[i]
		value := h.Value.InexactFloat64()
		if value <= 0 {
			continue
		}
		slot := &holdingSlot{id: h.ID, remaining: value}
		switch h.Category.Eligibility() {
		case ShortOnly:
			shortOnly = append(shortOnly, slot)
		case LongOnly:
			longOnly = append(longOnly, slot)
		case BothHorizons:
			both = append(both, slot)
		}
	}

	distribute(shortGoals, shortOnly)
	distribute(longGoals, longOnly)
	distribute(shortGoals, both)
	distribute(longGoals, both)

	// replace every linked-assets list wholesale, empty for unfunded goals
	for _, slot := range slots {
		slot.goal.LinkedAssets = slot.links()
	}
	return doc
}

// goalSlot tracks one goal's remaining capacity and the links it was given.
type goalSlot struct {
	goal     *Goal
	capacity float64
	given    []LinkedAsset
}

func (s *goalSlot) links() []LinkedAsset {
	if s.given == nil {
		return []LinkedAsset{}
	}
	return s.given
}

// holdingSlot tracks one holding's unconsumed value across passes.
type holdingSlot struct {
	id        string
	remaining float64
}

// distribute greedily fills each goal, nearest first, from the largest
// remaining holding in the pool. Unconsumed value stays in the pool for later
// passes.
func distribute(goals []*goalSlot, pool []*holdingSlot) {
	for _, g := range goals {
		for g.capacity > allocEpsilon {
			h := largestRemaining(pool)
			if h == nil {
				return // pool exhausted, later goals get nothing from it
			}
			take := g.capacity
			if h.remaining < take {
				take = h.remaining
			}
			// Link amounts are stored rounded to the cent; bookkeeping uses
			// the rounded value so the links on a holding always sum to what
			// was actually taken from it.
			amount := decimal.NewFromFloat(take).Round(2)
			taken := amount.InexactFloat64()
			h.remaining -= taken
			g.capacity -= taken
			g.given = append(g.given, LinkedAsset{HoldingID: h.id, Amount: amount})
		}
	}
}

// largestRemaining returns the pool's largest unexhausted holding, ties going
// to the earliest in document order, or nil when the pool is spent.
func largestRemaining(pool []*holdingSlot) *holdingSlot {
	var best *holdingSlot
	for _, h := range pool {
		if h.remaining <= allocEpsilon {
			continue
		}
		if best == nil || h.remaining > best.remaining {
			best = h
		}
	}
	return best
}
