package goalplan

// AllocationUsage summarizes how much of one holding's value is committed to
// goals and how much is still free.
type AllocationUsage struct {
	Total     float64
	Allocated float64
	Available float64 // floored at 0, even when over-allocated
}

// AssetAllocations reports the allocation usage of every holding in the
// document. A nil document yields an empty map.
func AssetAllocations(doc *PlanDocument) map[string]AllocationUsage {
	usage := make(map[string]AllocationUsage)
	if doc == nil {
		return usage
	}
	for _, h := range doc.Assets.Items {
		usage[h.ID] = AllocationUsage{Total: h.Value.InexactFloat64()}
	}
	for _, g := range doc.Goals {
		for _, la := range g.LinkedAssets {
			u, ok := usage[la.HoldingID]
			if !ok {
				continue // dangling link, ignore
			}
			u.Allocated += la.Amount.InexactFloat64()
			usage[la.HoldingID] = u
		}
	}
	for id, u := range usage {
		u.Available = u.Total - u.Allocated
		if u.Available < 0 {
			u.Available = 0
		}
		usage[id] = u
	}
	return usage
}

// LinkValidation is the outcome of checking a manual link amount.
type LinkValidation struct {
	Valid     bool
	Available float64
	Err       string
}

// ValidateLinkAmount checks whether linking the given amount of a holding is
// possible without over-allocating it. Links held by excludeGoalID are not
// counted, so an existing link can be re-validated while being edited.
func ValidateLinkAmount(doc *PlanDocument, holdingID string, amount float64, excludeGoalID string) LinkValidation {
	if doc == nil {
		return LinkValidation{Err: "no plan document"}
	}
	h := doc.Holding(holdingID)
	if h == nil {
		return LinkValidation{Err: "unknown holding"}
	}
	allocated := 0.0
	for _, g := range doc.Goals {
		if g.ID == excludeGoalID {
			continue
		}
		for _, la := range g.LinkedAssets {
			if la.HoldingID == holdingID {
				allocated += la.Amount.InexactFloat64()
			}
		}
	}
	available := h.Value.InexactFloat64() - allocated
	if available < 0 {
		available = 0
	}
	v := LinkValidation{Available: available}
	switch {
	case amount <= 0:
		v.Err = "amount must be positive"
	case amount > available+allocEpsilon:
		v.Err = "amount exceeds available value"
	default:
		v.Valid = true
	}
	return v
}

// OverAllocation reports whether the links on a holding exceed its value.
type OverAllocation struct {
	Over      bool
	Total     float64
	Allocated float64
	Excess    float64
}

// CheckAssetOverAllocation inspects one holding for over-allocation. The
// engine never produces an over-allocated state itself, but external edits to
// the stored document can, so the condition stays independently checkable.
func CheckAssetOverAllocation(doc *PlanDocument, holdingID string) OverAllocation {
	if doc == nil {
		return OverAllocation{}
	}
	h := doc.Holding(holdingID)
	if h == nil {
		return OverAllocation{}
	}
	o := OverAllocation{Total: h.Value.InexactFloat64()}
	for _, g := range doc.Goals {
		for _, la := range g.LinkedAssets {
			if la.HoldingID == holdingID {
				o.Allocated += la.Amount.InexactFloat64()
			}
		}
	}
	if o.Allocated > o.Total+allocEpsilon {
		o.Over = true
		o.Excess = o.Allocated - o.Total
	}
	return o
}
