package services

import "math"

// CostStatus distinguishes a genuinely computed cost (including £0.00)
// from a cost that could not be determined from the available data.
type CostStatus int

const (
	CostComputed CostStatus = iota
	CostUnknown
)

// UnknownReason explains why a cost could not be computed.
type UnknownReason string

const (
	ReasonNoPackPrice  UnknownReason = "no pack price set"
	ReasonBadPackData  UnknownReason = "invalid pack data"
	ReasonBadUnit      UnknownReason = "unrecognized unit"
	ReasonUnitMismatch UnknownReason = "mass/volume mismatch without density"
	ReasonBadResult    UnknownReason = "calculation produced an invalid value"
)

// CostResult is the outcome of costing one ingredient usage.
type CostResult struct {
	Status CostStatus
	Amount float64
	Reason UnknownReason // set only when Status == CostUnknown
}

// Computed reports whether the result carries a real cost figure.
func (r CostResult) Computed() bool {
	return r.Status == CostComputed
}

func computed(amount float64) CostResult {
	return CostResult{Status: CostComputed, Amount: amount}
}

func unknown(reason UnknownReason) CostResult {
	return CostResult{Status: CostUnknown, Reason: reason}
}

// BatchTier is an alternate bulk-purchase price point for an ingredient:
// buying PackQuantity (in the pack's base unit) costs PackPrice.
type BatchTier struct {
	PackQuantity float64 `json:"pack_quantity"`
	PackPrice    float64 `json:"pack_price"`
}

// PackPricing describes how an ingredient is purchased. PackQuantity is
// already expressed in PackUnit, which must be a base unit (g or ml).
type PackPricing struct {
	PackPrice    float64
	PackQuantity float64
	PackUnit     BaseUnit
	BatchTiers   []BatchTier
}

// IngredientCost computes the monetary cost of using quantity×unit of an
// ingredient purchased per pack. density (g/ml) is used only when the
// recipe unit and the pack unit normalize to different base units; pass 0
// when no density is known.
//
// A zero or negative quantity is a confirmed zero cost, not an error.
// Every data-quality gap (missing price, bad unit, mass/volume mismatch
// without density) yields an Unknown result so callers can render
// "no pricing data" rather than a misleading zero.
func IngredientCost(quantity float64, unit string, pack PackPricing, density float64) CostResult {
	if quantity <= 0 {
		return computed(0)
	}

	usage, ok := ToBase(quantity, unit)
	if !ok {
		return unknown(ReasonBadUnit)
	}

	if pack.PackUnit != BaseGrams && pack.PackUnit != BaseMillilitres {
		return unknown(ReasonBadPackData)
	}
	if pack.PackPrice <= 0 {
		return unknown(ReasonNoPackPrice)
	}
	if pack.PackQuantity <= 0 {
		return unknown(ReasonBadPackData)
	}

	packQty := pack.PackQuantity
	switch {
	case usage.Unit == pack.PackUnit:
		// Same family: exact conversion, no density involved.
	case usage.Unit == BaseMillilitres && pack.PackUnit == BaseGrams:
		if density <= 0 {
			return unknown(ReasonUnitMismatch)
		}
		packQty = pack.PackQuantity / density // pack volume in ml
	case usage.Unit == BaseGrams && pack.PackUnit == BaseMillilitres:
		if density <= 0 {
			return unknown(ReasonUnitMismatch)
		}
		packQty = pack.PackQuantity * density // pack weight in g
	}

	price, qty := selectPackOption(pack.PackPrice, packQty, pack.BatchTiers, usage.Amount, packQty/pack.PackQuantity)
	cost := usage.Amount * (price / qty)

	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return unknown(ReasonBadResult)
	}
	return computed(cost)
}

// selectPackOption picks the pack price point to cost against. Candidates
// are the plain pack plus every valid batch tier, with tier quantities
// scaled by the same base-unit conversion applied to the pack. Policy:
// the smallest pack that covers the required amount wins; when nothing
// covers it, the largest pack wins (bulk rate applies to oversize usage).
func selectPackOption(packPrice, packQty float64, tiers []BatchTier, required, scale float64) (price, qty float64) {
	type option struct{ price, qty float64 }

	options := []option{{packPrice, packQty}}
	for _, t := range tiers {
		if t.PackPrice <= 0 || t.PackQuantity <= 0 {
			continue
		}
		options = append(options, option{t.PackPrice, t.PackQuantity * scale})
	}

	best := options[0]
	covered := best.qty >= required
	for _, o := range options[1:] {
		switch {
		case o.qty >= required && !covered:
			best, covered = o, true
		case o.qty >= required && o.qty < best.qty:
			best = o
		case !covered && o.qty > best.qty:
			best = o
		}
	}
	return best.price, best.qty
}
