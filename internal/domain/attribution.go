package domain

// AttributionRow is one sector's Brinson-Fachler decomposition. The three
// effects sum to the sector's total active return contribution.
type AttributionRow struct {
	Sector      string
	Allocation  float64
	Selection   float64
	Interaction float64
}

func (r AttributionRow) EffectValue(e Effect) float64 {
	switch e {
	case EffectAllocation:
		return r.Allocation
	case EffectSelection:
		return r.Selection
	case EffectInteraction:
		return r.Interaction
	default:
		return r.Allocation + r.Selection + r.Interaction
	}
}
