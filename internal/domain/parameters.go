package domain

// ParameterResult is one externally-run optimizer evaluation. The
// (Gamma, Limit, Lambda) tuple is unique across the grid.
type ParameterResult struct {
	Gamma        float64
	Limit        float64
	Lambda       float64
	Sharpe       float64
	ActiveReturn float64
	ActiveRisk   float64
}
