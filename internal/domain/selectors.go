package domain

import "fmt"

// InvalidSelectorError means a caller-supplied selector string is not in the
// allowed set for that view. This is a configuration error, not a data error.
type InvalidSelectorError struct {
	Kind  string
	Value string
}

func (e InvalidSelectorError) Error() string {
	return fmt.Sprintf("unknown %s selector %q", e.Kind, e.Value)
}

// Metric selects which output of the parameter search to display.
type Metric string

const (
	MetricSharpe       Metric = "Sharpe"
	MetricActiveReturn Metric = "Active_Return"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricSharpe, MetricActiveReturn:
		return Metric(s), nil
	}
	return "", InvalidSelectorError{Kind: "metric", Value: s}
}

// Effect selects one attribution component. Total is the sum of the three.
type Effect string

const (
	EffectTotal       Effect = "Total"
	EffectAllocation  Effect = "Allocation"
	EffectSelection   Effect = "Selection"
	EffectInteraction Effect = "Interaction"
)

func ParseEffect(s string) (Effect, error) {
	switch Effect(s) {
	case EffectTotal, EffectAllocation, EffectSelection, EffectInteraction:
		return Effect(s), nil
	}
	return "", InvalidSelectorError{Kind: "effect", Value: s}
}

// PivotAxis names a parameter-search input column usable as a pivot axis.
type PivotAxis string

const (
	AxisGamma  PivotAxis = "Gamma"
	AxisLimit  PivotAxis = "Limit"
	AxisLambda PivotAxis = "Lambda"
)

func ParsePivotAxis(s string) (PivotAxis, error) {
	switch PivotAxis(s) {
	case AxisGamma, AxisLimit, AxisLambda:
		return PivotAxis(s), nil
	}
	return "", InvalidSelectorError{Kind: "pivot axis", Value: s}
}

func (a PivotAxis) Of(r ParameterResult) float64 {
	switch a {
	case AxisGamma:
		return r.Gamma
	case AxisLimit:
		return r.Limit
	default:
		return r.Lambda
	}
}

func (m Metric) Of(r ParameterResult) float64 {
	if m == MetricSharpe {
		return r.Sharpe
	}
	return r.ActiveReturn
}

// PivotValue names a parameter-search output column usable as a pivot value.
// Superset of Metric: the frontier view also pivots on risk.
type PivotValue string

const (
	ValueSharpe       PivotValue = "Sharpe"
	ValueActiveReturn PivotValue = "Active_Return"
	ValueActiveRisk   PivotValue = "Active_Risk"
)

func ParsePivotValue(s string) (PivotValue, error) {
	switch PivotValue(s) {
	case ValueSharpe, ValueActiveReturn, ValueActiveRisk:
		return PivotValue(s), nil
	}
	return "", InvalidSelectorError{Kind: "pivot value", Value: s}
}

func (v PivotValue) Of(r ParameterResult) float64 {
	switch v {
	case ValueSharpe:
		return r.Sharpe
	case ValueActiveReturn:
		return r.ActiveReturn
	default:
		return r.ActiveRisk
	}
}

func (m Metric) PivotValue() PivotValue {
	if m == MetricSharpe {
		return ValueSharpe
	}
	return ValueActiveReturn
}
