// Package finmath provides the shared numeric primitives for the underwriting
// engine: rounding, discounting, the IRR solver, and simple series statistics.
// Every function is a pure transformation with guard-return-zero semantics;
// nothing in this package raises an error.
package finmath

import (
	"math"
)

// =============================================================================
// ROUNDING
// =============================================================================

// RoundToDecimals rounds half up via power-of-ten scaling.
// RoundToDecimals(2.345, 2) == 2.35
func RoundToDecimals(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Floor(value*scale+0.5) / scale
}

// Round2 is the engine's default currency precision.
func Round2(value float64) float64 {
	return RoundToDecimals(value, 2)
}

// =============================================================================
// DISCOUNTING
// =============================================================================

// NPV computes Net Present Value: Σ cf_t / (1+rate)^t, with t starting at 0
// for the first element (the initial outflow is not discounted).
func NPV(cashFlows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1.0+rate, float64(t))
	}
	return npv
}

// npvDerivative is d(NPV)/d(rate): Σ_{t>=1} -t * cf_t / (1+rate)^(t+1)
func npvDerivative(cashFlows []float64, rate float64) float64 {
	var d float64
	for t := 1; t < len(cashFlows); t++ {
		d += -float64(t) * cashFlows[t] / math.Pow(1.0+rate, float64(t+1))
	}
	return d
}

// =============================================================================
// IRR SOLVER (Newton-Raphson)
// =============================================================================

const (
	irrInitialGuess = 0.10
	irrMaxIter      = 100
	irrTolerance    = 0.0001
)

// IRR solves for the discount rate at which NPV is zero.
//
// Newton-Raphson from a 10% guess, capped at 100 iterations with a 1e-4
// tolerance. The solver never errors: a vanishing derivative or an exhausted
// iteration budget returns the last guess, so callers always get *a* number
// and must treat unconverged results as approximate. Result is rounded to 4
// decimals. Series with fewer than two entries return 0.
func IRR(cashFlows []float64) float64 {
	irr, _ := IRRWithDiagnostics(cashFlows)
	return irr
}

// IRRWithDiagnostics is IRR plus a flag reporting whether the solver actually
// met its tolerance within the iteration budget.
func IRRWithDiagnostics(cashFlows []float64) (float64, bool) {
	if len(cashFlows) < 2 {
		return 0, false
	}

	guess := irrInitialGuess
	for i := 0; i < irrMaxIter; i++ {
		npv := NPV(cashFlows, guess)
		if math.Abs(npv) < irrTolerance {
			return RoundToDecimals(guess, 4), true
		}

		derivative := npvDerivative(cashFlows, guess)
		if math.Abs(derivative) < irrTolerance {
			// Flat slope: stepping further would divide by ~zero.
			break
		}
		guess = guess - npv/derivative
	}

	return RoundToDecimals(guess, 4), false
}

// =============================================================================
// SERIES STATISTICS
// =============================================================================

// Average returns the arithmetic mean, 0 for an empty series.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Min returns the smallest value, 0 for an empty series.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// SafeDiv divides with a zero-denominator guard.
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
