// Package analysis computes statistical significance, sample-size, and
// time-series reports for experiments.
package analysis

import "math"

// Defaults used by time-to-completion estimates
const (
	DefaultSignificanceLevel   = 0.05
	DefaultPower               = 0.8
	DefaultMinDetectableEffect = 0.1 // 10% relative lift
)

// ZTestResult holds the outcome of a two-proportion z-test
type ZTestResult struct {
	ZScore          float64 `json:"z_score"`
	PValue          float64 `json:"p_value"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Significant     bool    `json:"significant"`
}

// NormalCDF returns the standard normal cumulative distribution at x
func NormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// PValue converts a z-score into the one-sided tail probability beyond |z|
func PValue(z float64) float64 {
	return 1 - NormalCDF(math.Abs(z))
}

// TwoProportionZTest compares a variant's conversion rate against control
// using a pooled two-proportion z-test. Significance is declared at 95%
// confidence. A zero standard error (no data, or both arms at 0% or 100%)
// yields z=0, p=1, not significant.
func TwoProportionZTest(controlConversions, controlImpressions, variantConversions, variantImpressions int) ZTestResult {
	p1 := rate(controlConversions, controlImpressions)
	p2 := rate(variantConversions, variantImpressions)

	n1 := float64(controlImpressions)
	n2 := float64(variantImpressions)
	if n1 == 0 || n2 == 0 {
		return ZTestResult{PValue: 1}
	}

	pooled := (float64(controlConversions) + float64(variantConversions)) / (n1 + n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))
	if se == 0 {
		return ZTestResult{PValue: 1}
	}

	z := (p2 - p1) / se
	p := PValue(z)
	confidence := (1 - p) * 100

	return ZTestResult{
		ZScore:          z,
		PValue:          p,
		ConfidenceLevel: confidence,
		Significant:     confidence >= 95,
	}
}

// RequiredSampleSize returns the per-variant sample size needed to detect a
// relative lift of minDetectableEffect over the baseline conversion rate.
// significanceLevel and power are accepted for interface completeness; the
// calculation uses the standard zα=1.96 (α=0.05) and zβ=0.84 (80% power)
// quantiles.
func RequiredSampleSize(baselineRate, minDetectableEffect, significanceLevel, power float64) int {
	const (
		zAlpha = 1.96
		zBeta  = 0.84
	)

	p1 := baselineRate
	p2 := baselineRate * (1 + minDetectableEffect)
	if p2 > 1 {
		p2 = 1
	}
	diff := p2 - p1
	if diff == 0 {
		return 0
	}

	pBar := (p1 + p2) / 2
	se := math.Sqrt(2 * pBar * (1 - pBar))
	n := math.Pow((zAlpha+zBeta)/diff, 2) * se

	return int(math.Ceil(n))
}

func rate(conversions, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(conversions) / float64(impressions)
}
