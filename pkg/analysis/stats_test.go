package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"Zero", 0, 0.5},
		{"One sigma", 1, 0.8413},
		{"Negative one sigma", -1, 0.1587},
		{"Two sigma", 2, 0.9772},
		{"Far right tail", 6, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalCDF(tt.x), 0.0001)
		})
	}
}

func TestPValue(t *testing.T) {
	t.Run("Success - Symmetric in sign", func(t *testing.T) {
		assert.InDelta(t, PValue(1.5), PValue(-1.5), 1e-12)
	})

	t.Run("Success - Zero z gives p of one half", func(t *testing.T) {
		assert.InDelta(t, 0.5, PValue(0), 1e-12)
	})

	t.Run("Success - Known quantile", func(t *testing.T) {
		assert.InDelta(t, 0.025, PValue(1.96), 0.0002)
	})
}

func TestTwoProportionZTest(t *testing.T) {
	t.Run("Success - Clear lift is significant", func(t *testing.T) {
		// 10% vs 20% conversion on 100 impressions each
		res := TwoProportionZTest(10, 100, 20, 100)

		assert.InDelta(t, 1.980, res.ZScore, 0.001)
		assert.InDelta(t, 0.0238, res.PValue, 0.001)
		assert.True(t, res.Significant)
		assert.Greater(t, res.ConfidenceLevel, 95.0)
	})

	t.Run("Success - Identical rates are not significant", func(t *testing.T) {
		res := TwoProportionZTest(10, 100, 10, 100)

		assert.InDelta(t, 0, res.ZScore, 1e-9)
		assert.InDelta(t, 0.5, res.PValue, 1e-9)
		assert.False(t, res.Significant)
	})

	t.Run("Success - No conversions on either arm", func(t *testing.T) {
		res := TwoProportionZTest(0, 100, 0, 100)

		assert.Equal(t, 0.0, res.ZScore)
		assert.Equal(t, 1.0, res.PValue)
		assert.False(t, res.Significant)
	})

	t.Run("Success - No data at all", func(t *testing.T) {
		res := TwoProportionZTest(0, 0, 0, 0)

		assert.Equal(t, 0.0, res.ZScore)
		assert.Equal(t, 1.0, res.PValue)
		assert.False(t, res.Significant)
	})

	t.Run("Success - Negative lift produces negative z", func(t *testing.T) {
		res := TwoProportionZTest(20, 100, 10, 100)

		assert.Less(t, res.ZScore, 0.0)
	})
}

func TestRequiredSampleSize(t *testing.T) {
	t.Run("Success - Known baseline", func(t *testing.T) {
		// 10% baseline, 10% relative lift: p2=0.11, diff=0.01,
		// pBar=0.105, se=sqrt(2*0.105*0.895)=0.4335,
		// n=(2.8/0.01)^2*0.4335
		n := RequiredSampleSize(0.10, 0.10, DefaultSignificanceLevel, DefaultPower)
		expected := int(math.Ceil(math.Pow(2.8/0.01, 2) * math.Sqrt(2*0.105*0.895)))
		assert.Equal(t, expected, n)
	})

	t.Run("Success - Monotonically decreasing in effect size", func(t *testing.T) {
		prev := math.MaxInt
		for _, mde := range []float64{0.05, 0.1, 0.2, 0.5} {
			n := RequiredSampleSize(0.10, mde, DefaultSignificanceLevel, DefaultPower)
			assert.Less(t, n, prev, "mde=%v", mde)
			prev = n
		}
	})

	t.Run("Success - Degenerate inputs yield zero", func(t *testing.T) {
		assert.Equal(t, 0, RequiredSampleSize(0, 0.1, DefaultSignificanceLevel, DefaultPower))
		assert.Equal(t, 0, RequiredSampleSize(0.1, 0, DefaultSignificanceLevel, DefaultPower))
	})
}
