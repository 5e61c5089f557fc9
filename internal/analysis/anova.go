package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInsufficientData: a group is empty or there are no within-group degrees of freedom.
	ErrInsufficientData = errors.New("anova: insufficient observations")
	// ErrDegenerateData: every observation is identical, so F is undefined.
	ErrDegenerateData = errors.New("anova: zero variance within and between groups")
)

// ANOVA is the result of a one-way analysis of variance.
type ANOVA struct {
	F         float64
	DFBetween float64
	DFWithin  float64
	P         float64
}

// OneWayANOVA tests whether the group means differ. Every group needs at least
// one observation and the total must exceed the number of groups.
func OneWayANOVA(groups ...[]float64) (ANOVA, error) {
	k := len(groups)
	if k < 2 {
		return ANOVA{}, ErrInsufficientData
	}
	n := 0
	var total float64
	means := make([]float64, k)
	for i, g := range groups {
		if len(g) == 0 {
			return ANOVA{}, ErrInsufficientData
		}
		n += len(g)
		means[i] = stat.Mean(g, nil)
		total += means[i] * float64(len(g))
	}
	if n <= k {
		return ANOVA{}, ErrInsufficientData
	}
	grand := total / float64(n)
	var ssb, ssw float64
	for i, g := range groups {
		d := means[i] - grand
		ssb += float64(len(g)) * d * d
		for _, x := range g {
			e := x - means[i]
			ssw += e * e
		}
	}
	res := ANOVA{DFBetween: float64(k - 1), DFWithin: float64(n - k)}
	msb := ssb / res.DFBetween
	msw := ssw / res.DFWithin
	switch {
	case msw == 0 && msb == 0:
		return ANOVA{}, ErrDegenerateData
	case msw == 0:
		res.F = math.Inf(1)
		res.P = 0
		return res, nil
	}
	res.F = msb / msw
	res.P = distuv.F{D1: res.DFBetween, D2: res.DFWithin}.Survival(res.F)
	return res, nil
}

// SignificanceMarker maps a p-value onto the ***/**/*/ns ladder. NaN is "ns".
func SignificanceMarker(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}
