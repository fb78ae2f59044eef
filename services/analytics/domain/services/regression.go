package services

import "errors"

// ErrDegenerateFit is returned when the inputs cannot determine a line,
// either because there are fewer than two points or every x is identical.
var ErrDegenerateFit = errors.New("regression: need at least two distinct x values")

// LinearModel is an ordinary least squares fit y = Intercept + Slope*x.
type LinearModel struct {
	Slope     float64
	Intercept float64
}

// FitLinear fits a least squares line through the given points.
// xs and ys must have equal length.
func FitLinear(xs, ys []float64) (LinearModel, error) {
	if len(xs) != len(ys) {
		return LinearModel{}, errors.New("regression: mismatched input lengths")
	}
	n := float64(len(xs))
	if len(xs) < 2 {
		return LinearModel{}, ErrDegenerateFit
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var ssXX, ssXY float64
	for i := range xs {
		dx := xs[i] - meanX
		ssXX += dx * dx
		ssXY += dx * (ys[i] - meanY)
	}
	if ssXX == 0 {
		return LinearModel{}, ErrDegenerateFit
	}

	slope := ssXY / ssXX
	return LinearModel{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// Predict evaluates the fitted line at x.
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// RSquared reports the coefficient of determination of the model over the
// given points. When the observations have zero variance a perfect constant
// fit scores 1 and anything else scores 0.
func RSquared(m LinearModel, xs, ys []float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}
	var sumY float64
	for _, y := range ys {
		sumY += y
	}
	meanY := sumY / float64(len(ys))

	var ssRes, ssTot float64
	for i := range xs {
		resid := ys[i] - m.Predict(xs[i])
		ssRes += resid * resid
		dy := ys[i] - meanY
		ssTot += dy * dy
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
