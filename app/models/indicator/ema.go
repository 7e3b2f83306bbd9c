package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// Ema returns the exponential moving average of values for span.
// The first output equals the first input and the smoothing factor is 2/(span+1).
func Ema(values []float64, span int) []float64 {
	ema := make([]float64, len(values))
	if len(values) == 0 {
		return ema
	}

	alpha := 2.0 / float64(span+1)
	ema[0] = values[0]
	for t := 1; t < len(values); t++ {
		// same as values[t]*alpha + ema[t-1]*(1-alpha), but exact on flat input
		ema[t] = ema[t-1] + alpha*(values[t]-ema[t-1])
	}
	return ema
}

// RollingMean returns the simple moving average over window.
// Positions with fewer than window observations are None.
func RollingMean(values []float64, window int) []optional.Option[float64] {
	mean := make([]optional.Option[float64], len(values))
	for i := range values {
		if window <= 0 || i+1 < window {
			mean[i] = optional.None[float64]()
			continue
		}
		sum := 0.0
		for _, v := range values[i+1-window : i+1] {
			sum += v
		}
		mean[i] = optional.Some(sum / float64(window))
	}
	return mean
}

// RollingStd returns the sample standard deviation (n-1) over window
func RollingStd(values []float64, window int) []optional.Option[float64] {
	mean := RollingMean(values, window)
	std := make([]optional.Option[float64], len(values))
	for i := range values {
		if mean[i].IsNone() || window < 2 {
			std[i] = optional.None[float64]()
			continue
		}
		m := mean[i].Unwrap()
		sq := 0.0
		for _, v := range values[i+1-window : i+1] {
			sq += (v - m) * (v - m)
		}
		std[i] = optional.Some(math.Sqrt(sq / float64(window-1)))
	}
	return std
}

// Last returns the final element of values
func Last[T any](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	return values[len(values)-1], true
}
