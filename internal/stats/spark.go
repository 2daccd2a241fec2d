// Package stats renders end-of-session statistics.
package stats

import "math"

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as one line of block characters. Flat
// series render at the middle level.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	out := make([]rune, len(values))
	for i, v := range values {
		idx := len(sparkLevels) / 2
		if span >= 1e-9 {
			idx = int(math.Round((v - lo) / span * float64(len(sparkLevels)-1)))
			if idx < 0 {
				idx = 0
			}
			if idx > len(sparkLevels)-1 {
				idx = len(sparkLevels) - 1
			}
		}
		out[i] = sparkLevels[idx]
	}
	return string(out)
}

// MovingAverage smooths values with a trailing mean over window samples.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// Resample reduces values to at most width buckets by averaging.
// Series already within width are returned as a copy.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) <= width {
		return append([]float64(nil), values...)
	}
	out := make([]float64, width)
	for i := range out {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
