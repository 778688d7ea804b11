// SPDX-License-Identifier: EPL-2.0

package dither

import "math"

const (
	// limitKnee is the level above which the limiter compresses (-6 dBFS).
	limitKnee = 0.5
	// limitCeiling is the largest float32 below 1.0; limiter output never
	// reaches full scale, even after float32 storage.
	limitCeiling = 1 - 1.0/(1<<24)
)

// HardLimit scales x by scale and softly saturates the result above -6 dBFS
// with a tanh curve. Values at or below the knee pass through unchanged and
// the output magnitude stays strictly below 1.
func HardLimit(x, scale float64) float64 {
	x *= scale

	switch {
	case x > limitKnee:
		return min(math.Tanh((x-limitKnee)/(1-limitKnee))*(1-limitKnee)+limitKnee, limitCeiling)
	case x < -limitKnee:
		return max(math.Tanh((x+limitKnee)/(1-limitKnee))*(1-limitKnee)-limitKnee, -limitCeiling)
	}

	return x
}
