// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToScale converts a gain in decibels to a linear amplitude factor.
func DBToScale(db float64) float64 {
	return math.Pow(10, db/20)
}

// ScaleToDB converts a linear amplitude factor to decibels.
// Non-positive factors return -Inf.
func ScaleToDB(scale float64) float64 {
	if scale <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(scale)
}
