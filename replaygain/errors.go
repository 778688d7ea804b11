// SPDX-License-Identifier: EPL-2.0

package replaygain

import "errors"

var (
	ErrInvalidMode  = errors.New("invalid ReplayGain mode")
	ErrInvalidValue = errors.New("invalid ReplayGain value")
)
