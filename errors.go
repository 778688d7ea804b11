// SPDX-License-Identifier: EPL-2.0

package audsad

import "errors"

var (
	ErrUnknownExtension   = errors.New("no decoder for file extension")
	ErrUnsupportedWAVBits = errors.New("WAV output must be 8, 16, 24 or 32 bits")
)
