// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	// ErrCorruptFrame is returned when a frame disagrees with the stream info.
	ErrCorruptFrame = errors.New("FLAC frame does not match stream info")
)
