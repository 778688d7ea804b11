// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrUnsupportedOrder  = errors.New("unsupported channel order")
)
