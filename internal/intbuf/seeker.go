// SPDX-License-Identifier: EPL-2.0

package intbuf

import (
	"bytes"
	"io"
)

// ReadSeeker returns r when it can seek. Otherwise the whole stream is
// buffered in memory, since the go-audio decoders need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
