// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/formats/aiff"
	"github.com/ik5/audsad/formats/wav"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// ExampleDecoder_Decode_convertToWav converts an AIFF file to an 8-bit WAV
// file with dither.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out := src.Format()
	out.Format = sample.FormatU8
	stage, err := audio.NewDitherStage(src, out, replaygain.Mode{})
	if err != nil {
		log.Fatal(err)
	}
	defer stage.Close()

	file, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w, err := wav.NewWriter(file, stage.Format())
	if err != nil {
		log.Fatal(err)
	}

	buf := stage.Format().Alloc(stage.BufSize())
	for {
		n, err := stage.ReadFrames(buf, stage.BufSize())
		if werr := w.Write(buf, n); werr != nil {
			log.Fatal(werr)
		}
		if err != nil {
			break
		}
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Error:", err)
	}
	// Output: Error: not an AIFF file
}

// ExampleDecoder_Decode_float shows how to get float samples from an AIFF
// file for analysis.
func ExampleDecoder_Decode_float() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	floats, err := audio.AsFloat(src)
	if err != nil {
		log.Fatal(err)
	}

	buf := make([]float32, 1024)
	n, _ := audio.ReadSamples(floats, buf)
	fmt.Printf("Read %d samples\n", n)
}
