// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/ik5/audsad/internal/audiotest"
)

// Shorthands over audiotest for the in-package tests.

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *audiotest.MockSource {
	return audiotest.NewMockSource(sampleRate, channels, totalSamples, waveform)
}

func newSilentSource(sampleRate, channels, totalSamples int) *audiotest.MockSource {
	return audiotest.NewSilentSource(sampleRate, channels, totalSamples)
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *audiotest.MockSource {
	return audiotest.NewSineSource(sampleRate, channels, totalSamples, frequency)
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *audiotest.MockSource {
	return audiotest.NewConstantSource(sampleRate, channels, totalSamples, value)
}

func mustResampler(tb testing.TB, src Source, rate int) *Resampler {
	tb.Helper()

	r, err := NewResampler(src, rate)
	if err != nil {
		tb.Fatalf("NewResampler() error = %v", err)
	}
	return r
}

func mustMonoMixer(tb testing.TB, src Source) *MonoMixer {
	tb.Helper()

	m, err := NewMonoMixer(src)
	if err != nil {
		tb.Fatalf("NewMonoMixer() error = %v", err)
	}
	return m
}
