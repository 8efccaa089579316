package sfx

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestClickStreamer_LengthAndFade(t *testing.T) {
	rate := beep.SampleRate(44100)
	st, err := ClickStreamer(rate)
	require.NoError(t, err)
	samples := drain(t, st)
	assert.Len(t, samples, rate.N(clickDuration))

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	q := len(samples) / 4
	head, tail := peak(samples[:q]), peak(samples[len(samples)-q:])
	assert.LessOrEqual(t, head, clickVolume+1e-9)
	assert.Less(t, tail, head)
}

func TestOpen_MutedIsSilent(t *testing.T) {
	p := Open(true, log.New(io.Discard))
	assert.IsType(t, Silent{}, p)
	assert.NotPanics(t, p.Click)
}
