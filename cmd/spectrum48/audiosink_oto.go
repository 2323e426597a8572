// audiosink_oto.go - renders the ULA's one-bit beeper output as a
// square wave through oto, the same player library the teacher wires
// in audio_backend_oto.go.
//
// The core only ever hands this a bool: the instantaneous EAR level
// from port $FE bit 4. Synthesising that into audible sound is a host
// concern (spec §1 Non-goals), so everything below the ULA's
// BeeperSink hook lives here in cmd/spectrum48, not in internal/ula.
//
// License: GPLv3 or later
package main

import (
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const beeperSampleRate = 44100

// beeperSink streams a square wave at the host's chosen sample rate,
// flipping amplitude whenever the guest toggles the EAR bit.
type beeperSink struct {
	ctx    *oto.Context
	player *oto.Player
	level  atomic.Bool
}

func newBeeperSink() (*beeperSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   beeperSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &beeperSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// onLevelChange is passed to ula.ULA.BeeperSink.
func (s *beeperSink) onLevelChange(level bool) { s.level.Store(level) }

// Read implements io.Reader for oto.Player: a constant-amplitude
// square wave at whatever level the guest last set.
func (s *beeperSink) Read(p []byte) (int, error) {
	amp := float32(0)
	if s.level.Load() {
		amp = 0.2
	}
	for i := 0; i+4 <= len(p); i += 4 {
		putFloat32LE(p[i:i+4], amp)
	}
	return len(p), nil
}

func putFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
