// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"line-defense/internal/interfaces"
	"math"
)

const SampleRate = 44100

const amplitude = 0.4

// Sweep synthesizes a sine gliding from f0 to f1 with an exponential decay,
// as 16-bit little-endian stereo PCM (the format ebiten/audio expects).
func Sweep(f0, f1, seconds, decay float64, sampleRate int) []byte {
	n := int(seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := f0 + (f1-f0)*float64(i)/float64(n)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := int16(math.Sin(phase) * math.Exp(-decay*t) * amplitude * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[4*i:], uint16(v))
		binary.LittleEndian.PutUint16(out[4*i+2:], uint16(v))
	}
	return out
}

// Tone is a Sweep with a constant pitch.
func Tone(freq, seconds, decay float64, sampleRate int) []byte {
	return Sweep(freq, freq, seconds, decay, sampleRate)
}

// Drone — фоновая петля: две ноты квинтой без затухания.
// Длина кратна обоим периодам, чтобы шов петли не щёлкал.
func Drone(sampleRate int) []byte {
	const seconds = 2.0
	a := Tone(110, seconds, 0, sampleRate)
	b := Tone(165, seconds, 0, sampleRate)
	out := make([]byte, len(a))
	for i := 0; i+1 < len(a); i += 2 {
		va := int16(binary.LittleEndian.Uint16(a[i:]))
		vb := int16(binary.LittleEndian.Uint16(b[i:]))
		binary.LittleEndian.PutUint16(out[i:], uint16(va/2+vb/2))
	}
	return out
}

// Clips returns the one-shot sounds of the game.
func Clips(sampleRate int) map[interfaces.Sound][]byte {
	return map[interfaces.Sound][]byte{
		interfaces.SoundShot:      Tone(880, 0.05, 40, sampleRate),
		interfaces.SoundExplosion: Sweep(180, 50, 0.3, 8, sampleRate),
		interfaces.SoundZap:       Sweep(1400, 700, 0.1, 20, sampleRate),
		interfaces.SoundLevelUp:   Sweep(440, 880, 0.35, 4, sampleRate),
		interfaces.SoundBoss:      Sweep(90, 60, 0.8, 2, sampleRate),
		interfaces.SoundDefeat:    Sweep(330, 110, 1.0, 1.5, sampleRate),
	}
}

// Mixer holds channel volumes. The effective volume of a channel is scaled by master.
type Mixer struct {
	Master, SFX, Music float64
}

func (m *Mixer) Set(ch interfaces.Channel, v float64) {
	v = math.Max(0, math.Min(1, v))
	switch ch {
	case interfaces.ChannelMaster:
		m.Master = v
	case interfaces.ChannelSFX:
		m.SFX = v
	case interfaces.ChannelMusic:
		m.Music = v
	}
}

func (m Mixer) Effective(ch interfaces.Channel) float64 {
	switch ch {
	case interfaces.ChannelSFX:
		return m.Master * m.SFX
	case interfaces.ChannelMusic:
		return m.Master * m.Music
	default:
		return m.Master
	}
}
