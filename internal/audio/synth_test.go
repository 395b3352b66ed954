package audio

import (
	"encoding/binary"
	"testing"

	"line-defense/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneLength(t *testing.T) {
	pcm := Tone(440, 0.5, 0, 1000)
	assert.Len(t, pcm, 500*4)
	assert.Nil(t, Tone(440, 0, 0, 1000))
}

func TestToneIsStereoAndDecays(t *testing.T) {
	pcm := Tone(50, 1, 5, 1000)
	peak := func(from, to int) int16 {
		var p int16
		for i := from; i < to; i++ {
			l := int16(binary.LittleEndian.Uint16(pcm[4*i:]))
			r := int16(binary.LittleEndian.Uint16(pcm[4*i+2:]))
			require.Equal(t, l, r)
			p = max(p, l, -l)
		}
		return p
	}
	assert.Greater(t, peak(0, 100), peak(900, 1000))
}

func TestClipsCoverEverySound(t *testing.T) {
	clips := Clips(SampleRate)
	for _, s := range []interfaces.Sound{
		interfaces.SoundShot, interfaces.SoundExplosion, interfaces.SoundZap,
		interfaces.SoundLevelUp, interfaces.SoundBoss, interfaces.SoundDefeat,
	} {
		assert.NotEmpty(t, clips[s], s)
	}
}

func TestDroneMatchesToneLength(t *testing.T) {
	assert.Len(t, Drone(1000), len(Tone(110, 2, 0, 1000)))
}

func TestMixer(t *testing.T) {
	var m Mixer
	m.Set(interfaces.ChannelMaster, 0.5)
	m.Set(interfaces.ChannelSFX, 0.8)
	m.Set(interfaces.ChannelMusic, 3)

	assert.InDelta(t, 0.4, m.Effective(interfaces.ChannelSFX), 1e-9)
	assert.InDelta(t, 0.5, m.Effective(interfaces.ChannelMusic), 1e-9, "clamped to 1")
	assert.InDelta(t, 0.5, m.Effective(interfaces.ChannelMaster), 1e-9)

	m.Set(interfaces.ChannelMaster, -1)
	assert.Zero(t, m.Effective(interfaces.ChannelSFX))
}
