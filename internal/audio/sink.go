// internal/audio/sink.go
package audio

import (
	"bytes"
	"fmt"
	"line-defense/internal/interfaces"
	"log/slog"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Sink проигрывает звуки игры через ebiten/audio. Ничего не ждёт и не возвращает.
type Sink struct {
	ctx   *ebaudio.Context
	clips map[interfaces.Sound][]byte
	loop  *ebaudio.Player
	mixer Mixer
}

var _ interfaces.Audio = (*Sink)(nil)

// NewSink prepares every clip for ctx. Only one audio context may exist per
// process, so the caller owns it.
func NewSink(ctx *ebaudio.Context) (*Sink, error) {
	pcm := Drone(ctx.SampleRate())
	loop, err := ctx.NewPlayer(ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		return nil, fmt.Errorf("creating loop player: %w", err)
	}
	return &Sink{
		ctx:   ctx,
		clips: Clips(ctx.SampleRate()),
		loop:  loop,
		mixer: Mixer{Master: 1, SFX: 1, Music: 1},
	}, nil
}

func (s *Sink) PlayOneShot(sound interfaces.Sound) {
	pcm, ok := s.clips[sound]
	if !ok {
		slog.Debug("unknown sound", "sound", sound)
		return
	}
	vol := s.mixer.Effective(interfaces.ChannelSFX)
	if vol <= 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(vol)
	p.Play()
}

func (s *Sink) StartLoop() {
	s.loop.SetVolume(s.mixer.Effective(interfaces.ChannelMusic))
	if !s.loop.IsPlaying() {
		s.loop.Play()
	}
}

func (s *Sink) StopLoop() {
	s.loop.Pause()
}

func (s *Sink) SetVolume(ch interfaces.Channel, v float64) {
	s.mixer.Set(ch, v)
	s.loop.SetVolume(s.mixer.Effective(interfaces.ChannelMusic))
}
