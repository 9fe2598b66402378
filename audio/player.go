// Package audio plays synthesized sound cues for engine events and loops the
// background theme.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/game"
)

const SampleRate = beep.SampleRate(44100)

// Player mixes cues and music into the speaker. A Player that was never
// initialized still tracks state but produces no output.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	sound       bool
	initialized bool
}

func NewPlayer() *Player {
	p := &Player{
		mixer: &beep.Mixer{},
		music: &beep.Ctrl{Streamer: withVolume(newMelody(theme), 0.15), Paused: true},
		sound: true,
	}
	p.mixer.Add(p.music)
	return p
}

// Init opens the speaker and starts mixing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play starts a cue if sound is enabled.
func (p *Player) Play(c Cue) {
	p.locked(func() {
		if p.sound {
			p.mixer.Add(c.Streamer())
		}
	})
}

func (p *Player) SetSound(on bool) {
	p.locked(func() { p.sound = on })
}

func (p *Player) SetMusic(on bool) {
	p.locked(func() { p.music.Paused = !on })
}

// MusicPlaying reports whether the theme is unpaused.
func (p *Player) MusicPlaying() bool {
	var playing bool
	p.locked(func() { playing = !p.music.Paused })
	return playing
}

// Voices returns the number of streams in the mixer, including the theme.
func (p *Player) Voices() int {
	var n int
	p.locked(func() { n = p.mixer.Len() })
	return n
}

// Attach follows eng's settings and plays cues for its events. Music is
// paused while the game is not being played.
func (p *Player) Attach(eng *game.Engine) {
	follow := func() {
		settings := eng.Settings()
		p.SetSound(settings.Sound)
		p.SetMusic(settings.Music && eng.Session().State == game.Playing)
	}
	follow()

	eng.SubscribeAll(func(ev game.Event) {
		switch ev.Kind {
		case game.EventSoundToggled, game.EventMusicToggled, game.EventPauseToggled,
			game.EventInfoToggled, game.EventGameOver, game.EventNewGame:
			follow()
		}
		if cue, ok := CueFor(ev); ok {
			p.Play(cue)
		}
	})
}
