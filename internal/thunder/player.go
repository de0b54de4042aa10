// Package thunder plays a thunder clap through the system speaker whenever a
// lightning flash fires.
package thunder

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/sound"
)

const (
	ringSize   = 2048
	levelStale = 100 * time.Millisecond
)

// Player owns the speaker. Play is safe to call from any goroutine.
type Player struct {
	clip   *beep.Buffer
	volume float64
	ring   *levelRing
}

// New prepares the clip described by cfg and initializes the speaker.
func New(cfg config.Audio) (*Player, error) {
	var clip *beep.Buffer
	if cfg.ThunderFile != "" {
		buf, err := sound.Load(cfg.ThunderFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load thunder %s: %w", cfg.ThunderFile, err)
		}
		clip = buf
	} else {
		d := time.Duration(config.ThunderSeconds * float64(time.Second))
		clip = sound.Rumble(d, time.Now().UnixNano())
	}

	sr := sound.Format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	log.Printf("[Thunder] ready: %v of audio", sr.D(clip.Len()))

	return &Player{
		clip:   clip,
		volume: cfg.Volume,
		ring:   newLevelRing(ringSize),
	}, nil
}

// Play starts one thunder clap. Overlapping claps are mixed.
func (p *Player) Play() {
	if p == nil {
		return
	}
	vol := &effects.Volume{
		Streamer: p.clip.Streamer(0, p.clip.Len()),
		Base:     2,
		Volume:   p.volume,
	}
	speaker.Play(&tap{Source: vol, ring: p.ring})
}

// Level is the loudness of what is currently playing, 0 when silent.
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.ring.level(levelStale)
}

// Stop silences any clap still playing.
func (p *Player) Stop() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}
