package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/starfx/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // PCM, 16-bit signed little endian stereo
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone defined for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(l.context.SampleRate(), tone)
	return nil
}

// LoadSFX returns a new player for a cached (or freshly synthesized) sound.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeTone renders a decaying sum of sine partials as 16-bit stereo PCM.
func SynthesizeTone(sampleRate int, tone cfg.ToneDef) []byte {
	n := int(float64(sampleRate) * tone.Duration)
	if n <= 0 || len(tone.Frequencies) == 0 {
		return nil
	}
	buf := make([]byte, n*4)
	norm := tone.Gain / float64(len(tone.Frequencies))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-tone.Decay * t)
		// Short attack avoids a click at the start.
		if attack := t / 0.005; attack < 1 {
			env *= attack
		}
		var v float64
		for _, f := range tone.Frequencies {
			v += math.Sin(2 * math.Pi * f * t)
		}
		s := int16(math.Max(-1, math.Min(1, v*norm*env)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
