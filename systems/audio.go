package systems

import (
	"log"
	"sort"
	"sync"

	"github.com/automoto/starfx/assets"
	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every tone up front so the first burst does not hitch.
func PreloadAllSFX() {
	initGlobalAudio()

	ids := make([]cfg.SoundID, 0, len(cfg.Sound.Tones))
	for id := range cfg.Sound.Tones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	player.SetVolume(SFXVolumeFor(soundID, globalSFXVolume))
	player.Play()
}

// SFXVolumeFor applies the per-sound multiplier to the master volume.
func SFXVolumeFor(soundID cfg.SoundID, master float64) float64 {
	volume := master
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}
	return volume
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted silences or restores sound effects.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	GetOrCreateAudio(e).Muted = muted
}

func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
