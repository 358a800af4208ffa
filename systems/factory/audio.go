package factory

import (
	"github.com/automoto/starfx/archetypes"
	"github.com/automoto/starfx/components"
	cfg "github.com/automoto/starfx/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAudio creates the singleton sound queue.
func CreateAudio(ecs *ecs.ECS, sfxVolume float64, muted bool) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		SFXVolume:  sfxVolume,
		Muted:      muted,
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return audio
}
