package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBurst
	SoundTwinkle
	SoundClick
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneDef describes a procedurally synthesized chime
type ToneDef struct {
	Frequencies []float64 // Hz, summed partials
	Duration    float64   // seconds
	Decay       float64   // exponential decay rate per second
	Gain        float64   // 0.0 - 1.0
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]ToneDef
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundBurst:   {Frequencies: []float64{1318.5, 1975.5, 2637.0}, Duration: 0.6, Decay: 6, Gain: 0.5},
			SoundTwinkle: {Frequencies: []float64{2093.0, 3136.0}, Duration: 0.35, Decay: 9, Gain: 0.4},
			SoundClick:   {Frequencies: []float64{880.0}, Duration: 0.05, Decay: 60, Gain: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundClick: 0.6,
		},
	}
}
