package parameter

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 50 * time.Millisecond

	// MinCueGap drops a repeated cue arriving sooner than this after the previous one
	MinCueGap = 40 * time.Millisecond
)

// Cue Shapes
const (
	// ShotCueDuration is a short noise crack
	ShotCueDuration = 90 * time.Millisecond
	ShotCueAttack   = 2 * time.Millisecond
	ShotCueRelease  = 70 * time.Millisecond

	// HitCueDuration is a bright two-partial ping
	HitCueDuration = 160 * time.Millisecond
	HitCueAttack   = 3 * time.Millisecond
	HitCueRelease  = 120 * time.Millisecond

	// ReloadCueNoteDuration is each of the two clicks of a magazine swap
	ReloadCueNoteDuration = 60 * time.Millisecond
	ReloadCueGap          = 80 * time.Millisecond
	ReloadCueAttack       = 2 * time.Millisecond
	ReloadCueRelease      = 40 * time.Millisecond

	// ReloadDoneCueDuration is a rising chirp
	ReloadDoneCueDuration = 120 * time.Millisecond
	ReloadDoneCueAttack   = 5 * time.Millisecond
	ReloadDoneCueRelease  = 60 * time.Millisecond

	// DestroyedCueDuration is a low rumble with noise
	DestroyedCueDuration = 450 * time.Millisecond
	DestroyedCueAttack   = 5 * time.Millisecond
	DestroyedCueRelease  = 380 * time.Millisecond

	// ObserveCueDuration is a soft sine hum
	ObserveCueDuration = 200 * time.Millisecond
	ObserveCueAttack   = 40 * time.Millisecond
	ObserveCueRelease  = 120 * time.Millisecond

	// RoundOverCueNoteDuration is each note of the closing three-note figure
	RoundOverCueNoteDuration = 140 * time.Millisecond
	RoundOverCueAttack       = 5 * time.Millisecond
	RoundOverCueRelease      = 90 * time.Millisecond
)
