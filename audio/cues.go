package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/parameter"
)

// CueStreamer builds a fresh one-shot streamer for cue at the given linear volume
// Returns nil for an unknown cue
func CueStreamer(cue engine.SoundCue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer

	switch cue {
	case engine.CueShot:
		s = beep.Mix(
			newVolume(tone(0, WaveNoise, parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate), 0.55),
			newVolume(NewEnvelope(
				NewSweep(180, 60, parameter.ShotCueDuration, WaveSine, rate),
				parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate,
			), 0.4),
		)

	case engine.CueHit:
		// A6 with a fifth above
		s = beep.Mix(
			newVolume(tone(1760, WaveSine, parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate), 0.6),
			newVolume(tone(2637, WaveSine, parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate), 0.3),
		)

	case engine.CueReload:
		click := func(freq float64) beep.Streamer {
			return tone(freq, WaveSquare, parameter.ReloadCueNoteDuration, parameter.ReloadCueAttack, parameter.ReloadCueRelease, rate)
		}
		s = newVolume(beep.Seq(
			click(320),
			beep.Silence(rate.N(parameter.ReloadCueGap)),
			click(240),
		), 0.35)

	case engine.CueReloadDone:
		s = newVolume(NewEnvelope(
			NewSweep(440, 880, parameter.ReloadDoneCueDuration, WaveSquare, rate),
			parameter.ReloadDoneCueDuration, parameter.ReloadDoneCueAttack, parameter.ReloadDoneCueRelease, rate,
		), 0.3)

	case engine.CueTargetDestroyed:
		s = beep.Mix(
			newVolume(tone(0, WaveNoise, parameter.DestroyedCueDuration, parameter.DestroyedCueAttack, parameter.DestroyedCueRelease, rate), 0.4),
			newVolume(NewEnvelope(
				NewSweep(120, 40, parameter.DestroyedCueDuration, WaveSaw, rate),
				parameter.DestroyedCueDuration, parameter.DestroyedCueAttack, parameter.DestroyedCueRelease, rate,
			), 0.5),
		)

	case engine.CueObserve:
		s = newVolume(tone(330, WaveSine, parameter.ObserveCueDuration, parameter.ObserveCueAttack, parameter.ObserveCueRelease, rate), 0.5)

	case engine.CueRoundOver:
		note := func(freq float64) beep.Streamer {
			return tone(freq, WaveSquare, parameter.RoundOverCueNoteDuration, parameter.RoundOverCueAttack, parameter.RoundOverCueRelease, rate)
		}
		// E5 C5 G4
		s = newVolume(beep.Seq(note(659.25), note(523.25), note(392.0)), 0.35)

	default:
		return nil
	}

	return newVolume(s, volume)
}
