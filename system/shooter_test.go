package system

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/lixenwraith/quantum-shooter/component"
	"github.com/lixenwraith/quantum-shooter/config"
	"github.com/lixenwraith/quantum-shooter/engine"
	"github.com/lixenwraith/quantum-shooter/event"
)

func TestShooterFireGatingLeavesStateUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := newHarness(t, nil, 1)
		h.start()
		h.res.Events.Consume()

		h.shooter.shooter = component.ShooterComponent{
			Shots:          rapid.IntRange(0, 6).Draw(rt, "shots"),
			Reloads:        rapid.IntRange(0, 2).Draw(rt, "reloads"),
			CanShoot:       rapid.Bool().Draw(rt, "can_shoot"),
			Reloading:      rapid.Bool().Draw(rt, "reloading"),
			AimedAtGallery: rapid.Bool().Draw(rt, "aimed_gallery"),
			AimedAtTarget:  rapid.Bool().Draw(rt, "aimed_target"),
		}
		before := h.shooter.Component()
		if before.CanFire() {
			return
		}
		pending := h.res.Timers.Pending()
		hp := h.target.HitPoints()
		shotsTexts := len(h.display.texts[engine.FieldShots])

		if got := h.shooter.Fire(); got != component.ShotRejected {
			rt.Fatalf("expected rejection, got %v", got)
		}
		if h.shooter.Component() != before {
			rt.Fatalf("state changed: %+v -> %+v", before, h.shooter.Component())
		}
		if h.res.Timers.Pending() != pending {
			rt.Fatal("rejected shot scheduled a timer")
		}
		if h.target.HitPoints() != hp {
			rt.Fatal("rejected shot damaged the target")
		}
		if h.res.Events.Len() != 0 {
			rt.Fatal("rejected shot emitted an event")
		}
		if len(h.display.texts[engine.FieldShots]) != shotsTexts {
			rt.Fatal("rejected shot touched the display")
		}
	})
}

func TestShooterFireGateCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *component.ShooterComponent)
	}{
		{"cooldown", func(s *component.ShooterComponent) { s.CanShoot = false }},
		{"reloading", func(s *component.ShooterComponent) { s.Reloading = true }},
		{"outside gallery", func(s *component.ShooterComponent) { s.AimedAtGallery = false }},
		{"empty magazine", func(s *component.ShooterComponent) { s.Shots = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil, 1)
			h.start()
			h.aim(true)
			tt.mutate(&h.shooter.shooter)
			before := h.shooter.Component()

			if got := h.shooter.Fire(); got != component.ShotRejected {
				t.Errorf("Expected rejection, got %v", got)
			}
			if h.shooter.Component() != before {
				t.Errorf("Expected unchanged state %+v, got %+v", before, h.shooter.Component())
			}
		})
	}
}

func TestShooterCooldown(t *testing.T) {
	h := newHarness(t, nil, 1)
	h.start()
	h.aim(false)

	if got := h.shooter.Fire(); got != component.ShotMissed {
		t.Fatalf("Expected miss, got %v", got)
	}
	if h.shooter.Component().State() != component.ShooterCooldown {
		t.Fatalf("Expected cooldown, got %v", h.shooter.Component().State())
	}
	if got := h.shooter.Fire(); got != component.ShotRejected {
		t.Errorf("Expected rejection during cooldown, got %v", got)
	}

	h.run(999*time.Millisecond, time.Millisecond)
	if got := h.shooter.Fire(); got != component.ShotRejected {
		t.Errorf("Expected rejection before ShotDelay, got %v", got)
	}

	h.run(time.Millisecond, time.Millisecond)
	if got := h.shooter.Fire(); got != component.ShotMissed {
		t.Errorf("Expected shot after ShotDelay, got %v", got)
	}
	if h.shooter.Component().Shots != 4 {
		t.Errorf("Expected 4 shots left, got %d", h.shooter.Component().Shots)
	}
	if h.display.lastText(engine.FieldShots) != "Shots: 4" {
		t.Errorf("Expected \"Shots: 4\", got %q", h.display.lastText(engine.FieldShots))
	}
}

func TestShooterHitDamagesTarget(t *testing.T) {
	h := newHarness(t, nil, 1)
	h.start()
	h.aim(true)

	if got := h.shooter.Fire(); got != component.ShotHit {
		t.Fatalf("Expected hit, got %v", got)
	}
	if h.target.HitPoints() != 2 {
		t.Errorf("Expected 2 hit points, got %d", h.target.HitPoints())
	}
	if h.display.lastText(engine.FieldHealth) != "HEALTH: 2" {
		t.Errorf("Expected \"HEALTH: 2\", got %q", h.display.lastText(engine.FieldHealth))
	}
}

func TestShooterReloadCompletion(t *testing.T) {
	h := newHarness(t, nil, 1)
	h.start()
	h.aim(false)

	for i := 0; i < 6; i++ {
		if got := h.shooter.Fire(); got != component.ShotMissed {
			t.Fatalf("Shot %d: expected miss, got %v", i, got)
		}
		h.run(time.Second, 100*time.Millisecond)
	}

	sh := h.shooter.Component()
	if sh.Shots != 0 || sh.CanShoot {
		t.Fatalf("Expected empty magazine without re-arm, got %+v", sh)
	}
	if sh.State() != component.ShooterAwaitingReload {
		t.Fatalf("Expected awaiting reload, got %v", sh.State())
	}

	if !h.shooter.Reload() {
		t.Fatal("Expected reload to start")
	}
	if h.shooter.Reload() {
		t.Error("Expected second reload rejected while reloading")
	}
	if h.display.lastText(engine.FieldReloads) != "Reloads: 1" {
		t.Errorf("Expected \"Reloads: 1\", got %q", h.display.lastText(engine.FieldReloads))
	}

	h.run(2900*time.Millisecond, 100*time.Millisecond)
	if !h.shooter.Component().Reloading {
		t.Fatal("Expected reload still running before ReloadTime")
	}

	h.run(100*time.Millisecond, 100*time.Millisecond)
	sh = h.shooter.Component()
	if sh.Shots != 6 || sh.Reloading || !sh.CanShoot {
		t.Errorf("Expected full, re-armed shooter, got %+v", sh)
	}
	if h.display.lastText(engine.FieldShots) != "Shots: 6" {
		t.Errorf("Expected \"Shots: 6\", got %q", h.display.lastText(engine.FieldShots))
	}
	if got := h.shooter.Fire(); got != component.ShotMissed {
		t.Errorf("Expected immediate shot after reload, got %v", got)
	}
}

func TestShooterAmmoScenario(t *testing.T) {
	h := newHarness(t, nil, 1)
	h.start()
	h.aim(false)

	fired := 0
	fireAll := func() {
		for h.shooter.Fire() == component.ShotMissed {
			fired++
			h.run(time.Second, 100*time.Millisecond)
		}
	}

	fireAll()
	for r := 0; r < 2; r++ {
		if !h.shooter.Reload() {
			t.Fatalf("Reload %d rejected", r)
		}
		h.run(3*time.Second, 100*time.Millisecond)
		fireAll()
	}

	if fired != 18 {
		t.Errorf("Expected 18 shots over the round, got %d", fired)
	}
	if h.shooter.Reload() {
		t.Error("Expected third reload rejected")
	}
	if !h.shooter.IsOutOfAmmo() {
		t.Error("Expected out of ammo")
	}
	if h.shooter.Component().State() != component.ShooterEmpty {
		t.Errorf("Expected empty, got %v", h.shooter.Component().State())
	}
}

func TestShooterAmmoMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := config.Default()
		cfg.Round.TimeLimit = 3600
		h := newHarness(t, cfg, 1)
		h.start()

		prev := h.shooter.Component()
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(rt, "action") {
			case 0:
				h.shooter.Fire()
			case 1:
				h.shooter.Reload()
			case 2:
				h.aim(rapid.Bool().Draw(rt, "on_target"))
			case 3:
				ms := rapid.IntRange(1, 4000).Draw(rt, "advance_ms")
				h.world.Update(time.Duration(ms) * time.Millisecond)
			}

			cur := h.shooter.Component()
			if cur.Shots < 0 || cur.Shots > cfg.Shooter.MaxShots {
				rt.Fatalf("shots %d out of range", cur.Shots)
			}
			if cur.Reloads < 0 || cur.Reloads > prev.Reloads {
				rt.Fatalf("reloads went %d -> %d", prev.Reloads, cur.Reloads)
			}
			if cur.Shots > prev.Shots && cur.Shots != cfg.Shooter.MaxShots {
				rt.Fatalf("shots rose %d -> %d without a full reload", prev.Shots, cur.Shots)
			}
			if prev.Shots-cur.Shots > 1 {
				rt.Fatalf("more than one shot per action: %d -> %d", prev.Shots, cur.Shots)
			}
			prev = cur
		}
	})
}

func TestShooterAimFromEvents(t *testing.T) {
	h := newHarness(t, nil, 1)
	h.start()

	h.world.Push(event.EventPointerEnter, &event.ZonePayload{Zone: component.ZoneGallery})
	h.world.Push(event.EventPointerEnter, &event.ZonePayload{Zone: component.ZoneTarget})
	h.world.Update(0)

	sh := h.shooter.Component()
	if !sh.AimedAtGallery || !sh.AimedAtTarget {
		t.Fatalf("Expected aimed at gallery and target, got %+v", sh)
	}

	h.world.Push(event.EventPointerExit, &event.ZonePayload{Zone: component.ZoneGallery})
	h.world.Update(0)

	sh = h.shooter.Component()
	if sh.AimedAtGallery || sh.AimedAtTarget {
		t.Errorf("Expected leaving the gallery to clear both, got %+v", sh)
	}
}
