package component

import (
	"testing"

	"github.com/lixenwraith/quantum-shooter/vmath"
)

func TestShooterState(t *testing.T) {
	tests := []struct {
		name    string
		shooter ShooterComponent
		want    ShooterState
	}{
		{"full and ready", ShooterComponent{Shots: 6, Reloads: 2, CanShoot: true}, ShooterIdle},
		{"between shots", ShooterComponent{Shots: 5, Reloads: 2}, ShooterCooldown},
		{"reloading", ShooterComponent{Shots: 0, Reloads: 1, Reloading: true}, ShooterReloading},
		{"empty magazine", ShooterComponent{Shots: 0, Reloads: 1}, ShooterAwaitingReload},
		{"out of ammo", ShooterComponent{Shots: 0, Reloads: 0}, ShooterEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shooter.State(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShooterCanFire(t *testing.T) {
	ready := ShooterComponent{Shots: 1, CanShoot: true, AimedAtGallery: true}
	if !ready.CanFire() {
		t.Fatal("Expected ready shooter to fire")
	}

	cases := map[string]func(s *ShooterComponent){
		"cooldown":       func(s *ShooterComponent) { s.CanShoot = false },
		"reloading":      func(s *ShooterComponent) { s.Reloading = true },
		"outside":        func(s *ShooterComponent) { s.AimedAtGallery = false },
		"empty magazine": func(s *ShooterComponent) { s.Shots = 0 },
	}
	for name, mutate := range cases {
		s := ready
		mutate(&s)
		if s.CanFire() {
			t.Errorf("%s: expected fire gate closed", name)
		}
	}
}

func TestTargetLimits(t *testing.T) {
	tgt := TargetComponent{}
	tgt.Area.X, tgt.Area.Y = 800, 400
	tgt.Extent.X, tgt.Extent.Y = 30, 30

	lim := tgt.Limits()
	if lim.X != 370 || lim.Y != 170 {
		t.Errorf("Expected (370, 170), got (%v, %v)", lim.X, lim.Y)
	}

	tgt.Area.Y = 40
	if got := tgt.Limits().Y; got != 0 {
		t.Errorf("Expected pinned axis, got %v", got)
	}
}

func TestHelpersOnReturnedCopies(t *testing.T) {
	shooter := func() ShooterComponent {
		return ShooterComponent{Shots: 1, CanShoot: true, AimedAtGallery: true}
	}
	target := func() TargetComponent {
		return TargetComponent{
			HitPoints: 2,
			Area:      vmath.Vec2{X: 100, Y: 10},
			Extent:    vmath.Vec2{X: 10, Y: 10},
		}
	}

	if got := shooter().State(); got != ShooterIdle {
		t.Errorf("Expected %v, got %v", ShooterIdle, got)
	}
	if !shooter().CanFire() {
		t.Error("Expected returned shooter to fire")
	}
	if shooter().OutOfAmmo() {
		t.Error("Expected returned shooter to have ammo")
	}
	if !target().Alive() {
		t.Error("Expected returned target alive")
	}
	if got := target().Limits(); got != (vmath.Vec2{X: 40, Y: 0}) {
		t.Errorf("Expected limits {40 0}, got %v", got)
	}
}
