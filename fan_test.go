package mchkb

import (
	"testing"

	"github.com/brutella/hap/characteristic"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

func TestFanActive(t *testing.T) {
	cases := []struct {
		power string
		speed string
		want  int
	}{
		{"True", "Three", characteristic.ActiveActive},
		{"True", "three", characteristic.ActiveActive},
		{"True", "5", characteristic.ActiveActive},
		{"True", "Auto", characteristic.ActiveInactive},
		{"True", "0", characteristic.ActiveInactive},
		{"False", "Three", characteristic.ActiveInactive},
		{"False", "Auto", characteristic.ActiveInactive},
	}
	for _, c := range cases {
		s := melcloud.Settings{Power: c.power, SetFanSpeed: c.speed}
		if got := fanActive(s); got != c.want {
			t.Errorf("power=%s speed=%s: got %d want %d", c.power, c.speed, got, c.want)
		}
	}
}

func TestFanInitialState(t *testing.T) {
	// {Power:"True", SetFanSpeed:"three"} => active, 60%
	d := testDevice()
	d.Settings[2].Value = "three"

	f := NewFanSpeed(d, &stubController{}, nil)

	if f.Fan.Active.Value() != characteristic.ActiveActive {
		t.Error("expected the fan to start active")
	}
	if f.Fan.RotationSpeed.Value() != 60 {
		t.Errorf("expected 60%%, got %g", f.Fan.RotationSpeed.Value())
	}
}

func TestFanSetActiveOn(t *testing.T) {
	// turning the fan on always means full speed and power on, whatever
	// the prior state was
	d := testDevice()
	d.Settings[0].Value = "False"
	d.Settings[2].Value = "Auto"

	stub := &stubController{}
	f := NewFanSpeed(d, stub, nil)

	if err := f.setActive(characteristic.ActiveActive); err != nil {
		t.Fatalf("setActive failed: %v", err)
	}
	if stub.lastCmd.SetFanSpeed != "Five" {
		t.Errorf("expected Five, got %q", stub.lastCmd.SetFanSpeed)
	}
	if !stub.lastCmd.Power {
		t.Error("expected power forced on")
	}
}

func TestFanSetActiveOff(t *testing.T) {
	stub := &stubController{}
	f := NewFanSpeed(testDevice(), stub, nil)

	if err := f.setActive(characteristic.ActiveInactive); err != nil {
		t.Fatalf("setActive failed: %v", err)
	}
	if stub.lastCmd.SetFanSpeed != "Auto" {
		t.Errorf("expected Auto, got %q", stub.lastCmd.SetFanSpeed)
	}
	// the fan variant forces power on even when dropping back to auto
	if !stub.lastCmd.Power {
		t.Error("expected power forced on")
	}
}

func TestFanSetRotationSpeed(t *testing.T) {
	stub := &stubController{}
	f := NewFanSpeed(testDevice(), stub, nil)

	if err := f.setRotationSpeed(45); err != nil {
		t.Fatalf("setRotationSpeed failed: %v", err)
	}
	if stub.lastCmd.SetFanSpeed != "Three" {
		t.Errorf("45%% lands in the 41-60 bucket, expected Three, got %q", stub.lastCmd.SetFanSpeed)
	}
}

func TestFanUpdateFromRefresh(t *testing.T) {
	f := NewFanSpeed(testDevice(), &stubController{}, nil)

	fresh := f.settings
	fresh.Power = "False"
	fresh.SetFanSpeed = "Auto"
	f.Update(fresh)

	if f.Fan.Active.Value() != characteristic.ActiveInactive {
		t.Error("refresh must re-project the active state")
	}
	if f.Fan.RotationSpeed.Value() != 0 {
		t.Errorf("refresh must re-project the rotation speed, got %g", f.Fan.RotationSpeed.Value())
	}
	if f.settings != fresh {
		t.Error("refresh must replace the snapshot wholesale")
	}
}
