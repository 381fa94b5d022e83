package mchkb

import (
	"testing"

	"github.com/brutella/hap/characteristic"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

func TestSwingActive(t *testing.T) {
	cases := []struct {
		power string
		vane  string
		want  int
	}{
		{"True", "Swing", characteristic.ActiveActive},
		{"True", "swing", characteristic.ActiveActive},
		{"True", "7", characteristic.ActiveActive},
		{"True", "Auto", characteristic.ActiveInactive},
		{"True", "Position3", characteristic.ActiveInactive},
		// power gates swing unconditionally
		{"False", "Swing", characteristic.ActiveInactive},
	}
	for _, c := range cases {
		s := melcloud.Settings{Power: c.power, VaneVerticalDirection: c.vane}
		if got := swingActive(s); got != c.want {
			t.Errorf("power=%s vane=%s: got %d want %d", c.power, c.vane, got, c.want)
		}
	}
}

func TestSwingSetActive(t *testing.T) {
	stub := &stubController{}
	v := NewVaneSwing(testDevice(), stub, nil)

	if err := v.setActive(characteristic.ActiveActive); err != nil {
		t.Fatalf("setActive failed: %v", err)
	}
	if stub.lastCmd.VaneVerticalDirection != "Swing" {
		t.Errorf("expected Swing, got %q", stub.lastCmd.VaneVerticalDirection)
	}

	if err := v.setActive(characteristic.ActiveInactive); err != nil {
		t.Fatalf("setActive failed: %v", err)
	}
	if stub.lastCmd.VaneVerticalDirection != "Auto" {
		t.Errorf("expected Auto, got %q", stub.lastCmd.VaneVerticalDirection)
	}
}

func TestSwingPreservesPower(t *testing.T) {
	d := testDevice()
	d.Settings[0].Value = "False"

	stub := &stubController{}
	v := NewVaneSwing(d, stub, nil)

	if err := v.setActive(characteristic.ActiveInactive); err != nil {
		t.Fatalf("setActive failed: %v", err)
	}
	if stub.lastCmd.Power {
		t.Error("vane writes must not power the unit on")
	}
	if v.settings.Power != "False" {
		t.Errorf("prior power value must survive unchanged: %q", v.settings.Power)
	}

	// the horizontal vane is untouched by a vertical write
	if stub.lastCmd.VaneHorizontalDirection != "Auto" {
		t.Errorf("command dropped the horizontal vane: %q", stub.lastCmd.VaneHorizontalDirection)
	}
}

func TestSwingUpdateFromRefresh(t *testing.T) {
	v := NewVaneSwing(testDevice(), &stubController{}, nil)

	fresh := v.settings
	fresh.VaneVerticalDirection = "Swing"
	v.Update(fresh)

	if v.Vane.Active.Value() != characteristic.ActiveActive {
		t.Error("refresh must re-project the active state")
	}
}
