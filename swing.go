package mchkb

import (
	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/log"
	"github.com/brutella/hap/service"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

// VaneSwing exposes a unit's vertical vane as a two-state accessory: active
// means the vane is swinging, inactive parks it back on auto. There is no
// rotation axis here.
type VaneSwing struct {
	*airUnit

	Vane *swingSvc

	active publishedInt
}

type swingSvc struct {
	*service.S

	Active *characteristic.Active
}

func newSwingSvc() *swingSvc {
	s := swingSvc{}
	s.S = service.New(service.TypeFanV2)

	s.Active = characteristic.NewActive()
	s.AddC(s.Active.C)

	return &s
}

// NewVaneSwing builds the vane swing accessory for one unit.
func NewVaneSwing(d melcloud.Device, client controller, refresh chan<- struct{}) *VaneSwing {
	acc := VaneSwing{}
	acc.airUnit = &airUnit{}

	info := acc.configure(d, client, refresh, "Vane Swing")
	acc.A = accessory.New(info, accessory.TypeFan)
	acc.finalize("vaneswing")

	acc.Vane = newSwingSvc()
	acc.AddS(acc.Vane.S)

	acc.active = publishedInt{label: info.Name + " active", value: swingActive(acc.settings)}
	acc.Vane.Active.SetValue(acc.active.value)

	acc.airUnit.resync = acc.publish

	acc.Vane.Active.OnValueRemoteUpdate(func(v int) {
		log.Info.Printf("setting [%s] active to [%d] from handler", info.Name, v)
		if err := acc.setActive(v); err != nil {
			log.Info.Println(err.Error())
		}
	})

	return &acc
}

// swingActive derives the Active characteristic. Power gates swing: a
// powered-off unit reads inactive even when the vane is set to swing.
func swingActive(s melcloud.Settings) int {
	if s.PowerOn() && vaneMode(s.VaneVerticalDirection) == vaneSwing {
		return characteristic.ActiveActive
	}
	return characteristic.ActiveInactive
}

// setActive moves the vane only. Power stays exactly as the snapshot has
// it, unlike the fan accessory.
func (v *VaneSwing) setActive(active int) error {
	direction := "Auto"
	if active == characteristic.ActiveActive {
		direction = "Swing"
	}
	return v.dispatch(func(s *melcloud.Settings) {
		s.VaneVerticalDirection = direction
	})
}

func (v *VaneSwing) publish() {
	v.active.sync(swingActive(v.settings), func(val int) { v.Vane.Active.SetValue(val) })
}
