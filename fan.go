package mchkb

import (
	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/characteristic"
	"github.com/brutella/hap/log"
	"github.com/brutella/hap/service"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

// FanSpeed exposes a unit's six-level fan speed as a Fan v2 accessory.
// Active reflects "powered on and not in auto"; RotationSpeed maps the
// levels onto 0-100 in steps of 20.
type FanSpeed struct {
	*airUnit

	Fan *fanSvc

	active   publishedInt
	rotation publishedFloat
}

type fanSvc struct {
	*service.S

	Active        *characteristic.Active
	RotationSpeed *characteristic.RotationSpeed
}

func newFanSvc() *fanSvc {
	s := fanSvc{}
	s.S = service.New(service.TypeFanV2)

	s.Active = characteristic.NewActive()
	s.AddC(s.Active.C)

	s.RotationSpeed = characteristic.NewRotationSpeed()
	s.RotationSpeed.SetStepValue(20)
	s.AddC(s.RotationSpeed.C)

	return &s
}

// NewFanSpeed builds the fan speed accessory for one unit.
func NewFanSpeed(d melcloud.Device, client controller, refresh chan<- struct{}) *FanSpeed {
	acc := FanSpeed{}
	acc.airUnit = &airUnit{forcePowerOn: true}

	info := acc.configure(d, client, refresh, "Fan Speed")
	acc.A = accessory.New(info, accessory.TypeFan)
	acc.finalize("fanspeed")

	acc.Fan = newFanSvc()
	acc.AddS(acc.Fan.S)

	// seed the published state from the snapshot the bridge started with
	acc.active = publishedInt{label: info.Name + " active", value: fanActive(acc.settings)}
	acc.rotation = publishedFloat{label: info.Name + " rotation", value: speedFromSetting(acc.settings.SetFanSpeed).percentage()}
	acc.Fan.Active.SetValue(acc.active.value)
	acc.Fan.RotationSpeed.SetValue(acc.rotation.value)

	acc.airUnit.resync = acc.publish

	acc.Fan.Active.OnValueRemoteUpdate(func(v int) {
		log.Info.Printf("setting [%s] active to [%d] from handler", info.Name, v)
		if err := acc.setActive(v); err != nil {
			log.Info.Println(err.Error())
		}
	})

	acc.Fan.RotationSpeed.OnValueRemoteUpdate(func(p float64) {
		log.Info.Printf("setting [%s] rotation to [%g] from handler", info.Name, p)
		if err := acc.setRotationSpeed(p); err != nil {
			log.Info.Println(err.Error())
		}
	})

	return &acc
}

// fanActive derives the Active characteristic: powered on with any fixed
// speed counts, auto does not.
func fanActive(s melcloud.Settings) int {
	if s.PowerOn() && speedFromSetting(s.SetFanSpeed) != speedAuto {
		return characteristic.ActiveActive
	}
	return characteristic.ActiveInactive
}

func (f *FanSpeed) setActive(v int) error {
	if v == characteristic.ActiveActive {
		// full speed, and power the unit on no matter what the snapshot says
		return f.dispatch(func(s *melcloud.Settings) {
			s.SetFanSpeed = speedFive.String()
			s.Power = "True"
		})
	}
	return f.dispatch(func(s *melcloud.Settings) {
		s.SetFanSpeed = speedAuto.String()
	})
}

func (f *FanSpeed) setRotationSpeed(p float64) error {
	level := speedForPercentage(p)
	return f.dispatch(func(s *melcloud.Settings) {
		s.SetFanSpeed = level.String()
	})
}

// publish reconciles the accessory's characteristics with the snapshot,
// notifying HomeKit only for values that actually changed.
func (f *FanSpeed) publish() {
	f.active.sync(fanActive(f.settings), func(v int) { f.Fan.Active.SetValue(v) })
	f.rotation.sync(speedFromSetting(f.settings.SetFanSpeed).percentage(), f.Fan.RotationSpeed.SetValue)
}
