package mchkb

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/log"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

// controller is the slice of the cloud client the accessories need. The
// poller owns everything else.
type controller interface {
	ControlDevice(ctx context.Context, deviceID string, cmd melcloud.ControlCommand) error
}

// errServiceCommunication is the one error surfaced to handlers when a
// control call fails. The cloud's error detail goes to the log, not to the
// caller.
var errServiceCommunication = errors.New("communication with the device service failed")

// airUnit is one virtual accessory's view of a physical unit: identity, the
// last known settings snapshot, and the dispatch plumbing. The two virtual
// accessories over the same unit each hold their own airUnit; they converge
// through the next cloud refresh, never through shared state.
type airUnit struct {
	*accessory.A

	client   controller
	device   melcloud.Device
	settings melcloud.Settings

	// a dispatch from the fan accessory always powers the unit on; the
	// swing accessory leaves Power exactly as the snapshot has it
	forcePowerOn bool

	refresh chan<- struct{}

	// set by the owning accessory, re-projects and diff-publishes
	resync func()
}

func (u *airUnit) configure(d melcloud.Device, client controller, refresh chan<- struct{}, nameSuffix string) accessory.Info {
	u.device = d
	u.settings = melcloud.ParseSettings(d.Settings)
	u.client = client
	u.refresh = refresh

	return accessory.Info{
		Name:         d.GivenName + " " + nameSuffix,
		SerialNumber: d.InterfaceID,
		Manufacturer: "Mitsubishi Electric",
		Model:        d.Model,
		Firmware:     d.Firmware,
	}
}

// finalize pins the accessory ID so the device stays consistent in HomeKit
// across restarts. Each virtual accessory over a unit needs its own ID, so
// the role is folded into the hash.
func (u *airUnit) finalize(role string) {
	h := fnv.New64a()
	h.Write([]byte(u.device.ID))
	h.Write([]byte(role))
	u.A.Id = h.Sum64()
}

func (u *airUnit) deviceID() string {
	return u.device.ID
}

// dispatch sends one control command built from the current snapshot with a
// single field changed. The protocol is not partial: the full field set goes
// out on every call or the unit resets the untouched ones. On success the
// changed snapshot becomes the accessory's provisional state until the next
// cloud refresh confirms or supersedes it; on failure the snapshot is left
// alone.
func (u *airUnit) dispatch(change func(*melcloud.Settings)) error {
	next := u.settings
	change(&next)
	if u.forcePowerOn {
		next.Power = "True"
	}

	cmd := commandFor(next)
	log.Debug.Printf("[%s] control: %+v", u.device.GivenName, cmd)

	if err := u.client.ControlDevice(context.Background(), u.device.ID, cmd); err != nil {
		log.Info.Printf("[%s] control failed: %s", u.device.GivenName, err.Error())
		return errServiceCommunication
	}

	u.settings = next
	if u.resync != nil {
		u.resync()
	}
	u.kickRefresh()
	return nil
}

// Update replaces the snapshot wholesale with a cloud-fresh one and
// re-publishes whatever changed.
func (u *airUnit) Update(s melcloud.Settings) {
	u.settings = s
	if u.resync != nil {
		u.resync()
	}
}

// kickRefresh asks the poller for an authoritative resync without blocking
// the handler if one is already queued.
func (u *airUnit) kickRefresh() {
	if u.refresh == nil {
		return
	}
	select {
	case u.refresh <- struct{}{}:
	default:
	}
}

// commandFor expands a snapshot into the full command the control endpoint
// requires. The two trailing fields cover device features this bridge does
// not manage and are always sent as null.
func commandFor(s melcloud.Settings) melcloud.ControlCommand {
	temp, err := strconv.ParseFloat(s.SetTemperature, 64)
	if err != nil {
		log.Debug.Printf("unparseable SetTemperature %q, sending %g", s.SetTemperature, temp)
	}

	return melcloud.ControlCommand{
		Power:                        s.PowerOn(),
		OperationMode:                s.OperationMode,
		SetFanSpeed:                  s.SetFanSpeed,
		VaneHorizontalDirection:      s.VaneHorizontalDirection,
		VaneVerticalDirection:        s.VaneVerticalDirection,
		SetTemperature:               temp,
		TemperatureIncrementOverride: nil,
		InStandbyMode:                nil,
	}
}
