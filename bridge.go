package mchkb

import (
	"github.com/brutella/hap/accessory"
)

var root *accessory.Bridge

// Bridge builds the root accessory the virtual units hang from.
func Bridge() *accessory.A {
	root = accessory.NewBridge(accessory.Info{
		Name:         "MELCloud-HomeKit Bridge",
		SerialNumber: "1101",
		Manufacturer: "hkbridges",
		Model:        "melcloud-homekit",
		Firmware:     "0.0.1",
	})
	root.A.Id = 1

	return root.A
}
