package mchkb

import (
	"context"
	"time"

	"github.com/brutella/hap/accessory"
	"github.com/brutella/hap/log"

	"github.com/hkbridges/melcloudhkbridge/melcloud"
)

// two virtual accessories per physical unit, keyed by device ID
var units = map[string][]airAccessory{}

var pollInterval = 180 * time.Second

type airAccessory interface {
	getA() *accessory.A
	deviceID() string
	Update(melcloud.Settings)
}

func (u *airUnit) getA() *accessory.A {
	return u.A
}

// Startup signs in to the cloud, enumerates the account and provisions a
// fan speed and a vane swing accessory for every air-to-air unit found.
func Startup(ctx context.Context, conf *Config, refresh chan<- struct{}) (*melcloud.Client, error) {
	client, err := melcloud.NewClient(ctx, conf.BaseURL, conf.Email, conf.Password)
	if err != nil {
		return nil, err
	}

	devices, err := client.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range devices {
		log.Info.Printf("provisioning [%s] (%s)", d.GivenName, d.ID)
		units[d.ID] = []airAccessory{
			NewFanSpeed(d, client, refresh),
			NewVaneSwing(d, client, refresh),
		}
	}

	return client, nil
}

// Devices returns the provisioned accessories for the HAP server.
func Devices() []*accessory.A {
	var out []*accessory.A
	for _, accs := range units {
		for _, a := range accs {
			out = append(out, a.getA())
		}
	}
	return out
}

// Poll keeps the accessories reconciled with the cloud. It runs a full
// refresh on the poll interval, and immediately whenever a dispatcher kicks
// the channel after a successful write.
func Poll(ctx context.Context, client *melcloud.Client, kick <-chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-kick:
		}
		refreshAll(ctx, client)
	}
}

func refreshAll(ctx context.Context, client *melcloud.Client) {
	for id, accs := range units {
		settings, err := client.GetDeviceSettings(ctx, id)
		if err != nil {
			log.Info.Printf("refresh of %s failed: %s", id, err.Error())
			continue
		}
		for _, a := range accs {
			a.Update(settings)
		}
	}
}
