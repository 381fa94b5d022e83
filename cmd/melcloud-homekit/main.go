package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mchkb "github.com/hkbridges/melcloudhkbridge"

	"github.com/brutella/hap"
	"github.com/brutella/hap/log"

	"github.com/urfave/cli/v2"
)

func main() {
	var dir, file string
	var debug bool

	app := cli.App{
		Name:  "melcloud homekit bridge",
		Usage: "server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Value:       "/var/db/HomeKitBridges/MELCloud",
				Usage:       "configuration directory",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "config",
				Value:       "melcloud.json",
				Usage:       "configuration file",
				Destination: &file,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Usage:       "enable debug",
				Destination: &debug,
			},
		},
		Action: func(c *cli.Context) error {
			if debug {
				log.Debug.Enable()
			}

			fulldir, err := filepath.Abs(dir)
			if err != nil {
				log.Info.Panic("unable to get config directory", dir)
			}
			conf, err := mchkb.LoadConfig(filepath.Join(fulldir, file))
			if err != nil {
				log.Info.Panic(err.Error())
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// dispatchers kick this after every confirmed write
			refresh := make(chan struct{}, 3)

			client, err := mchkb.Startup(ctx, conf, refresh)
			if err != nil {
				log.Info.Panic(err.Error())
			}

			bridge := mchkb.Bridge()
			devices := mchkb.Devices()
			log.Info.Printf("serving %d virtual accessories", len(devices))

			s, err := hap.NewServer(hap.NewFsStore(fulldir), bridge, devices...)
			if err != nil {
				log.Info.Panic(err)
			}

			// keep the accessories reconciled with the cloud
			go mchkb.Poll(ctx, client, refresh)

			// serve HomeKit
			go func(ctx context.Context) {
				s.ListenAndServe(ctx)
			}(ctx)

			// wait until shutdown signal sent
			sigch := make(chan os.Signal, 3)
			signal.Notify(sigch, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)
			sig := <-sigch

			log.Info.Printf("shutdown requested by signal: %s", sig)
			cancel()

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Info.Panic(err)
	}
}
