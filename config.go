package mchkb

import (
	"encoding/json"
	"os"

	"github.com/brutella/hap/log"
)

// Config carries the MELCloud Home account credentials. BaseURL is only
// ever set for testing against a fake endpoint.
type Config struct {
	Email    string
	Password string
	BaseURL  string
}

// LoadConfig reads the JSON config file. On any failure it logs and returns
// the defaults along with the error so the caller can decide how fatal the
// problem is.
func LoadConfig(filename string) (*Config, error) {
	conf := Config{
		Email: "nobody@loopback.edu",
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		log.Info.Printf("%s\nunable to read config %s: using defaults\n%+v", err.Error(), filename, conf)
		return &conf, err
	}

	if err := json.Unmarshal(raw, &conf); err != nil {
		log.Info.Printf("%s\nunable to parse config %s: using defaults\nraw: %s\n%+v", err.Error(), filename, string(raw), conf)
		return &conf, err
	}

	return &conf, nil
}
