package mchkb

import (
	"math"
	"strings"
)

// speedLevel is one of the unit's six discrete fan speeds. The HomeKit
// rotation percentage is simply the ordinal times 20.
type speedLevel int

const (
	speedAuto speedLevel = iota
	speedOne
	speedTwo
	speedThree
	speedFour
	speedFive
)

var speedNames = [...]string{"Auto", "One", "Two", "Three", "Four", "Five"}

func (l speedLevel) String() string {
	return speedNames[l]
}

func (l speedLevel) percentage() float64 {
	return float64(l) * 20
}

// speedForPercentage quantizes a rotation percentage into a level. Zero is
// Auto; above that the buckets are 20 wide and upper-inclusive, so an exact
// decade boundary always lands in the lower bucket (20 -> One, 40 -> Two).
func speedForPercentage(p float64) speedLevel {
	if p <= 0 {
		return speedAuto
	}
	l := speedLevel(math.Ceil(p / 20))
	if l > speedFive {
		l = speedFive
	}
	return l
}

// speedFromSetting decodes the unit's SetFanSpeed value. The cloud sends
// either the level name or its numeric alias, in no consistent casing.
// Anything unrecognized means Auto; a bad value must never error a read.
func speedFromSetting(raw string) speedLevel {
	switch strings.ToLower(raw) {
	case "one", "1":
		return speedOne
	case "two", "2":
		return speedTwo
	case "three", "3":
		return speedThree
	case "four", "4":
		return speedFour
	case "five", "5":
		return speedFive
	default:
		return speedAuto
	}
}

const (
	vaneAuto  = "auto"
	vaneSwing = "swing"
)

// vaneMode canonicalizes a raw vane direction value. The cloud is not
// consistent here either: swing shows up as "Swing", "6" or "7" depending
// on the interface firmware. Values that are neither auto nor swing pass
// through lowercased.
func vaneMode(raw string) string {
	switch m := strings.ToLower(raw); m {
	case "0", "auto":
		return vaneAuto
	case "6", "six", "7", "swing":
		return vaneSwing
	default:
		return m
	}
}
