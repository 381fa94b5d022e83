package melcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSettings(t *testing.T) {
	values := []SettingValue{
		{Name: "Power", Value: "True"},
		{Name: "OperationMode", Value: "Cool"},
		{Name: "SetFanSpeed", Value: "Three"},
		{Name: "VaneHorizontalDirection", Value: "Auto"},
		{Name: "VaneVerticalDirection", Value: "Swing"},
		{Name: "SetTemperature", Value: "22"},
		{Name: "ProhibitPower", Value: "False"}, // unrecognized, ignored
	}

	s := ParseSettings(values)
	assert.Equal(t, "True", s.Power)
	assert.Equal(t, "Cool", s.OperationMode)
	assert.Equal(t, "Three", s.SetFanSpeed)
	assert.Equal(t, "Auto", s.VaneHorizontalDirection)
	assert.Equal(t, "Swing", s.VaneVerticalDirection)
	assert.Equal(t, "22", s.SetTemperature)
	assert.True(t, s.PowerOn())

	// last entry wins on duplicates
	s = ParseSettings(append(values, SettingValue{Name: "Power", Value: "False"}))
	assert.False(t, s.PowerOn())
}

func TestSettingsValues(t *testing.T) {
	s := Settings{
		Power:                   "False",
		OperationMode:           "Heat",
		SetFanSpeed:             "Auto",
		VaneHorizontalDirection: "Auto",
		VaneVerticalDirection:   "Auto",
		SetTemperature:          "19.5",
	}
	assert.Equal(t, s, ParseSettings(s.Values()))
}
