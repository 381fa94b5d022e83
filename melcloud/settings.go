package melcloud

// Settings is the typed form of a unit's settings list. The raw name/value
// entries are parsed here once, at the API boundary; nothing above this
// package touches the list form.
type Settings struct {
	Power                   string
	OperationMode           string
	SetFanSpeed             string
	VaneHorizontalDirection string
	VaneVerticalDirection   string
	SetTemperature          string
}

// ParseSettings picks the recognized fields out of a settings list.
// Unrecognized names are ignored.
func ParseSettings(values []SettingValue) Settings {
	var s Settings
	for _, v := range values {
		switch v.Name {
		case "Power":
			s.Power = v.Value
		case "OperationMode":
			s.OperationMode = v.Value
		case "SetFanSpeed":
			s.SetFanSpeed = v.Value
		case "VaneHorizontalDirection":
			s.VaneHorizontalDirection = v.Value
		case "VaneVerticalDirection":
			s.VaneVerticalDirection = v.Value
		case "SetTemperature":
			s.SetTemperature = v.Value
		}
	}
	return s
}

// Values serializes back to the wire list form.
func (s Settings) Values() []SettingValue {
	return []SettingValue{
		{Name: "Power", Value: s.Power},
		{Name: "OperationMode", Value: s.OperationMode},
		{Name: "SetFanSpeed", Value: s.SetFanSpeed},
		{Name: "VaneHorizontalDirection", Value: s.VaneHorizontalDirection},
		{Name: "VaneVerticalDirection", Value: s.VaneVerticalDirection},
		{Name: "SetTemperature", Value: s.SetTemperature},
	}
}

// PowerOn reports whether the unit is powered on. The API encodes the flag
// as the literal strings "True" and "False".
func (s Settings) PowerOn() bool {
	return s.Power == "True"
}
