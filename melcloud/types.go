package melcloud

// SettingValue is one name/value entry from a unit's settings list as the
// API sends it. Everything is a string on the wire, even booleans and
// temperatures.
type SettingValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Device is one air-to-air unit as returned by the buildings listing.
type Device struct {
	ID          string         `json:"id"`
	GivenName   string         `json:"givenDisplayName"`
	InterfaceID string         `json:"airToAirInterfaceId"`
	Model       string         `json:"modelTypeName"`
	Firmware    string         `json:"firmwareVersion"`
	Settings    []SettingValue `json:"settings"`
}

// Building groups the units of one registered site.
type Building struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	AirToAirUnits []Device `json:"airToAirUnits"`
}

// ControlCommand is the full payload for a control call. The API does not
// accept partial updates: every field must be present on every call or the
// unit resets the missing ones to defaults.
type ControlCommand struct {
	Power                        bool     `json:"power"`
	OperationMode                string   `json:"operationMode"`
	SetFanSpeed                  string   `json:"setFanSpeed"`
	VaneHorizontalDirection      string   `json:"vaneHorizontalDirection"`
	VaneVerticalDirection        string   `json:"vaneVerticalDirection"`
	SetTemperature               float64  `json:"setTemperature"`
	TemperatureIncrementOverride *float64 `json:"temperatureIncrementOverride"`
	InStandbyMode                *bool    `json:"inStandbyMode"`
}
