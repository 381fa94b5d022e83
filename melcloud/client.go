package melcloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the production MELCloud Home endpoint.
	DefaultBaseURL = "https://api.melcloudhome.com"

	clientID       = "homebridge-bridge"
	requestTimeout = 10 * time.Second
)

// Client talks to the MELCloud Home cloud API. The embedded http.Client
// carries an oauth2 token source, so token refresh is transparent.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient signs in with the account credentials and returns a ready
// client. The sign-in is a resource-owner password token exchange; the
// returned client refreshes its token as needed.
func NewClient(ctx context.Context, baseURL, email, password string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	conf := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			TokenURL: baseURL + "/oauth/token",
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: requestTimeout})
	tok, err := conf.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("melcloud sign-in: %w", err)
	}

	httpClient := conf.Client(ctx, tok)
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// ListDevices enumerates every air-to-air unit across the account's
// buildings.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var buildings []Building
	if err := c.getJSON(ctx, "/api/buildings", &buildings); err != nil {
		return nil, err
	}

	var devices []Device
	for _, b := range buildings {
		devices = append(devices, b.AirToAirUnits...)
	}
	return devices, nil
}

// GetDeviceSettings fetches the unit's current settings list and returns it
// in typed form.
func (c *Client) GetDeviceSettings(ctx context.Context, deviceID string) (Settings, error) {
	var d Device
	if err := c.getJSON(ctx, "/api/devices/"+url.PathEscape(deviceID), &d); err != nil {
		return Settings{}, err
	}
	return ParseSettings(d.Settings), nil
}

// ControlDevice sends one complete control command to the unit.
func (c *Client) ControlDevice(ctx context.Context, deviceID string, cmd ControlCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode control command: %w", err)
	}

	endpoint := c.baseURL + "/api/devices/" + url.PathEscape(deviceID) + "/control"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build control request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("control %s: %w", deviceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("control %s: unexpected status %d: %s", deviceID, resp.StatusCode, body)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("get %s: unexpected status %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
